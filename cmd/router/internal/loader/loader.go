package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// stdinName is the source name reported in diagnostics when the
// supergraph is read from standard input.
const stdinName = "<stdin>"

// Supergraph is a loaded supergraph schema plus the source name used in
// diagnostics.
type Supergraph struct {
	Name string
	SDL  string
}

// LoadSupergraph reads supergraph SDL from a .graphql file, or from
// standard input when path is "-".
func LoadSupergraph(path string) (*Supergraph, error) {
	if path == "-" {
		return ReadSupergraph(os.Stdin, stdinName)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path %q is a directory, provide a path to a supergraph schema (.graphql)", path)
	}

	ext := filepath.Ext(path)
	if ext != ".graphql" && ext != ".graphqls" && ext != ".gql" {
		return nil, fmt.Errorf("file %q must have a .graphql, .graphqls, or .gql extension", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return &Supergraph{Name: path, SDL: string(content)}, nil
}

// ReadSupergraph reads supergraph SDL from an io.Reader, labeling
// diagnostics with the given source name.
func ReadSupergraph(r io.Reader, name string) (*Supergraph, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return &Supergraph{Name: name, SDL: string(content)}, nil
}
