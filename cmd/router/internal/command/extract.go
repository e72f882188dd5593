// Copyright 2026 The Router Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshhayes-sheen-vt/router/cmd/router/internal/loader"
	"github.com/joshhayes-sheen-vt/router/cmd/router/internal/view"
	"github.com/joshhayes-sheen-vt/router/pkg/supergraph"
)

type ExtractOptions struct {
	Path     string
	OutDir   string
	Stdout   bool
	Validate bool
}

func NewExtractCommand(cli *CLI) *cobra.Command {
	var opts ExtractOptions

	cmd := &cobra.Command{
		Use:   "extract <supergraph>",
		Short: "Extract subgraph schemas from a supergraph",
		Long: Highlight("router extract <supergraph>") + "\n\n" +
			"Decompose a composed supergraph schema into the per-service subgraph\n" +
			"schemas it was built from.\n\n" +
			"Reads the supergraph SDL from the given file, or from standard input\n" +
			"when the path is \"-\". One <name>.graphql file is written per subgraph.\n\n" +
			"Examples:\n" +
			"  # Extract into ./subgraphs\n" +
			"  router extract supergraph.graphql\n\n" +
			"  # Extract from stdin and print the schemas instead of writing files\n" +
			"  cat supergraph.graphql | router extract - --stdout\n\n" +
			"  # Emit a gateway services manifest\n" +
			"  router extract supergraph.graphql -o yaml > services.yaml\n",
		Args: ExactArgsWithUsage(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return RunExtract(cmd.Context(), cli, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutDir, "out", "./subgraphs", "Directory to write subgraph schemas into")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print subgraph schemas instead of writing files")
	cmd.Flags().BoolVar(&opts.Validate, "validate", true, "Validate each extracted subgraph schema")

	return cmd
}

func RunExtract(ctx context.Context, cli *CLI, opts ExtractOptions) error {
	in, err := loader.LoadSupergraph(opts.Path)
	if err != nil {
		return err
	}

	eopts := []supergraph.Option{
		supergraph.WithLogger(cli.Log),
		supergraph.WithSourceName(in.Name),
	}
	if !opts.Validate {
		eopts = append(eopts, supergraph.WithoutValidation())
	}

	subs, err := supergraph.Extract(in.SDL, eopts...)
	if err != nil {
		return err
	}

	result := view.ExtractResult{
		Supergraph: in.Name,
		OutDir:     opts.OutDir,
	}

	if opts.Stdout {
		for _, sub := range subs.All() {
			result.Subgraphs = append(result.Subgraphs, view.ExtractedSubgraph{
				Name:       sub.Name,
				RoutingURL: sub.URL,
				Schema:     sub.SDL(),
			})
		}
	} else {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		for _, sub := range subs.All() {
			file := filepath.Join(opts.OutDir, sub.Name+".graphql")
			if err := os.WriteFile(file, []byte(sub.SDL()), 0o644); err != nil {
				return fmt.Errorf("failed to write subgraph schema: %w", err)
			}
			result.Subgraphs = append(result.Subgraphs, view.ExtractedSubgraph{
				Name:       sub.Name,
				RoutingURL: sub.URL,
				SchemaFile: file,
			})
		}
	}

	view.NewExtractView(cli.Viewer).Render(result)
	return nil
}
