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

package supergraph

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/joshhayes-sheen-vt/router/pkg/specs"
)

// Extractor turns a composed supergraph SDL into its subgraph schemas.
// Construct with New; the zero value has no logger or source name.
type Extractor struct {
	log        logr.Logger
	sourceName string
	validate   bool
}

// Option configures an Extractor before its defaults are applied.
type Option func(*Extractor)

// WithLogger routes pipeline progress to the given logger.
func WithLogger(log logr.Logger) Option { return func(e *Extractor) { e.log = log } }

// WithSourceName sets the source name gqlparser reports in positions and
// error messages for the input SDL.
func WithSourceName(name string) Option { return func(e *Extractor) { e.sourceName = name } }

// WithoutValidation skips the final reload of each subgraph through the
// schema validator. Useful when the caller revalidates anyway.
func WithoutValidation() Option { return func(e *Extractor) { e.validate = false } }

// New constructs an Extractor, applying opts over the defaults.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		log:        logr.Discard(),
		sourceName: "supergraph.graphql",
		validate:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the pipeline with a one-off Extractor.
func Extract(supergraphSDL string, opts ...Option) (*Subgraphs, error) {
	return New(opts...).Extract(supergraphSDL)
}

// extraction is the per-run state the pipeline stages share: the parsed
// supergraph and its resolved spec metadata are read-only after setup,
// the registry is the single mutable output the stages fill in.
type extraction struct {
	log      logr.Logger
	doc      *ast.SchemaDocument
	metadata *specs.Metadata
	join     *specs.JoinSpec

	subgraphs *Subgraphs
	graphs    map[string]*Subgraph
}

// contentOrder fixes the sequence the content extractors run in. The
// kinds are independent of each other, the order only pins output
// determinism.
var contentOrder = []ast.DefinitionKind{
	ast.Object,
	ast.Interface,
	ast.Union,
	ast.Enum,
	ast.InputObject,
}

// extractors dispatches per-kind content extraction. The kind set is
// closed; scaffolding rejects anything else up front.
var extractors = map[ast.DefinitionKind]func(*extraction, *typeInfo) error{
	ast.Object:      (*extraction).extractObject,
	ast.Interface:   (*extraction).extractInterface,
	ast.Union:       (*extraction).extractUnion,
	ast.Enum:        (*extraction).extractEnum,
	ast.InputObject: (*extraction).extractInput,
}

// Extract reconstructs the subgraph schemas recorded in supergraphSDL.
//
//	Resolve -> Register -> Scaffold -> Extract -> Propagate -> Prune -> Synthesize -> Validate
//
// Errors are InvalidSupergraphError, InvalidSubgraphError, or
// InternalError; see the package documentation for when each applies.
func (e *Extractor) Extract(supergraphSDL string) (*Subgraphs, error) {
	source := &ast.Source{Name: e.sourceName, Input: supergraphSDL}

	doc, err := parser.ParseSchema(source)
	if err != nil {
		return nil, &InvalidSupergraphError{Err: err}
	}
	if _, err := gqlparser.LoadSchema(source); err != nil {
		return nil, &InvalidSupergraphError{Err: err}
	}

	metadata, join, err := resolveSpecs(doc)
	if err != nil {
		return nil, err
	}
	e.log.V(1).Info("resolved supergraph specs",
		"source", e.sourceName, "joinVersion", join.Version.String(), "links", len(metadata.Links))

	x := &extraction{
		log:       e.log,
		doc:       doc,
		metadata:  metadata,
		join:      join,
		subgraphs: NewSubgraphs(),
		graphs:    map[string]*Subgraph{},
	}

	if err := x.registerSubgraphs(); err != nil {
		return nil, err
	}
	infos, err := x.scaffoldTypes()
	if err != nil {
		return nil, err
	}
	for _, kind := range contentOrder {
		extract := extractors[kind]
		for _, info := range infos.byKind[kind] {
			if err := extract(x, info); err != nil {
				return nil, err
			}
		}
	}
	x.propagateExecutableDirectives()
	if err := x.pruneSubgraphs(); err != nil {
		return nil, err
	}
	if err := x.synthesizeFederationOperations(); err != nil {
		return nil, err
	}
	if e.validate {
		if err := x.validateSubgraphs(); err != nil {
			return nil, err
		}
	}

	e.log.V(1).Info("extracted subgraphs", "count", x.subgraphs.Len())
	return x.subgraphs, nil
}

// resolveSpecs reads the schema's @link metadata and locates the join
// spec the pipeline decodes provenance with.
func resolveSpecs(doc *ast.SchemaDocument) (*specs.Metadata, *specs.JoinSpec, error) {
	metadata, err := specs.ResolveLinks(doc)
	if err != nil {
		return nil, nil, &InvalidSupergraphError{Err: err}
	}
	if len(metadata.Links) == 0 {
		return nil, nil, invalidSupergraphf("Invalid supergraph: must be a core schema")
	}
	link := metadata.ByIdentity(specs.JoinIdentity)
	if link == nil {
		return nil, nil, invalidSupergraphf("Invalid supergraph: must use the join spec")
	}
	version := link.URL.Version
	if !specs.IsSupportedJoinVersion(version) {
		return nil, nil, invalidSupergraphf(
			"Invalid supergraph: uses unsupported join spec version %s (supported versions: %s)",
			version, supportedJoinVersions())
	}
	// The v0.1 format predates field-level provenance and needs its own
	// extraction path, which nothing composes anymore.
	if (version == specs.Version{Major: 0, Minor: 1}) {
		return nil, nil, invalidSupergraphf(
			"extracting subgraphs from a federation 1 supergraph (join spec v0.1) is not yet supported")
	}
	return metadata, specs.NewJoinSpec(link), nil
}

func supportedJoinVersions() string {
	names := make([]string, len(specs.SupportedJoinVersions))
	for i, v := range specs.SupportedJoinVersions {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
