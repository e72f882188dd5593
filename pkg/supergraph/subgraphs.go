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
	"sort"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/joshhayes-sheen-vt/router/pkg/sdl"
	"github.com/joshhayes-sheen-vt/router/pkg/specs"
)

// Subgraph is one extracted service schema: the name and routing URL it
// was registered under during composition, plus its reconstructed
// schema document.
type Subgraph struct {
	Name   string
	URL    string
	Schema *sdl.Document
}

// SDL prints the subgraph schema.
func (s *Subgraph) SDL() string {
	return s.Schema.SDL()
}

// Subgraphs is the extraction result, keyed by subgraph name.
type Subgraphs struct {
	byName map[string]*Subgraph
}

func NewSubgraphs() *Subgraphs {
	return &Subgraphs{byName: map[string]*Subgraph{}}
}

// Add registers a subgraph. Subgraph names are unique per supergraph.
func (s *Subgraphs) Add(sub *Subgraph) error {
	if _, ok := s.byName[sub.Name]; ok {
		return invalidSupergraphf("A subgraph named %q already exists", sub.Name)
	}
	s.byName[sub.Name] = sub
	return nil
}

// Get returns the named subgraph, or nil.
func (s *Subgraphs) Get(name string) *Subgraph {
	return s.byName[name]
}

// Names returns the subgraph names in lexical order.
func (s *Subgraphs) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the subgraphs in lexical name order.
func (s *Subgraphs) All() []*Subgraph {
	subs := make([]*Subgraph, 0, len(s.byName))
	for _, name := range s.Names() {
		subs = append(subs, s.byName[name])
	}
	return subs
}

// Len returns the number of subgraphs.
func (s *Subgraphs) Len() int {
	return len(s.byName)
}

// newFederationSubgraph creates a subgraph whose schema is seeded with
// the federation subgraph preamble: the @link declarations plus the
// federation directive and type definitions extraction emits against.
func newFederationSubgraph(name, url string) (*Subgraph, error) {
	preamble, err := specs.Preamble()
	if err != nil {
		return nil, internalf("seed subgraph %q: %v", name, err)
	}

	schema := sdl.NewDocument()
	for _, ext := range preamble.SchemaExtension {
		for _, directive := range ext.Directives {
			schema.AddSchemaDirective(directive)
		}
	}
	for _, def := range preamble.Directives {
		schema.AddDirectiveDefinition(def)
	}
	for _, def := range preamble.Definitions {
		if err := schema.InsertType(def); err != nil {
			return nil, internalf("seed subgraph %q: %v", name, err)
		}
	}
	return &Subgraph{Name: name, URL: url, Schema: schema}, nil
}

// registerSubgraphs walks the join graph enum and creates one empty
// subgraph per value.
func (x *extraction) registerSubgraphs() error {
	graphEnum := x.doc.Definitions.ForName(x.join.GraphEnum())
	if graphEnum == nil || graphEnum.Kind != ast.Enum {
		return invalidSupergraphf("Invalid supergraph: missing %s enum", x.join.GraphEnum())
	}

	for _, value := range graphEnum.EnumValues {
		app := value.Directives.ForName(x.join.GraphDirective())
		if app == nil {
			return invalidSupergraphf("Value %q of %s enum has no @%s directive",
				value.Name, x.join.GraphEnum(), x.join.GraphDirective())
		}
		args, err := x.join.GraphArguments(app)
		if err != nil {
			return &InvalidSupergraphError{Err: err}
		}
		sub, err := newFederationSubgraph(args.Name, args.URL)
		if err != nil {
			return err
		}
		if err := x.subgraphs.Add(sub); err != nil {
			return err
		}
		x.graphs[value.Name] = sub
		x.log.V(2).Info("registered subgraph", "graph", value.Name, "subgraph", args.Name, "url", args.URL)
	}

	x.log.V(1).Info("registered subgraphs", "count", x.subgraphs.Len())
	return nil
}

// subgraphByGraph resolves a join graph enum value to its subgraph.
func (x *extraction) subgraphByGraph(graph string) (*Subgraph, error) {
	sub, ok := x.graphs[graph]
	if !ok {
		return nil, invalidSupergraphf(
			"Invalid graph enum_value %q: does not match an enum value defined in the @%s enum",
			graph, x.join.GraphEnum())
	}
	return sub, nil
}
