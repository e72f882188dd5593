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
	"github.com/vektah/gqlparser/v2/ast"
)

// extractInterface distributes an interface type's interface edges and
// fields to the subgraphs that declared it. Subgraphs that declared the
// type as an interface object receive an object type instead, and
// interface fields never carry shareable.
func (x *extraction) extractInterface(info *typeInfo) error {
	def := info.def

	for _, app := range directivesNamed(def.Directives, x.join.ImplementsDirective()) {
		args, err := x.join.ImplementsArguments(app)
		if err != nil {
			return &InvalidSupergraphError{Err: err}
		}
		if !info.hasGraph(args.Graph) {
			return invalidSupergraphf("@%s cannot exist on %s for subgraph %s without type-level @%s",
				x.join.ImplementsDirective(), def.Name, args.Graph, x.join.TypeDirective())
		}
		dest, err := x.interfaceDestination(info, args.Graph)
		if err != nil {
			return err
		}
		dest.Interfaces = appendUnique(dest.Interfaces, args.Interface)
	}

	for _, field := range def.Fields {
		apps := directivesNamed(field.Directives, x.join.FieldDirective())

		if len(apps) == 0 {
			for _, graph := range info.graphs {
				dest, err := x.interfaceDestination(info, graph)
				if err != nil {
					return err
				}
				if err := x.addField(dest, field, nil, false); err != nil {
					return err
				}
			}
			continue
		}

		for _, app := range apps {
			args, err := x.join.FieldArguments(app)
			if err != nil {
				return &InvalidSupergraphError{Err: err}
			}
			if args.Graph == nil {
				continue
			}
			if !info.hasGraph(*args.Graph) {
				return invalidSupergraphf("@%s cannot exist on %s.%s for subgraph %s without type-level @%s",
					x.join.FieldDirective(), def.Name, field.Name, *args.Graph, x.join.TypeDirective())
			}
			dest, err := x.interfaceDestination(info, *args.Graph)
			if err != nil {
				return err
			}
			if err := x.addField(dest, field, args, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// interfaceDestination resolves where an interface type's content lands
// in a subgraph and checks the scaffolded kind agrees with the
// interface object marker.
func (x *extraction) interfaceDestination(info *typeInfo, graph string) (*ast.Definition, error) {
	sub, err := x.subgraphByGraph(graph)
	if err != nil {
		return nil, err
	}
	dest := sub.Schema.Type(info.def.Name)
	if dest == nil {
		return nil, internalf("type %q missing from subgraph %q after scaffolding", info.def.Name, sub.Name)
	}

	interfaceObject := info.members[graph]
	switch dest.Kind {
	case ast.Object:
		if !interfaceObject {
			return nil, internalf("type %q in subgraph %q is an object without an interface object marker", info.def.Name, sub.Name)
		}
	case ast.Interface:
		if interfaceObject {
			return nil, internalf("type %q in subgraph %q should have been scaffolded as an interface object", info.def.Name, sub.Name)
		}
	default:
		return nil, internalf("type %q in subgraph %q is a %s, expected an object or interface", info.def.Name, sub.Name, dest.Kind)
	}
	return dest, nil
}
