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

	"github.com/joshhayes-sheen-vt/router/pkg/sdl"
	"github.com/joshhayes-sheen-vt/router/pkg/specs"
)

// overriddenReason marks a field that is only kept in a subgraph because
// a user queried it while another subgraph overrides it.
const overriddenReason = "[overridden]"

// extractObject distributes an object type's interface edges and fields
// to the subgraphs that declared the type.
func (x *extraction) extractObject(info *typeInfo) error {
	def := info.def

	for _, app := range directivesNamed(def.Directives, x.join.ImplementsDirective()) {
		args, err := x.join.ImplementsArguments(app)
		if err != nil {
			return &InvalidSupergraphError{Err: err}
		}
		if !info.hasGraph(args.Graph) {
			return invalidSupergraphf("@%s cannot exist on %q for subgraph %q without type-level @%s",
				x.join.ImplementsDirective(), def.Name, args.Graph, x.join.TypeDirective())
		}
		sub, err := x.subgraphByGraph(args.Graph)
		if err != nil {
			return err
		}
		dest := sub.Schema.Type(def.Name)
		dest.Interfaces = appendUnique(dest.Interfaces, args.Interface)
	}

	for _, field := range def.Fields {
		apps := directivesNamed(field.Directives, x.join.FieldDirective())

		// No field-level provenance means the field lives in every
		// subgraph that has the type.
		if len(apps) == 0 {
			shareable := len(info.graphs) > 1
			for _, graph := range info.graphs {
				sub, err := x.subgraphByGraph(graph)
				if err != nil {
					return err
				}
				if err := x.addField(sub.Schema.Type(def.Name), field, nil, shareable); err != nil {
					return err
				}
			}
			continue
		}

		applications := make([]*specs.FieldArgs, 0, len(apps))
		for _, app := range apps {
			args, err := x.join.FieldArguments(app)
			if err != nil {
				return &InvalidSupergraphError{Err: err}
			}
			applications = append(applications, args)
		}

		owners := 0
		for _, args := range applications {
			if !boolValue(args.External) && !boolValue(args.UsedOverridden) {
				owners++
			}
		}
		shareable := owners > 1

		for _, args := range applications {
			if args.Graph == nil {
				// No graph means the supergraph synthesized the field
				// during composition; no subgraph serves it.
				continue
			}
			if !info.hasGraph(*args.Graph) {
				return invalidSupergraphf("@%s cannot exist on %s.%s for subgraph %s without type-level @%s",
					x.join.FieldDirective(), def.Name, field.Name, *args.Graph, x.join.TypeDirective())
			}
			sub, err := x.subgraphByGraph(*args.Graph)
			if err != nil {
				return err
			}
			if err := x.addField(sub.Schema.Type(def.Name), field, args, shareable); err != nil {
				return err
			}
		}
	}
	return nil
}

// addField copies a supergraph field into a subgraph type, rewriting its
// type when the provenance overrides it and synthesizing the federation
// directives the provenance implies. Descriptions and supergraph
// directives are dropped; arguments keep name, type, and default.
func (x *extraction) addField(dest *ast.Definition, field *ast.FieldDefinition, args *specs.FieldArgs, shareable bool) error {
	if args == nil {
		args = &specs.FieldArgs{}
	}

	fieldType := field.Type
	if args.Type != nil {
		decoded, err := sdl.DecodeType(*args.Type)
		if err != nil {
			return invalidSupergraphf("Cannot parse type %q", *args.Type)
		}
		fieldType = decoded
	}

	out := &ast.FieldDefinition{Name: field.Name, Type: fieldType}
	for _, arg := range field.Arguments {
		out.Arguments = append(out.Arguments, &ast.ArgumentDefinition{
			Name:         arg.Name,
			Type:         arg.Type,
			DefaultValue: arg.DefaultValue,
		})
	}

	if args.Requires != nil {
		out.Directives = append(out.Directives, specs.RequiresDirective(*args.Requires))
	}
	if args.Provides != nil {
		out.Directives = append(out.Directives, specs.ProvidesDirective(*args.Provides))
	}
	external := boolValue(args.External)
	if external {
		out.Directives = append(out.Directives, specs.ExternalDirective(""))
	}
	usedOverridden := boolValue(args.UsedOverridden)
	if usedOverridden {
		out.Directives = append(out.Directives, specs.ExternalDirective(overriddenReason))
	}
	if args.Override != nil {
		out.Directives = append(out.Directives, specs.OverrideDirective(*args.Override))
	}
	if shareable && !external && !usedOverridden {
		out.Directives = append(out.Directives, specs.ShareableDirective())
	}

	dest.Fields = append(dest.Fields, out)
	return nil
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
