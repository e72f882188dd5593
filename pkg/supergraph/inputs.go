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

// extractInput distributes an input object's fields to the subgraphs
// that declared it. Input fields keep their type and default value;
// federation field directives do not apply to them.
func (x *extraction) extractInput(info *typeInfo) error {
	def := info.def

	for _, field := range def.Fields {
		apps := directivesNamed(field.Directives, x.join.FieldDirective())

		if len(apps) == 0 {
			for _, graph := range info.graphs {
				sub, err := x.subgraphByGraph(graph)
				if err != nil {
					return err
				}
				if err := addInputField(sub.Schema.Type(def.Name), field, nil); err != nil {
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
			sub, err := x.subgraphByGraph(*args.Graph)
			if err != nil {
				return err
			}
			if err := addInputField(sub.Schema.Type(def.Name), field, args); err != nil {
				return err
			}
		}
	}
	return nil
}

func addInputField(dest *ast.Definition, field *ast.FieldDefinition, args *specs.FieldArgs) error {
	fieldType := field.Type
	if args != nil && args.Type != nil {
		decoded, err := sdl.DecodeType(*args.Type)
		if err != nil {
			return invalidSupergraphf("Cannot parse type %q", *args.Type)
		}
		fieldType = decoded
	}
	dest.Fields = append(dest.Fields, &ast.FieldDefinition{
		Name:         field.Name,
		Type:         fieldType,
		DefaultValue: field.DefaultValue,
	})
	return nil
}
