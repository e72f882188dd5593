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

// extractEnum distributes an enum's values to the subgraphs that
// declared it. Values without provenance belong to every owning
// subgraph; older join spec versions never mark values.
func (x *extraction) extractEnum(info *typeInfo) error {
	def := info.def

	for _, value := range def.EnumValues {
		apps := directivesNamed(value.Directives, x.join.EnumValueDirective())

		if len(apps) == 0 {
			for _, graph := range info.graphs {
				sub, err := x.subgraphByGraph(graph)
				if err != nil {
					return err
				}
				addEnumValue(sub.Schema.Type(def.Name), value.Name)
			}
			continue
		}

		for _, app := range apps {
			args, err := x.join.EnumValueArguments(app)
			if err != nil {
				return &InvalidSupergraphError{Err: err}
			}
			if !info.hasGraph(args.Graph) {
				return invalidSupergraphf("@%s cannot exist on %s.%s for subgraph %s without type-level @%s",
					x.join.EnumValueDirective(), def.Name, value.Name, args.Graph, x.join.TypeDirective())
			}
			sub, err := x.subgraphByGraph(args.Graph)
			if err != nil {
				return err
			}
			addEnumValue(sub.Schema.Type(def.Name), value.Name)
		}
	}
	return nil
}

// addEnumValue appends a bare value. Supergraph value directives are
// provenance only and never carry over.
func addEnumValue(dest *ast.Definition, name string) {
	if dest.EnumValues.ForName(name) != nil {
		return
	}
	dest.EnumValues = append(dest.EnumValues, &ast.EnumValueDefinition{Name: name})
}
