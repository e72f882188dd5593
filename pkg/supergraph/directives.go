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

var executableLocations = map[ast.DirectiveLocation]bool{
	ast.LocationQuery:              true,
	ast.LocationMutation:           true,
	ast.LocationSubscription:       true,
	ast.LocationField:              true,
	ast.LocationFragmentDefinition: true,
	ast.LocationFragmentSpread:     true,
	ast.LocationInlineFragment:     true,
	ast.LocationVariableDefinition: true,
}

// propagateExecutableDirectives copies every executable directive
// definition of the supergraph into every subgraph. Such directives may
// appear in queries, and queries are planned against subgraph schemas.
// Spec machinery directives and type-system-only definitions stay
// behind; type-system locations are stripped from mixed definitions
// since their applications are never extracted.
func (x *extraction) propagateExecutableDirectives() {
	for _, def := range x.doc.Directives {
		if x.metadata.OwnsDirectiveName(def.Name) {
			continue
		}
		var locations []ast.DirectiveLocation
		for _, loc := range def.Locations {
			if executableLocations[loc] {
				locations = append(locations, loc)
			}
		}
		if len(locations) == 0 {
			continue
		}
		for _, sub := range x.subgraphs.All() {
			sub.Schema.AddDirectiveDefinition(executableCopy(def, locations))
		}
		x.log.V(2).Info("propagated executable directive", "directive", def.Name)
	}
}

// executableCopy clones a directive definition with the given locations.
// Descriptions and argument directives are dropped; we never extract
// type-system directive applications, so anything applied to the
// arguments would dangle.
func executableCopy(def *ast.DirectiveDefinition, locations []ast.DirectiveLocation) *ast.DirectiveDefinition {
	out := &ast.DirectiveDefinition{
		Name:         def.Name,
		IsRepeatable: def.IsRepeatable,
		Locations:    locations,
		Position:     def.Position,
	}
	for _, arg := range def.Arguments {
		out.Arguments = append(out.Arguments, &ast.ArgumentDefinition{
			Name:         arg.Name,
			Type:         arg.Type,
			DefaultValue: arg.DefaultValue,
		})
	}
	return out
}
