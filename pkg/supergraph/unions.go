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

// extractUnion distributes a union's members to the subgraphs that
// declared it. Member provenance sits on the union itself, naming the
// member it targets, because GraphQL has no syntax for directives on
// individual members. Older join spec versions have no member
// provenance at all; every member then fans out to every owning
// subgraph that also has the member type.
func (x *extraction) extractUnion(info *typeInfo) error {
	def := info.def

	apps := directivesNamed(def.Directives, x.join.UnionMemberDirective())
	if len(apps) == 0 {
		for _, graph := range info.graphs {
			sub, err := x.subgraphByGraph(graph)
			if err != nil {
				return err
			}
			dest := sub.Schema.Type(def.Name)
			for _, member := range def.Types {
				if sub.Schema.HasType(member) {
					dest.Types = appendUnique(dest.Types, member)
				}
			}
		}
		return nil
	}

	for _, app := range apps {
		args, err := x.join.UnionMemberArguments(app)
		if err != nil {
			return &InvalidSupergraphError{Err: err}
		}
		if !info.hasGraph(args.Graph) {
			return invalidSupergraphf("@%s cannot exist on %s for subgraph %s without type-level @%s",
				x.join.UnionMemberDirective(), def.Name, args.Graph, x.join.TypeDirective())
		}
		sub, err := x.subgraphByGraph(args.Graph)
		if err != nil {
			return err
		}
		dest := sub.Schema.Type(def.Name)
		dest.Types = appendUnique(dest.Types, args.Member)
	}
	return nil
}
