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
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// validateSubgraphs checks that every extracted subgraph round-trips
// through a full schema load. A failure here means the extraction
// produced something no GraphQL server could serve, which is reported
// as corruption rather than a user error.
func (x *extraction) validateSubgraphs() error {
	for _, sub := range x.subgraphs.All() {
		source := &ast.Source{
			Name:  sub.Name + ".graphql",
			Input: sub.Schema.SDL(),
		}
		if _, err := gqlparser.LoadSchema(source); err != nil {
			return invalidSubgraph(sub.Name, err)
		}
		x.log.V(2).Info("validated subgraph schema", "subgraph", sub.Name)
	}
	return nil
}
