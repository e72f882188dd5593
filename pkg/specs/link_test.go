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

package specs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func parseTestSchema(t *testing.T, sdl string) *ast.SchemaDocument {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "test.graphql", Input: sdl})
	if err != nil {
		t.Fatalf("parse test schema: %v", err)
	}
	return doc
}

func TestResolveLinks(t *testing.T) {
	tests := []struct {
		name    string
		sdl     string
		wantErr string
		assert  func(t *testing.T, m *Metadata)
	}{
		{
			name: "supergraph header",
			sdl: `
				schema
					@link(url: "https://specs.apollo.dev/link/v1.0")
					@link(url: "https://specs.apollo.dev/join/v0.3", for: EXECUTION)
				{
					query: Query
				}
				type Query { ok: Boolean }
			`,
			assert: func(t *testing.T, m *Metadata) {
				require.Len(t, m.Links, 2)
				join := m.ByIdentity(JoinIdentity)
				require.NotNil(t, join)
				require.Equal(t, Version{Major: 0, Minor: 3}, join.URL.Version)
				require.Equal(t, PurposeExecution, join.Purpose)
				require.Equal(t, "join__type", join.DirectiveName("type"))
				require.Equal(t, "join__Graph", join.TypeName("Graph"))
			},
		},
		{
			name: "schema extension only",
			sdl: `
				extend schema
					@link(url: "https://specs.apollo.dev/link/v1.0")
					@link(url: "https://specs.apollo.dev/join/v0.5")
			`,
			assert: func(t *testing.T, m *Metadata) {
				require.Len(t, m.Links, 2)
				require.NotNil(t, m.ByIdentity(JoinIdentity))
			},
		},
		{
			name: "aliased link directive",
			sdl: `
				schema
					@fedLink(url: "https://specs.apollo.dev/link/v1.0", as: "fedLink")
					@fedLink(url: "https://specs.apollo.dev/join/v0.3", as: "fedJoin")
				{
					query: Query
				}
				type Query { ok: Boolean }
			`,
			assert: func(t *testing.T, m *Metadata) {
				link := m.ByIdentity(LinkIdentity)
				require.NotNil(t, link)
				require.Equal(t, "fedLink", link.Prefix())
				require.Equal(t, "fedLink", link.DirectiveName("link"))

				join := m.ByIdentity(JoinIdentity)
				require.NotNil(t, join)
				require.Equal(t, "fedJoin__graph", join.DirectiveName("graph"))
				require.Equal(t, "fedJoin__Graph", join.TypeName("Graph"))
			},
		},
		{
			name: "imports and aliases",
			sdl: `
				extend schema
					@link(url: "https://specs.apollo.dev/link/v1.0")
					@link(url: "https://specs.apollo.dev/federation/v2.5",
						import: ["@key", {name: "@shareable", as: "@canShare"}, "FieldSet"])
			`,
			assert: func(t *testing.T, m *Metadata) {
				fed := m.ByIdentity(FederationIdentity)
				require.NotNil(t, fed)
				require.Equal(t, "key", fed.DirectiveName("key"))
				require.Equal(t, "canShare", fed.DirectiveName("shareable"))
				require.Equal(t, "federation__external", fed.DirectiveName("external"))
				require.Equal(t, "FieldSet", fed.TypeName("FieldSet"))
				require.Equal(t, "federation__Scope", fed.TypeName("Scope"))

				require.True(t, fed.OwnsDirectiveName("key"))
				require.True(t, fed.OwnsDirectiveName("canShare"))
				require.False(t, fed.OwnsDirectiveName("shareable"))
				require.True(t, fed.OwnsTypeName("FieldSet"))
				require.True(t, m.OwnsDirectiveName("federation__override"))
				require.False(t, m.OwnsDirectiveName("deprecated"))
			},
		},
		{
			name: "not a core schema",
			sdl: `
				type Query { ok: Boolean }
			`,
			assert: func(t *testing.T, m *Metadata) {
				require.Empty(t, m.Links)
				require.Nil(t, m.ByIdentity(LinkIdentity))
			},
		},
		{
			name: "link without self application is ignored",
			sdl: `
				schema @link(url: "https://specs.apollo.dev/join/v0.3") { query: Query }
				type Query { ok: Boolean }
			`,
			assert: func(t *testing.T, m *Metadata) {
				require.Empty(t, m.Links)
			},
		},
		{
			name: "unknown purpose",
			sdl: `
				extend schema
					@link(url: "https://specs.apollo.dev/link/v1.0")
					@link(url: "https://specs.apollo.dev/join/v0.3", for: NAVIGATION)
			`,
			wantErr: `unknown purpose "NAVIGATION"`,
		},
		{
			name: "import not a list",
			sdl: `
				extend schema
					@link(url: "https://specs.apollo.dev/link/v1.0")
					@link(url: "https://specs.apollo.dev/federation/v2.5", import: "@key")
			`,
			wantErr: "import must be a list",
		},
		{
			name: "import object missing name",
			sdl: `
				extend schema
					@link(url: "https://specs.apollo.dev/link/v1.0")
					@link(url: "https://specs.apollo.dev/federation/v2.5", import: [{as: "@canShare"}])
			`,
			wantErr: "missing name",
		},
		{
			name: "import alias kind mismatch",
			sdl: `
				extend schema
					@link(url: "https://specs.apollo.dev/link/v1.0")
					@link(url: "https://specs.apollo.dev/federation/v2.5",
						import: [{name: "@shareable", as: "Shareable"}])
			`,
			wantErr: "must match the kind",
		},
		{
			name: "invalid alias",
			sdl: `
				extend schema
					@link(url: "https://specs.apollo.dev/link/v1.0")
					@link(url: "https://specs.apollo.dev/join/v0.3", as: "not valid")
			`,
			wantErr: "is not a valid name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ResolveLinks(parseTestSchema(t, tt.sdl))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.assert(t, m)
		})
	}
}
