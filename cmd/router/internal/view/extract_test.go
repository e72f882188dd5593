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

package view_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshhayes-sheen-vt/router/cmd/router/internal/view"
)

func fileResult() view.ExtractResult {
	return view.ExtractResult{
		Supergraph: "supergraph.graphql",
		OutDir:     "./subgraphs",
		Subgraphs: []view.ExtractedSubgraph{
			{Name: "accounts", RoutingURL: "http://accounts.demo/graphql", SchemaFile: "subgraphs/accounts.graphql"},
			{Name: "reviews", RoutingURL: "http://reviews.demo/graphql", SchemaFile: "subgraphs/reviews.graphql"},
		},
	}
}

func TestExtractHumanView_Files(t *testing.T) {
	buf := &bytes.Buffer{}
	v := view.NewExtractView(view.NewHumanView(view.NewStream(buf), view.LogLevelSilent))

	v.Render(fileResult())

	output := buf.String()
	assert.Contains(t, output, "Extracted!")
	assert.Contains(t, output, "2 subgraphs from supergraph.graphql")
	assert.Contains(t, output, "accounts: subgraphs/accounts.graphql (http://accounts.demo/graphql)")
	assert.Contains(t, output, "reviews: subgraphs/reviews.graphql (http://reviews.demo/graphql)")
}

func TestExtractHumanView_SingularSubgraph(t *testing.T) {
	buf := &bytes.Buffer{}
	v := view.NewExtractView(view.NewHumanView(view.NewStream(buf), view.LogLevelSilent))

	v.Render(view.ExtractResult{
		Supergraph: "supergraph.graphql",
		Subgraphs: []view.ExtractedSubgraph{
			{Name: "accounts", RoutingURL: "http://accounts.demo/graphql", SchemaFile: "accounts.graphql"},
		},
	})

	assert.Contains(t, buf.String(), "1 subgraph from supergraph.graphql")
}

func TestExtractHumanView_StdoutBundles(t *testing.T) {
	buf := &bytes.Buffer{}
	v := view.NewExtractView(view.NewHumanView(view.NewStream(buf), view.LogLevelSilent))

	v.Render(view.ExtractResult{
		Supergraph: "supergraph.graphql",
		Subgraphs: []view.ExtractedSubgraph{
			{Name: "accounts", RoutingURL: "http://accounts.demo/graphql", Schema: "type Query {\n\tme: String\n}\n"},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "# subgraph: accounts (http://accounts.demo/graphql)")
	assert.Contains(t, output, "type Query {")
}

func TestExtractJSONView_Manifest(t *testing.T) {
	buf := &bytes.Buffer{}
	v := view.NewExtractView(view.NewJSONView(view.NewStream(buf), view.LogLevelSilent))

	v.Render(fileResult())

	var manifest struct {
		Supergraph string `json:"supergraph"`
		Subgraphs  []struct {
			Name       string `json:"name"`
			RoutingURL string `json:"routing_url"`
			SchemaFile string `json:"schema_file"`
			Schema     string `json:"schema"`
		} `json:"subgraphs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &manifest))

	assert.Equal(t, "supergraph.graphql", manifest.Supergraph)
	require.Len(t, manifest.Subgraphs, 2)
	assert.Equal(t, "accounts", manifest.Subgraphs[0].Name)
	assert.Equal(t, "http://accounts.demo/graphql", manifest.Subgraphs[0].RoutingURL)
	assert.Equal(t, "subgraphs/accounts.graphql", manifest.Subgraphs[0].SchemaFile)
	assert.Empty(t, manifest.Subgraphs[0].Schema)

	// The output directory is human-view detail, not manifest content.
	assert.NotContains(t, buf.String(), "OutDir")
}

func TestExtractYAMLView_Manifest(t *testing.T) {
	buf := &bytes.Buffer{}
	v := view.NewExtractView(view.NewYAMLView(view.NewStream(buf), view.LogLevelSilent))

	v.Render(fileResult())

	output := buf.String()
	assert.Contains(t, output, "supergraph: supergraph.graphql")
	assert.Contains(t, output, "name: accounts")
	assert.Contains(t, output, "routing_url: http://accounts.demo/graphql")
	assert.Contains(t, output, "schema_file: subgraphs/accounts.graphql")
}
