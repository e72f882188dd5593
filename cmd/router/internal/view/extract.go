package view

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"sigs.k8s.io/yaml"
)

type ExtractView interface {
	Render(result ExtractResult)
}

// ExtractResult is the outcome of one supergraph extraction. The
// machine-readable renderings (json/yaml) are shaped like the services
// manifest federation gateways consume: one entry per subgraph with its
// name, routing URL, and schema location.
type ExtractResult struct {
	Supergraph string              `json:"supergraph"`
	OutDir     string              `json:"-"`
	Subgraphs  []ExtractedSubgraph `json:"subgraphs"`
}

type ExtractedSubgraph struct {
	Name       string `json:"name"`
	RoutingURL string `json:"routing_url"`
	SchemaFile string `json:"schema_file,omitempty"`
	Schema     string `json:"schema,omitempty"`
}

// Human view implementation.

type extractHumanView struct {
	*HumanView
}

func newExtractHumanView(hv *HumanView) *extractHumanView {
	return &extractHumanView{HumanView: hv}
}

func (v *extractHumanView) Render(result ExtractResult) {
	word := "subgraphs"
	if len(result.Subgraphs) == 1 {
		word = "subgraph"
	}
	v.Println(color.RGB(225, 0, 152).Sprintf("Extracted!"),
		fmt.Sprintf("%d %s from %s", len(result.Subgraphs), word, result.Supergraph))

	for _, sub := range result.Subgraphs {
		if sub.Schema != "" {
			v.Printf("\n# subgraph: %s (%s)\n%s", sub.Name, sub.RoutingURL, sub.Schema)
			continue
		}
		v.Printf("  %s: %s (%s)\n", sub.Name, sub.SchemaFile, sub.RoutingURL)
	}
}

// JSON view implementation.

type extractJSONView struct {
	*JSONView
}

func newExtractJSONView(jv *JSONView) *extractJSONView {
	return &extractJSONView{JSONView: jv}
}

func (v *extractJSONView) Render(result ExtractResult) {
	if data, err := json.MarshalIndent(result, "", "  "); err == nil {
		v.Println(string(data))
	}
}

// YAML view implementation.

type extractYAMLView struct {
	*YAMLView
}

func newExtractYAMLView(yv *YAMLView) *extractYAMLView {
	return &extractYAMLView{YAMLView: yv}
}

func (v *extractYAMLView) Render(result ExtractResult) {
	if data, err := yaml.Marshal(result); err == nil {
		v.Printf("%s", data)
	}
}

func NewExtractView(v Viewer) ExtractView {
	switch vt := v.(type) {
	case *HumanView:
		return newExtractHumanView(vt)
	case *JSONView:
		return newExtractJSONView(vt)
	case *YAMLView:
		return newExtractYAMLView(vt)
	default:
		panic("unknown view type")
	}
}
