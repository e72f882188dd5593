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
	_ "embed"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

//go:embed preamble.graphql
var preambleSDL string

// FederationVersion is the federation spec version the subgraph preamble
// declares and whose directive shapes the extractors emit.
var FederationVersion = Version{Major: 2, Minor: 5}

// Names the federation directives carry in extracted subgraphs. The
// preamble links the federation spec without an import list, so every
// element keeps its prefixed form.
const (
	KeyDirectiveName             = "federation__key"
	RequiresDirectiveName        = "federation__requires"
	ProvidesDirectiveName        = "federation__provides"
	ExternalDirectiveName        = "federation__external"
	OverrideDirectiveName        = "federation__override"
	ShareableDirectiveName       = "federation__shareable"
	InterfaceObjectDirectiveName = "federation__interfaceObject"
)

// Preamble parses the empty federation subgraph schema: the link and
// federation spec declarations plus every federation directive and
// scalar definition. Each call returns a fresh document, so callers may
// mutate the result freely.
func Preamble() (*ast.SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "federation/preamble.graphql", Input: preambleSDL})
	if err != nil {
		return nil, fmt.Errorf("parse federation preamble: %w", err)
	}
	return doc, nil
}

// KeyDirective builds a @federation__key application. The resolvable
// argument is emitted only when it differs from its default.
func KeyDirective(fields string, resolvable bool) *ast.Directive {
	d := &ast.Directive{
		Name:      KeyDirectiveName,
		Arguments: ast.ArgumentList{stringArg("fields", fields)},
	}
	if !resolvable {
		d.Arguments = append(d.Arguments, boolArg("resolvable", false))
	}
	return d
}

// RequiresDirective builds a @federation__requires application.
func RequiresDirective(fields string) *ast.Directive {
	return &ast.Directive{
		Name:      RequiresDirectiveName,
		Arguments: ast.ArgumentList{stringArg("fields", fields)},
	}
}

// ProvidesDirective builds a @federation__provides application.
func ProvidesDirective(fields string) *ast.Directive {
	return &ast.Directive{
		Name:      ProvidesDirectiveName,
		Arguments: ast.ArgumentList{stringArg("fields", fields)},
	}
}

// ExternalDirective builds a @federation__external application. The
// reason argument is omitted when empty.
func ExternalDirective(reason string) *ast.Directive {
	d := &ast.Directive{Name: ExternalDirectiveName}
	if reason != "" {
		d.Arguments = ast.ArgumentList{stringArg("reason", reason)}
	}
	return d
}

// OverrideDirective builds a @federation__override application.
func OverrideDirective(from string) *ast.Directive {
	return &ast.Directive{
		Name:      OverrideDirectiveName,
		Arguments: ast.ArgumentList{stringArg("from", from)},
	}
}

// ShareableDirective builds a @federation__shareable application.
func ShareableDirective() *ast.Directive {
	return &ast.Directive{Name: ShareableDirectiveName}
}

// InterfaceObjectDirective builds a @federation__interfaceObject
// application.
func InterfaceObjectDirective() *ast.Directive {
	return &ast.Directive{Name: InterfaceObjectDirectiveName}
}

func stringArg(name, value string) *ast.Argument {
	return &ast.Argument{
		Name:  name,
		Value: &ast.Value{Raw: value, Kind: ast.StringValue},
	}
}

func boolArg(name string, value bool) *ast.Argument {
	raw := "false"
	if value {
		raw = "true"
	}
	return &ast.Argument{
		Name:  name,
		Value: &ast.Value{Raw: raw, Kind: ast.BooleanValue},
	}
}
