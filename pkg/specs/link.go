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
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Purpose is the declared role of a linked spec in the schema.
type Purpose string

const (
	PurposeSecurity  Purpose = "SECURITY"
	PurposeExecution Purpose = "EXECUTION"
)

// Import is one entry of a @link import list. Element is the name as the
// spec defines it ("@key" for directives, "Purpose" for types); Alias is
// the local name it was imported under, empty when imported unrenamed.
type Import struct {
	Element string
	Alias   string
}

// IsDirective reports whether the import names a directive element.
func (im Import) IsDirective() bool {
	return strings.HasPrefix(im.Element, "@")
}

// ElementName returns the spec-side element name without the "@" marker.
func (im Import) ElementName() string {
	return strings.TrimPrefix(im.Element, "@")
}

// LocalName returns the name the element has in the linking schema,
// without the "@" marker.
func (im Import) LocalName() string {
	if im.Alias != "" {
		return strings.TrimPrefix(im.Alias, "@")
	}
	return im.ElementName()
}

// Link is one resolved @link application on the schema.
type Link struct {
	URL     *SpecURL
	As      string
	Purpose Purpose
	Imports []Import
}

// Prefix returns the namespace prefix the linked spec's elements use in
// this schema: the alias when one was given, the spec name otherwise.
func (l *Link) Prefix() string {
	if l.As != "" {
		return l.As
	}
	return l.URL.Identity.Name
}

// DirectiveName resolves a spec directive element to its name in this
// schema: an import wins, the spec's root element maps to the bare
// prefix, and everything else is prefixed.
func (l *Link) DirectiveName(element string) string {
	for _, im := range l.Imports {
		if im.IsDirective() && im.ElementName() == element {
			return im.LocalName()
		}
	}
	if element == l.URL.Identity.Name {
		return l.Prefix()
	}
	return l.Prefix() + "__" + element
}

// TypeName resolves a spec type element to its name in this schema.
func (l *Link) TypeName(element string) string {
	for _, im := range l.Imports {
		if !im.IsDirective() && im.Element == element {
			return im.LocalName()
		}
	}
	return l.Prefix() + "__" + element
}

// OwnsTypeName reports whether a type of the linking schema belongs to
// the linked spec.
func (l *Link) OwnsTypeName(name string) bool {
	if strings.HasPrefix(name, l.Prefix()+"__") {
		return true
	}
	for _, im := range l.Imports {
		if !im.IsDirective() && im.LocalName() == name {
			return true
		}
	}
	return false
}

// OwnsDirectiveName reports whether a directive of the linking schema
// belongs to the linked spec.
func (l *Link) OwnsDirectiveName(name string) bool {
	if name == l.Prefix() || strings.HasPrefix(name, l.Prefix()+"__") {
		return true
	}
	for _, im := range l.Imports {
		if im.IsDirective() && im.LocalName() == name {
			return true
		}
	}
	return false
}

// Metadata is the resolved set of @link applications of a core schema.
type Metadata struct {
	Links []*Link

	byIdentity map[Identity]*Link
}

// ByIdentity returns the first link for the given spec identity, or nil.
func (m *Metadata) ByIdentity(id Identity) *Link {
	return m.byIdentity[id]
}

// OwnsTypeName reports whether any linked spec owns the given type name.
func (m *Metadata) OwnsTypeName(name string) bool {
	for _, l := range m.Links {
		if l.OwnsTypeName(name) {
			return true
		}
	}
	return false
}

// OwnsDirectiveName reports whether any linked spec owns the given
// directive name.
func (m *Metadata) OwnsDirectiveName(name string) bool {
	for _, l := range m.Links {
		if l.OwnsDirectiveName(name) {
			return true
		}
	}
	return false
}

// ResolveLinks decodes the @link applications of a schema document into
// Metadata. The link directive is located by bootstrapping: an
// application on the schema whose url argument resolves to the link
// spec's own identity names the directive, aliased or not. A document
// with no such self-referential application yields empty Metadata, which
// callers treat as "not a core schema".
func ResolveLinks(doc *ast.SchemaDocument) (*Metadata, error) {
	applications := schemaDirectives(doc)

	linkNames := map[string]bool{}
	for _, d := range applications {
		raw := stringArgument(d, "url")
		if raw == nil {
			continue
		}
		u, err := ParseSpecURL(*raw)
		if err != nil {
			continue
		}
		if u.Identity == LinkIdentity {
			linkNames[d.Name] = true
		}
	}
	if len(linkNames) == 0 {
		return &Metadata{byIdentity: map[Identity]*Link{}}, nil
	}

	m := &Metadata{byIdentity: map[Identity]*Link{}}
	for _, d := range applications {
		if !linkNames[d.Name] {
			continue
		}
		link, err := decodeLink(d)
		if err != nil {
			return nil, err
		}
		m.Links = append(m.Links, link)
		if _, seen := m.byIdentity[link.URL.Identity]; !seen {
			m.byIdentity[link.URL.Identity] = link
		}
	}
	return m, nil
}

func schemaDirectives(doc *ast.SchemaDocument) ast.DirectiveList {
	var out ast.DirectiveList
	for _, s := range doc.Schema {
		out = append(out, s.Directives...)
	}
	for _, s := range doc.SchemaExtension {
		out = append(out, s.Directives...)
	}
	return out
}

func decodeLink(d *ast.Directive) (*Link, error) {
	raw := stringArgument(d, "url")
	if raw == nil {
		return nil, fmt.Errorf("invalid @%s application: url must be a non-null string", d.Name)
	}
	u, err := ParseSpecURL(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid @%s application: %w", d.Name, err)
	}

	link := &Link{URL: u}
	if as := stringArgument(d, "as"); as != nil {
		if !specNamePattern.MatchString(*as) {
			return nil, fmt.Errorf("invalid @%s application: alias %q is not a valid name", d.Name, *as)
		}
		link.As = *as
	}
	if purpose := enumArgument(d, "for"); purpose != nil {
		switch Purpose(*purpose) {
		case PurposeSecurity, PurposeExecution:
			link.Purpose = Purpose(*purpose)
		default:
			return nil, fmt.Errorf("invalid @%s application: unknown purpose %q", d.Name, *purpose)
		}
	}

	imports, err := decodeImports(d)
	if err != nil {
		return nil, err
	}
	link.Imports = imports
	return link, nil
}

func decodeImports(d *ast.Directive) ([]Import, error) {
	arg := d.Arguments.ForName("import")
	if arg == nil || arg.Value == nil || arg.Value.Kind == ast.NullValue {
		return nil, nil
	}
	if arg.Value.Kind != ast.ListValue {
		return nil, fmt.Errorf("invalid @%s application: import must be a list", d.Name)
	}

	var imports []Import
	for _, child := range arg.Value.Children {
		im, err := decodeImport(d.Name, child.Value)
		if err != nil {
			return nil, err
		}
		imports = append(imports, im)
	}
	return imports, nil
}

func decodeImport(directive string, v *ast.Value) (Import, error) {
	switch v.Kind {
	case ast.StringValue, ast.BlockValue:
		return Import{Element: v.Raw}, nil
	case ast.ObjectValue:
		var im Import
		for _, field := range v.Children {
			if field.Value == nil || (field.Value.Kind != ast.StringValue && field.Value.Kind != ast.BlockValue) {
				return Import{}, fmt.Errorf("invalid @%s import: %q must be a string", directive, field.Name)
			}
			switch field.Name {
			case "name":
				im.Element = field.Value.Raw
			case "as":
				im.Alias = field.Value.Raw
			}
		}
		if im.Element == "" {
			return Import{}, fmt.Errorf("invalid @%s import: missing name", directive)
		}
		if im.Alias != "" && im.IsDirective() != strings.HasPrefix(im.Alias, "@") {
			return Import{}, fmt.Errorf("invalid @%s import: alias %q must match the kind of %q", directive, im.Alias, im.Element)
		}
		return im, nil
	default:
		return Import{}, fmt.Errorf("invalid @%s import: entries must be strings or {name, as} objects", directive)
	}
}

func stringArgument(d *ast.Directive, name string) *string {
	arg := d.Arguments.ForName(name)
	if arg == nil || arg.Value == nil {
		return nil
	}
	if arg.Value.Kind != ast.StringValue && arg.Value.Kind != ast.BlockValue {
		return nil
	}
	raw := arg.Value.Raw
	return &raw
}

func enumArgument(d *ast.Directive, name string) *string {
	arg := d.Arguments.ForName(name)
	if arg == nil || arg.Value == nil || arg.Value.Kind != ast.EnumValue {
		return nil
	}
	raw := arg.Value.Raw
	return &raw
}
