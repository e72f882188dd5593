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

// Package sdl builds GraphQL schema documents incrementally. A Document
// keeps type and directive definitions indexed by name while preserving
// insertion order, so repeated builds of the same content print the
// same SDL.
package sdl

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Document is a mutable GraphQL schema document. The zero value is not
// usable; construct one with NewDocument.
type Document struct {
	schemaDirectives ast.DirectiveList

	directives []*ast.DirectiveDefinition
	dirIndex   map[string]*ast.DirectiveDefinition

	types     []*ast.Definition
	typeIndex map[string]*ast.Definition

	extensions []*ast.Definition
	extIndex   map[string]*ast.Definition

	roots map[ast.Operation]string
}

func NewDocument() *Document {
	return &Document{
		dirIndex:  map[string]*ast.DirectiveDefinition{},
		typeIndex: map[string]*ast.Definition{},
		extIndex:  map[string]*ast.Definition{},
		roots:     map[ast.Operation]string{},
	}
}

// AddSchemaDirective appends a directive application to the document's
// schema extension.
func (d *Document) AddSchemaDirective(directive *ast.Directive) {
	d.schemaDirectives = append(d.schemaDirectives, directive)
}

// AddDirectiveDefinition adds a directive definition unless one with the
// same name is already present. It reports whether the definition was
// added.
func (d *Document) AddDirectiveDefinition(def *ast.DirectiveDefinition) bool {
	if _, ok := d.dirIndex[def.Name]; ok {
		return false
	}
	d.directives = append(d.directives, def)
	d.dirIndex[def.Name] = def
	return true
}

// DirectiveDefinition returns the named directive definition, or nil.
func (d *Document) DirectiveDefinition(name string) *ast.DirectiveDefinition {
	return d.dirIndex[name]
}

// DirectiveDefinitions returns a snapshot of the directive definitions
// in insertion order. Removing entries while ranging over the snapshot
// is safe.
func (d *Document) DirectiveDefinitions() []*ast.DirectiveDefinition {
	out := make([]*ast.DirectiveDefinition, len(d.directives))
	copy(out, d.directives)
	return out
}

// RemoveDirectiveDefinition removes the named directive definition if
// present.
func (d *Document) RemoveDirectiveDefinition(name string) {
	if _, ok := d.dirIndex[name]; !ok {
		return
	}
	delete(d.dirIndex, name)
	for i, def := range d.directives {
		if def.Name == name {
			d.directives = append(d.directives[:i], d.directives[i+1:]...)
			break
		}
	}
}

// InsertType adds a type definition to the document. Inserting a name
// that is already present is an error.
func (d *Document) InsertType(def *ast.Definition) error {
	if _, ok := d.typeIndex[def.Name]; ok {
		return fmt.Errorf("type %q already exists in document", def.Name)
	}
	d.types = append(d.types, def)
	d.typeIndex[def.Name] = def
	return nil
}

// Type returns the named type definition, or nil.
func (d *Document) Type(name string) *ast.Definition {
	return d.typeIndex[name]
}

// HasType reports whether the document defines the named type.
func (d *Document) HasType(name string) bool {
	_, ok := d.typeIndex[name]
	return ok
}

// Types returns a snapshot of the type definitions in insertion order.
// Removing types while ranging over the snapshot is safe.
func (d *Document) Types() []*ast.Definition {
	out := make([]*ast.Definition, len(d.types))
	copy(out, d.types)
	return out
}

// RemoveType removes the named type definition, together with any
// extension of it and any root operation bound to it.
func (d *Document) RemoveType(name string) {
	if _, ok := d.typeIndex[name]; !ok {
		return
	}
	delete(d.typeIndex, name)
	for i, def := range d.types {
		if def.Name == name {
			d.types = append(d.types[:i], d.types[i+1:]...)
			break
		}
	}
	d.RemoveExtension(name)
	for op, typeName := range d.roots {
		if typeName == name {
			delete(d.roots, op)
		}
	}
}

// Extension returns the extension of the named type, or nil.
func (d *Document) Extension(name string) *ast.Definition {
	return d.extIndex[name]
}

// EnsureExtension returns the extension of the named type, creating an
// empty one of the given kind if none exists yet.
func (d *Document) EnsureExtension(name string, kind ast.DefinitionKind) *ast.Definition {
	if ext, ok := d.extIndex[name]; ok {
		return ext
	}
	ext := &ast.Definition{Kind: kind, Name: name}
	d.extensions = append(d.extensions, ext)
	d.extIndex[name] = ext
	return ext
}

// RemoveExtension removes the extension of the named type if present.
func (d *Document) RemoveExtension(name string) {
	if _, ok := d.extIndex[name]; !ok {
		return
	}
	delete(d.extIndex, name)
	for i, def := range d.extensions {
		if def.Name == name {
			d.extensions = append(d.extensions[:i], d.extensions[i+1:]...)
			break
		}
	}
}

// Extensions returns a snapshot of the type extensions in insertion
// order.
func (d *Document) Extensions() []*ast.Definition {
	out := make([]*ast.Definition, len(d.extensions))
	copy(out, d.extensions)
	return out
}

// SetRoot binds a root operation to a type name, overwriting any
// previous binding.
func (d *Document) SetRoot(op ast.Operation, typeName string) {
	d.roots[op] = typeName
}

// Root returns the type name bound to a root operation, or empty.
func (d *Document) Root(op ast.Operation) string {
	return d.roots[op]
}

var rootOrder = []ast.Operation{ast.Query, ast.Mutation, ast.Subscription}

// Build assembles the document into a gqlparser schema document. Schema
// directives and root bindings become schema extensions, so the result
// stands alone or merges over a base schema.
func (d *Document) Build() *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}

	if len(d.schemaDirectives) > 0 {
		doc.SchemaExtension = append(doc.SchemaExtension, &ast.SchemaDefinition{
			Directives: d.schemaDirectives,
		})
	}

	var ops ast.OperationTypeDefinitionList
	for _, op := range rootOrder {
		if typeName, ok := d.roots[op]; ok {
			ops = append(ops, &ast.OperationTypeDefinition{Operation: op, Type: typeName})
		}
	}
	if len(ops) > 0 {
		doc.SchemaExtension = append(doc.SchemaExtension, &ast.SchemaDefinition{
			OperationTypes: ops,
		})
	}

	doc.Directives = append(doc.Directives, d.directives...)
	doc.Definitions = append(doc.Definitions, d.types...)
	doc.Extensions = append(doc.Extensions, d.extensions...)
	return doc
}

// SDL prints the document as schema definition language.
func (d *Document) SDL() string {
	var buf strings.Builder
	formatter.NewFormatter(&buf).FormatSchemaDocument(d.Build())
	return buf.String()
}
