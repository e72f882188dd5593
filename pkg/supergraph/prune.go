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

	"github.com/joshhayes-sheen-vt/router/pkg/sdl"
)

var builtinScalars = map[string]bool{
	"Int":     true,
	"Float":   true,
	"String":  true,
	"Boolean": true,
	"ID":      true,
}

// pruneSubgraphs removes composite types that ended up with no members
// in a subgraph. Scaffolding declares a shell for every provenance
// application without knowing whether any member will follow; a shell
// still empty here never belonged to the subgraph.
func (x *extraction) pruneSubgraphs() error {
	for _, sub := range x.subgraphs.All() {
		if err := pruneEmptyTypes(sub.Schema); err != nil {
			return err
		}
	}
	return nil
}

// pruneEmptyTypes removes every empty object, interface, union, and
// input object, then cleans up the references so removal cannot leave
// the document invalid. Dropping a reference can empty another type, so
// the worklist runs until the document is stable. Enums and scalars are
// never empty by construction and never removed.
func pruneEmptyTypes(doc *sdl.Document) error {
	var queue []string
	for _, def := range doc.Types() {
		if isEmpty(def) {
			queue = append(queue, def.Name)
		}
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		def := doc.Type(name)
		if def == nil {
			continue
		}
		switch def.Kind {
		case ast.Object, ast.Interface, ast.Union, ast.InputObject:
		default:
			return internalf("Encountered type kind that shouldn't have been removed")
		}

		doc.RemoveType(name)
		queue = append(queue, dropReferences(doc, name)...)
	}

	pruneDirectiveDefinitions(doc)
	return nil
}

func isEmpty(def *ast.Definition) bool {
	switch def.Kind {
	case ast.Object, ast.Interface, ast.InputObject:
		return len(def.Fields) == 0
	case ast.Union:
		return len(def.Types) == 0
	default:
		return false
	}
}

// dropReferences removes every reference to a removed type and returns
// the names of types that became empty as a result.
func dropReferences(doc *sdl.Document, removed string) []string {
	var emptied []string
	for _, def := range doc.Types() {
		switch def.Kind {
		case ast.Object, ast.Interface:
			def.Fields = fieldsWithout(def.Fields, removed)
			def.Interfaces = stringsWithout(def.Interfaces, removed)
		case ast.Union:
			def.Types = stringsWithout(def.Types, removed)
		case ast.InputObject:
			def.Fields = fieldsWithout(def.Fields, removed)
		default:
			continue
		}
		if isEmpty(def) {
			emptied = append(emptied, def.Name)
		}
	}
	return emptied
}

// fieldsWithout drops fields returning the removed type and, on the
// survivors, arguments of the removed type.
func fieldsWithout(fields ast.FieldList, removed string) ast.FieldList {
	out := fields[:0]
	for _, field := range fields {
		if baseTypeName(field.Type) == removed {
			continue
		}
		args := field.Arguments[:0]
		for _, arg := range field.Arguments {
			if baseTypeName(arg.Type) != removed {
				args = append(args, arg)
			}
		}
		field.Arguments = args
		out = append(out, field)
	}
	return out
}

func stringsWithout(list []string, removed string) []string {
	out := list[:0]
	for _, s := range list {
		if s != removed {
			out = append(out, s)
		}
	}
	return out
}

// pruneDirectiveDefinitions removes directive definitions left with an
// argument whose type no longer exists.
func pruneDirectiveDefinitions(doc *sdl.Document) {
	for _, def := range doc.DirectiveDefinitions() {
		for _, arg := range def.Arguments {
			base := baseTypeName(arg.Type)
			if !builtinScalars[base] && !doc.HasType(base) {
				doc.RemoveDirectiveDefinition(def.Name)
				break
			}
		}
	}
}

func baseTypeName(t *ast.Type) string {
	for t.Elem != nil {
		t = t.Elem
	}
	return t.NamedType
}
