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

	"github.com/joshhayes-sheen-vt/router/pkg/specs"
)

// Names of the federation operation surface every subgraph serves.
const (
	anyTypeName     = "_Any"
	serviceTypeName = "_Service"
	entityTypeName  = "_Entity"

	sdlFieldName      = "sdl"
	entitiesFieldName = "_entities"
	serviceFieldName  = "_service"

	representationsArgName = "representations"
)

func (x *extraction) synthesizeFederationOperations() error {
	for _, sub := range x.subgraphs.All() {
		if err := addFederationOperations(sub); err != nil {
			return err
		}
		x.log.V(2).Info("synthesized federation operations", "subgraph", sub.Name)
	}
	return nil
}

// addFederationOperations gives a subgraph the query surface the router
// drives it through: _service for schema discovery always, and
// _entities whenever the subgraph has at least one entity.
func addFederationOperations(sub *Subgraph) error {
	doc := sub.Schema

	if err := doc.InsertType(&ast.Definition{Kind: ast.Scalar, Name: anyTypeName}); err != nil {
		return internalf("add %s to subgraph %q: %v", anyTypeName, sub.Name, err)
	}
	service := &ast.Definition{
		Kind: ast.Object,
		Name: serviceTypeName,
		Fields: ast.FieldList{
			{Name: sdlFieldName, Type: ast.NamedType("String", nil)},
		},
	}
	if err := doc.InsertType(service); err != nil {
		return internalf("add %s to subgraph %q: %v", serviceTypeName, sub.Name, err)
	}

	// Every object type keyed in this subgraph is an entity. Keys from
	// extension-origin provenance live on the type's extension.
	var members []string
	for _, def := range doc.Types() {
		if def.Kind != ast.Object {
			continue
		}
		keyed := def.Directives.ForName(specs.KeyDirectiveName) != nil
		if !keyed {
			if ext := doc.Extension(def.Name); ext != nil {
				keyed = ext.Directives.ForName(specs.KeyDirectiveName) != nil
			}
		}
		if keyed {
			members = append(members, def.Name)
		}
	}
	if len(members) > 0 {
		entity := &ast.Definition{Kind: ast.Union, Name: entityTypeName, Types: members}
		if err := doc.InsertType(entity); err != nil {
			return internalf("add %s to subgraph %q: %v", entityTypeName, sub.Name, err)
		}
	}

	rootName := doc.Root(ast.Query)
	if rootName == "" {
		rootName = "Query"
		if err := doc.InsertType(&ast.Definition{Kind: ast.Object, Name: rootName}); err != nil {
			return internalf("add query root to subgraph %q: %v", sub.Name, err)
		}
		doc.SetRoot(ast.Query, rootName)
	}
	root := doc.Type(rootName)
	if root == nil {
		return internalf("query root %q missing from subgraph %q", rootName, sub.Name)
	}

	if len(members) > 0 {
		setField(root, &ast.FieldDefinition{
			Name: entitiesFieldName,
			Arguments: ast.ArgumentDefinitionList{{
				Name: representationsArgName,
				Type: ast.NonNullListType(ast.NonNullNamedType(anyTypeName, nil), nil),
			}},
			Type: ast.NonNullListType(ast.NamedType(entityTypeName, nil), nil),
		})
	} else {
		removeField(root, entitiesFieldName)
	}

	setField(root, &ast.FieldDefinition{
		Name: serviceFieldName,
		Type: ast.NonNullNamedType(serviceTypeName, nil),
	})
	return nil
}

// setField replaces the named field in place, or appends it.
func setField(def *ast.Definition, field *ast.FieldDefinition) {
	for i, existing := range def.Fields {
		if existing.Name == field.Name {
			def.Fields[i] = field
			return
		}
	}
	def.Fields = append(def.Fields, field)
}

func removeField(def *ast.Definition, name string) {
	for i, existing := range def.Fields {
		if existing.Name == name {
			def.Fields = append(def.Fields[:i], def.Fields[i+1:]...)
			return
		}
	}
}
