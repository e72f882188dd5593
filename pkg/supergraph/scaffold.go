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

// typeInfo records, for one supergraph type, which subgraphs declared it
// through type-level join provenance. Graph enum values are kept in
// first-application order; the map value marks subgraphs that declared
// the type as an interface object.
type typeInfo struct {
	def     *ast.Definition
	graphs  []string
	members map[string]bool
}

func (ti *typeInfo) hasGraph(graph string) bool {
	_, ok := ti.members[graph]
	return ok
}

// typeInfos buckets scaffolded types by their supergraph kind. Scalars
// have no content to extract and are not tracked.
type typeInfos struct {
	byKind map[ast.DefinitionKind][]*typeInfo
}

var rootOperations = map[string]ast.Operation{
	"Query":        ast.Query,
	"Mutation":     ast.Mutation,
	"Subscription": ast.Subscription,
}

// scaffoldTypes creates an empty shell in each owning subgraph for every
// supergraph type carrying type-level join provenance. Keys and
// interface object markers are attached here; members come later, kind
// by kind.
func (x *extraction) scaffoldTypes() (*typeInfos, error) {
	infos := &typeInfos{byKind: map[ast.DefinitionKind][]*typeInfo{}}

	for _, def := range x.doc.Definitions {
		if x.metadata.OwnsTypeName(def.Name) {
			continue
		}
		apps := directivesNamed(def.Directives, x.join.TypeDirective())
		if len(apps) == 0 {
			return nil, invalidSupergraphf("Missing @%s on %q", x.join.TypeDirective(), def.Name)
		}

		if def.Kind == ast.Scalar {
			if err := x.scaffoldScalar(def, apps); err != nil {
				return nil, err
			}
			continue
		}
		info, err := x.scaffoldType(def, apps)
		if err != nil {
			return nil, err
		}
		infos.byKind[def.Kind] = append(infos.byKind[def.Kind], info)
	}
	return infos, nil
}

// scaffoldScalar declares the scalar in each owning subgraph. Scalars
// have no sub-components, so there is nothing further to track.
func (x *extraction) scaffoldScalar(def *ast.Definition, apps []*ast.Directive) error {
	for _, app := range apps {
		args, err := x.join.TypeArguments(app)
		if err != nil {
			return &InvalidSupergraphError{Err: err}
		}
		sub, err := x.subgraphByGraph(args.Graph)
		if err != nil {
			return err
		}
		if err := sub.Schema.InsertType(&ast.Definition{Kind: ast.Scalar, Name: def.Name}); err != nil {
			return &InvalidSupergraphError{Err: err}
		}
	}
	return nil
}

func (x *extraction) scaffoldType(def *ast.Definition, apps []*ast.Directive) (*typeInfo, error) {
	info := &typeInfo{def: def, members: map[string]bool{}}

	for _, app := range apps {
		args, err := x.join.TypeArguments(app)
		if err != nil {
			return nil, &InvalidSupergraphError{Err: err}
		}
		sub, err := x.subgraphByGraph(args.Graph)
		if err != nil {
			return nil, err
		}

		// A type may carry several applications for the same subgraph,
		// one per key. The shell is created once.
		if !info.hasGraph(args.Graph) {
			if err := x.insertShell(sub, def, args); err != nil {
				return nil, err
			}
			info.graphs = append(info.graphs, args.Graph)
			info.members[args.Graph] = def.Kind == ast.Interface && args.IsInterfaceObject
		}

		if args.Key != nil {
			target := sub.Schema.Type(def.Name)
			if args.Extension {
				target = sub.Schema.EnsureExtension(def.Name, target.Kind)
			}
			target.Directives = append(target.Directives, specs.KeyDirective(*args.Key, args.Resolvable))
		}
	}
	return info, nil
}

func (x *extraction) insertShell(sub *Subgraph, def *ast.Definition, args *specs.TypeArgs) error {
	shell := &ast.Definition{Kind: def.Kind, Name: def.Name}

	switch def.Kind {
	case ast.Object, ast.Union, ast.Enum, ast.InputObject:
	case ast.Interface:
		if args.IsInterfaceObject {
			shell.Kind = ast.Object
			shell.Directives = ast.DirectiveList{specs.InterfaceObjectDirective()}
		}
	default:
		return internalf("type %q has unexpected kind %s", def.Name, def.Kind)
	}

	if err := sub.Schema.InsertType(shell); err != nil {
		return &InvalidSupergraphError{Err: err}
	}

	if shell.Kind == ast.Object {
		if op, ok := rootOperations[def.Name]; ok && sub.Schema.Root(op) == "" {
			sub.Schema.SetRoot(op, def.Name)
		}
	}
	return nil
}

// directivesNamed returns every application of the named directive, in
// order. DirectiveList.ForName only returns the first one, and join
// provenance directives are repeatable.
func directivesNamed(list ast.DirectiveList, name string) []*ast.Directive {
	var out []*ast.Directive
	for _, d := range list {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}
