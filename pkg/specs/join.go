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

	"github.com/vektah/gqlparser/v2/ast"
)

// SupportedJoinVersions is the closed set of join spec versions this
// implementation recognizes. v0.1 supergraphs are recognized but their
// extraction path is deliberately unimplemented.
var SupportedJoinVersions = []Version{
	{Major: 0, Minor: 1},
	{Major: 0, Minor: 2},
	{Major: 0, Minor: 3},
	{Major: 0, Minor: 4},
	{Major: 0, Minor: 5},
}

// IsSupportedJoinVersion reports whether v is in SupportedJoinVersions.
func IsSupportedJoinVersion(v Version) bool {
	for _, s := range SupportedJoinVersions {
		if s == v {
			return true
		}
	}
	return false
}

// JoinSpec decodes the join spec's provenance directives as they are
// named in a particular supergraph (imports and aliases applied).
type JoinSpec struct {
	Link    *Link
	Version Version
}

// NewJoinSpec builds the decoder set for a resolved join spec link.
func NewJoinSpec(link *Link) *JoinSpec {
	return &JoinSpec{Link: link, Version: link.URL.Version}
}

// Directive and type element names resolved through the link.

func (j *JoinSpec) GraphDirective() string       { return j.Link.DirectiveName("graph") }
func (j *JoinSpec) TypeDirective() string        { return j.Link.DirectiveName("type") }
func (j *JoinSpec) FieldDirective() string       { return j.Link.DirectiveName("field") }
func (j *JoinSpec) ImplementsDirective() string  { return j.Link.DirectiveName("implements") }
func (j *JoinSpec) UnionMemberDirective() string { return j.Link.DirectiveName("unionMember") }
func (j *JoinSpec) EnumValueDirective() string   { return j.Link.DirectiveName("enumValue") }
func (j *JoinSpec) GraphEnum() string            { return j.Link.TypeName("Graph") }

// IsSpecTypeName reports whether the named supergraph type belongs to
// the join spec rather than to any subgraph.
func (j *JoinSpec) IsSpecTypeName(name string) bool {
	return j.Link.OwnsTypeName(name)
}

// GraphArgs are the arguments of a graph enum-value application,
// declaring one contributing subgraph.
type GraphArgs struct {
	Name string
	URL  string
}

// TypeArgs are the arguments of a type-level provenance application.
type TypeArgs struct {
	Graph             string
	Key               *string
	Extension         bool
	Resolvable        bool
	IsInterfaceObject bool
}

// FieldArgs are the arguments of a field-level provenance application.
// A nil Graph marks a field synthesized during composition that came
// from no subgraph.
type FieldArgs struct {
	Graph          *string
	Requires       *string
	Provides       *string
	Type           *string
	External       *bool
	Override       *string
	UsedOverridden *bool
}

// ImplementsArgs are the arguments of an interface-implements
// provenance application.
type ImplementsArgs struct {
	Graph     string
	Interface string
}

// UnionMemberArgs are the arguments of a union-member provenance
// application.
type UnionMemberArgs struct {
	Graph  string
	Member string
}

// EnumValueArgs are the arguments of an enum-value provenance
// application.
type EnumValueArgs struct {
	Graph string
}

// GraphArguments decodes a @join__graph application.
func (j *JoinSpec) GraphArguments(d *ast.Directive) (*GraphArgs, error) {
	name, err := requiredString(d, "name")
	if err != nil {
		return nil, err
	}
	url, err := requiredString(d, "url")
	if err != nil {
		return nil, err
	}
	return &GraphArgs{Name: name, URL: url}, nil
}

// TypeArguments decodes a @join__type application.
func (j *JoinSpec) TypeArguments(d *ast.Directive) (*TypeArgs, error) {
	graph, err := requiredEnum(d, "graph")
	if err != nil {
		return nil, err
	}
	args := &TypeArgs{Graph: graph, Resolvable: true}

	if key, err := optionalString(d, "key"); err != nil {
		return nil, err
	} else if key != nil {
		args.Key = key
	}
	if ext, err := optionalBool(d, "extension"); err != nil {
		return nil, err
	} else if ext != nil {
		args.Extension = *ext
	}
	if resolvable, err := optionalBool(d, "resolvable"); err != nil {
		return nil, err
	} else if resolvable != nil {
		args.Resolvable = *resolvable
	}
	if iface, err := optionalBool(d, "isInterfaceObject"); err != nil {
		return nil, err
	} else if iface != nil {
		args.IsInterfaceObject = *iface
	}
	return args, nil
}

// FieldArguments decodes a @join__field application. Every argument is
// optional: a graph-less application marks a supergraph-synthetic field.
func (j *JoinSpec) FieldArguments(d *ast.Directive) (*FieldArgs, error) {
	args := &FieldArgs{}
	var err error
	if args.Graph, err = optionalEnum(d, "graph"); err != nil {
		return nil, err
	}
	if args.Requires, err = optionalString(d, "requires"); err != nil {
		return nil, err
	}
	if args.Provides, err = optionalString(d, "provides"); err != nil {
		return nil, err
	}
	if args.Type, err = optionalString(d, "type"); err != nil {
		return nil, err
	}
	if args.External, err = optionalBool(d, "external"); err != nil {
		return nil, err
	}
	if args.Override, err = optionalString(d, "override"); err != nil {
		return nil, err
	}
	if args.UsedOverridden, err = optionalBool(d, "usedOverridden"); err != nil {
		return nil, err
	}
	return args, nil
}

// ImplementsArguments decodes a @join__implements application.
func (j *JoinSpec) ImplementsArguments(d *ast.Directive) (*ImplementsArgs, error) {
	graph, err := requiredEnum(d, "graph")
	if err != nil {
		return nil, err
	}
	iface, err := requiredString(d, "interface")
	if err != nil {
		return nil, err
	}
	return &ImplementsArgs{Graph: graph, Interface: iface}, nil
}

// UnionMemberArguments decodes a @join__unionMember application.
func (j *JoinSpec) UnionMemberArguments(d *ast.Directive) (*UnionMemberArgs, error) {
	graph, err := requiredEnum(d, "graph")
	if err != nil {
		return nil, err
	}
	member, err := requiredString(d, "member")
	if err != nil {
		return nil, err
	}
	return &UnionMemberArgs{Graph: graph, Member: member}, nil
}

// EnumValueArguments decodes a @join__enumValue application.
func (j *JoinSpec) EnumValueArguments(d *ast.Directive) (*EnumValueArgs, error) {
	graph, err := requiredEnum(d, "graph")
	if err != nil {
		return nil, err
	}
	return &EnumValueArgs{Graph: graph}, nil
}

func argumentValue(d *ast.Directive, name string) *ast.Value {
	arg := d.Arguments.ForName(name)
	if arg == nil || arg.Value == nil || arg.Value.Kind == ast.NullValue {
		return nil
	}
	return arg.Value
}

func requiredString(d *ast.Directive, name string) (string, error) {
	s, err := optionalString(d, name)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", fmt.Errorf("@%s is missing required argument %q", d.Name, name)
	}
	return *s, nil
}

func optionalString(d *ast.Directive, name string) (*string, error) {
	v := argumentValue(d, name)
	if v == nil {
		return nil, nil
	}
	if v.Kind != ast.StringValue && v.Kind != ast.BlockValue {
		return nil, fmt.Errorf("argument %q of @%s must be a string", name, d.Name)
	}
	raw := v.Raw
	return &raw, nil
}

func requiredEnum(d *ast.Directive, name string) (string, error) {
	s, err := optionalEnum(d, name)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", fmt.Errorf("@%s is missing required argument %q", d.Name, name)
	}
	return *s, nil
}

func optionalEnum(d *ast.Directive, name string) (*string, error) {
	v := argumentValue(d, name)
	if v == nil {
		return nil, nil
	}
	if v.Kind != ast.EnumValue {
		return nil, fmt.Errorf("argument %q of @%s must be an enum value", name, d.Name)
	}
	raw := v.Raw
	return &raw, nil
}

func optionalBool(d *ast.Directive, name string) (*bool, error) {
	v := argumentValue(d, name)
	if v == nil {
		return nil, nil
	}
	if v.Kind != ast.BooleanValue {
		return nil, fmt.Errorf("argument %q of @%s must be a boolean", name, d.Name)
	}
	b := v.Raw == "true"
	return &b, nil
}
