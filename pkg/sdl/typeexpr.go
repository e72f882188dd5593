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

package sdl

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// DecodeType parses a GraphQL type expression such as "ID", "[Review]",
// or "[Item!]!" into its AST form. The whole input must be a single
// type expression; anything else fails.
func DecodeType(s string) (*ast.Type, error) {
	p := &typeParser{input: s}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipIgnored()
	if p.pos != len(p.input) {
		return nil, p.fail()
	}
	return typ, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) fail() error {
	return fmt.Errorf("cannot parse type %q", p.input)
}

// skipIgnored advances past GraphQL ignored tokens: whitespace, line
// terminators, and commas.
func (p *typeParser) skipIgnored() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

func (p *typeParser) parseType() (*ast.Type, error) {
	p.skipIgnored()
	if p.pos >= len(p.input) {
		return nil, p.fail()
	}

	var typ *ast.Type
	if p.input[p.pos] == '[' {
		p.pos++
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		p.skipIgnored()
		if p.pos >= len(p.input) || p.input[p.pos] != ']' {
			return nil, p.fail()
		}
		p.pos++
		typ = &ast.Type{Elem: elem}
	} else {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		typ = &ast.Type{NamedType: name}
	}

	p.skipIgnored()
	if p.pos < len(p.input) && p.input[p.pos] == '!' {
		p.pos++
		typ.NonNull = true
	}
	return typ, nil
}

func (p *typeParser) parseName() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		isStart := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if p.pos == start {
			if !isStart {
				break
			}
		} else if !isStart && !(c >= '0' && c <= '9') {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.fail()
	}
	return p.input[start:p.pos], nil
}
