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
	"net/url"
	"regexp"
	"strings"
)

// Identity names a specification independently of its version: the URL
// prefix up to (and excluding) the name segment, plus the name itself.
// Two links with the same Identity refer to the same spec.
type Identity struct {
	Domain string
	Name   string
}

func (i Identity) String() string {
	return i.Domain + "/" + i.Name
}

// Well-known identities this pipeline resolves against.
var (
	LinkIdentity       = Identity{Domain: "https://specs.apollo.dev", Name: "link"}
	JoinIdentity       = Identity{Domain: "https://specs.apollo.dev", Name: "join"}
	FederationIdentity = Identity{Domain: "https://specs.apollo.dev", Name: "federation"}
)

// SpecURL is a parsed spec reference of the form
// "<domain>/<name>/v<major>.<minor>".
type SpecURL struct {
	Identity Identity
	Version  Version
	Raw      string
}

func (u *SpecURL) String() string {
	return u.Raw
}

var specNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ParseSpecURL parses a spec URL into its identity and version. The last
// path segment must be a version and the segment before it the spec name.
func ParseSpecURL(raw string) (*SpecURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("spec url %q is not a valid URL: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("spec url %q must be absolute", raw)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" {
		return nil, fmt.Errorf("spec url %q must end with a name and a version segment", raw)
	}

	name := segments[len(segments)-2]
	if !specNamePattern.MatchString(name) {
		return nil, fmt.Errorf("spec url %q has invalid name segment %q", raw, name)
	}

	version, err := ParseVersion(segments[len(segments)-1])
	if err != nil {
		return nil, fmt.Errorf("spec url %q has invalid version segment: %w", raw, err)
	}

	domain := u.Scheme + "://" + u.Host
	if prefix := segments[:len(segments)-2]; len(prefix) > 0 {
		domain += "/" + strings.Join(prefix, "/")
	}

	return &SpecURL{
		Identity: Identity{Domain: domain, Name: name},
		Version:  version,
		Raw:      raw,
	}, nil
}
