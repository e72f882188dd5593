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
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the two-segment version carried by a spec URL, e.g. "v0.3".
// Unlike full semantic versions, spec versions have no patch segment and
// no prerelease or build metadata.
type Version struct {
	Major uint64
	Minor uint64
}

var versionPattern = regexp.MustCompile(`^v\d+\.\d+$`)

// ParseVersion parses a strict "v<major>.<minor>" version string.
func ParseVersion(s string) (Version, error) {
	if !versionPattern.MatchString(s) {
		return Version{}, fmt.Errorf("version %q is not of the form v<major>.<minor>", s)
	}
	sv, err := semver.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("version %q is not valid: %w", s, err)
	}
	return Version{Major: sv.Major(), Minor: sv.Minor()}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
}

func (v Version) semver() *semver.Version {
	return semver.New(v.Major, v.Minor, 0, "", "")
}

// Compare returns -1, 0, or 1 when v is respectively lower than, equal
// to, or greater than o.
func (v Version) Compare(o Version) int {
	return v.semver().Compare(o.semver())
}

// AtLeast reports whether v is o or newer.
func (v Version) AtLeast(o Version) bool {
	return v.Compare(o) >= 0
}
