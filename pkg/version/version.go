// Copyright 2022 The jackal Authors
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

package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version represents current traffic version.
var Version = NewVersion(0, 1, 0)

// ApplicationName is the name reported to peers querying software version.
const ApplicationName = "traffic"

// SemanticVersion represents a semantic version value.
type SemanticVersion struct {
	major uint
	minor uint
	patch uint
}

// NewVersion returns a new SemanticVersion value.
func NewVersion(major, minor, patch uint) *SemanticVersion {
	return &SemanticVersion{
		major: major,
		minor: minor,
		patch: patch,
	}
}

// Parse parses a "vX.Y.Z" or "X.Y.Z" version string.
func Parse(str string) (*SemanticVersion, error) {
	parts := strings.Split(strings.TrimPrefix(str, "v"), ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("version: malformed version string: %s", str)
	}
	var nums [3]uint
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("version: malformed version string: %s", str)
		}
		nums[i] = uint(n)
	}
	return NewVersion(nums[0], nums[1], nums[2]), nil
}

// Major returns version major component.
func (v *SemanticVersion) Major() uint { return v.major }

// Minor returns version minor component.
func (v *SemanticVersion) Minor() uint { return v.minor }

// Patch returns version patch component.
func (v *SemanticVersion) Patch() uint { return v.patch }

// String returns version string representation.
func (v *SemanticVersion) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.major, v.minor, v.patch)
}

// Compare returns -1, 0 or 1 depending on whether v is lower, equal or greater than v2.
func (v *SemanticVersion) Compare(v2 *SemanticVersion) int {
	a := [3]uint{v.major, v.minor, v.patch}
	b := [3]uint{v2.major, v2.minor, v2.patch}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// IsEqual tells whether v is equal to v2.
func (v *SemanticVersion) IsEqual(v2 *SemanticVersion) bool { return v.Compare(v2) == 0 }

// IsLess tells whether v is lower than v2.
func (v *SemanticVersion) IsLess(v2 *SemanticVersion) bool { return v.Compare(v2) < 0 }

// IsLessOrEqual tells whether v is lower or equal to v2.
func (v *SemanticVersion) IsLessOrEqual(v2 *SemanticVersion) bool { return v.Compare(v2) <= 0 }

// IsGreater tells whether v is greater than v2.
func (v *SemanticVersion) IsGreater(v2 *SemanticVersion) bool { return v.Compare(v2) > 0 }

// IsGreaterOrEqual tells whether v is greater or equal to v2.
func (v *SemanticVersion) IsGreaterOrEqual(v2 *SemanticVersion) bool { return v.Compare(v2) >= 0 }
