// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"strings"
)

// Policy decides how Merge resolves rows whose label exists on both sides.
type Policy int

const (
	// ForceAppend stacks every row of both frames; labels may repeat.
	ForceAppend Policy = iota + 1
	// Keep resolves overlapping rows to the receiver's version.
	Keep
	// Replace resolves overlapping rows to the other frame's version.
	Replace
	// Sum resolves overlapping rows to their element-wise sum.
	Sum
	// Mean resolves overlapping rows to their element-wise average.
	Mean
)

var policyNames = map[Policy]string{
	ForceAppend: "force_append",
	Keep:        "keep",
	Replace:     "replace",
	Sum:         "sum",
	Mean:        "mean",
}

// String returns the wire name of the policy.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// Valid reports whether p is one of the five supported policies.
func (p Policy) Valid() bool {
	_, ok := policyNames[p]

	return ok
}

// ParsePolicy maps "force_append", "keep", "replace", "sum" or "mean"
// (case-insensitive) to a Policy. Errors: ErrUnknownPolicy.
func ParsePolicy(s string) (Policy, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == want {
			return p, nil
		}
	}

	return 0, frameErrorf(fmt.Sprintf("ParsePolicy(%q)", s), ErrUnknownPolicy)
}
