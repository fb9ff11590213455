// Package access decides whether a visitor may use an attraction.
//
// The check compares the visitor's measurements against the declared bounds
// of the attraction's profile. It never validates the visitor through
// limits.Field; that utility is a separate data-entry concern.
package access

import (
	"fmt"
	"strings"

	"github.com/corey/ridecheck/internal/domain/limits"
)

// Visitor is a person being checked. Fields are not validated.
type Visitor struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Weight int    `json:"weight"`
	Height int    `json:"height"`
}

// NewVisitor returns a visitor with the given measurements.
func NewVisitor(name string, age, weight, height int) Visitor {
	return Visitor{Name: name, Age: age, Weight: weight, Height: height}
}

// Measure returns the visitor's value for m.
func (v Visitor) Measure(m limits.Measure) int {
	switch m {
	case limits.Age:
		return v.Age
	case limits.Weight:
		return v.Weight
	case limits.Height:
		return v.Height
	default:
		return 0
	}
}

// Attraction is a named ride gated by exactly one shared profile.
type Attraction struct {
	Name    string
	Profile *limits.Profile
}

// NewAttraction returns an attraction gated by p.
func NewAttraction(name string, p *limits.Profile) *Attraction {
	return &Attraction{Name: name, Profile: p}
}

// CanAccess reports whether v may use the attraction.
func (a *Attraction) CanAccess(v Visitor) bool {
	return CanAccess(a, v)
}

// Violation is one measure that failed the check.
type Violation struct {
	Measure limits.Measure
	Value   int
	Range   limits.IntRange
}

func (v Violation) String() string {
	if !v.Range.IsSet() {
		return fmt.Sprintf("%s: no range declared", v.Measure)
	}
	return fmt.Sprintf("%s %d not in %s", v.Measure, v.Value, v.Range)
}

// Verdict is the outcome of Evaluate.
type Verdict struct {
	Allowed    bool
	Missing    bool // attraction or profile absent
	Violations []Violation
}

// Reasons renders each violation for display.
func (vd Verdict) Reasons() []string {
	if vd.Missing {
		return []string{"attraction has no profile"}
	}
	out := make([]string, 0, len(vd.Violations))
	for _, v := range vd.Violations {
		out = append(out, v.String())
	}
	return out
}

func (vd Verdict) String() string {
	if vd.Allowed {
		return "allowed"
	}
	return "denied: " + strings.Join(vd.Reasons(), "; ")
}

// Evaluate checks every measure of v against the attraction's profile.
// Unset ranges count as violations. A nil attraction or profile is
// reported as Missing and never allowed.
func Evaluate(a *Attraction, v Visitor) Verdict {
	if a == nil || a.Profile == nil {
		return Verdict{Missing: true}
	}
	var vd Verdict
	for _, m := range limits.Measures {
		rng := a.Profile.Range(m)
		val := v.Measure(m)
		if !rng.Contains(val) {
			vd.Violations = append(vd.Violations, Violation{Measure: m, Value: val, Range: rng})
		}
	}
	vd.Allowed = len(vd.Violations) == 0
	return vd
}

// CanAccess is true iff age, weight and height all fall inside the
// attraction profile's inclusive ranges. Missing data yields false.
func CanAccess(a *Attraction, v Visitor) bool {
	return Evaluate(a, v).Allowed
}
