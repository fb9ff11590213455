package limits

import (
	"fmt"
	"strings"
)

// Measure identifies one of the three visitor measurements a profile bounds.
type Measure int

const (
	Age    Measure = 0
	Weight Measure = 1
	Height Measure = 2
)

// Measures lists every measure in check order.
var Measures = []Measure{Age, Weight, Height}

func (m Measure) String() string {
	switch m {
	case Age:
		return "age"
	case Weight:
		return "weight"
	case Height:
		return "height"
	default:
		return "unknown"
	}
}

// MeasureFromName maps a measure name to its constant.
// Returns -1 for unknown names.
func MeasureFromName(name string) Measure {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "age":
		return Age
	case "weight":
		return Weight
	case "height":
		return Height
	default:
		return -1
	}
}

// Profile bundles the age, weight and height ranges of one visitor category.
// Profiles are values; share them by pointer and never mutate them.
type Profile struct {
	name   string
	ranges [3]IntRange
}

// NewProfile builds a profile from three ranges.
func NewProfile(name string, age, weight, height IntRange) Profile {
	return Profile{name: name, ranges: [3]IntRange{age, weight, height}}
}

// Built-in category profiles.
var (
	Children = NewProfile("children", NewIntRange(4, 14), NewIntRange(20, 50), NewIntRange(80, 120))
	Adult    = NewProfile("adult", NewIntRange(14, 60), NewIntRange(50, 120), NewIntRange(120, 220))
)

// Builtins returns the built-in profiles in a stable order.
func Builtins() []*Profile {
	return []*Profile{&Children, &Adult}
}

// Builtin looks up a built-in profile by name, ignoring case.
func Builtin(name string) (*Profile, bool) {
	for _, p := range Builtins() {
		if strings.EqualFold(p.name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return nil, false
}

func (p *Profile) Name() string     { return p.name }
func (p *Profile) Age() IntRange    { return p.ranges[Age] }
func (p *Profile) Weight() IntRange { return p.ranges[Weight] }
func (p *Profile) Height() IntRange { return p.ranges[Height] }

// Range returns the range for m. Unknown measures yield an unset range.
func (p *Profile) Range(m Measure) IntRange {
	if m < Age || m > Height {
		return IntRange{}
	}
	return p.ranges[m]
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s(age %s, weight %s, height %s)", p.name, p.Age(), p.Weight(), p.Height())
}

// Record is a set of constrained fields, one per measure, carrying a
// profile's bounds. Fields for unset ranges are nil.
type Record struct {
	profile *Profile
	fields  [3]*Field
}

// NewRecord returns an empty record bounded by p's ranges.
func (p *Profile) NewRecord() *Record {
	r := &Record{profile: p}
	for _, m := range Measures {
		rng := p.ranges[m]
		if rng.IsSet() {
			r.fields[m] = NewField(m.String(), rng.Min(), rng.Max())
		}
	}
	return r
}

// Profile returns the profile the record was built from.
func (r *Record) Profile() *Profile { return r.profile }

// Set assigns v to measure m.
func (r *Record) Set(m Measure, v any) error {
	f, err := r.field(m)
	if err != nil {
		return err
	}
	return f.Set(v)
}

// Get returns the value stored for m, or false if none.
func (r *Record) Get(m Measure) (int, bool) {
	f, err := r.field(m)
	if err != nil {
		return 0, false
	}
	return f.Get()
}

func (r *Record) field(m Measure) (*Field, error) {
	if m < Age || m > Height {
		return nil, fmt.Errorf("unknown measure %d", int(m))
	}
	f := r.fields[m]
	if f == nil {
		return nil, &FieldError{Field: m.String(), Err: ErrUnsetRange}
	}
	return f, nil
}
