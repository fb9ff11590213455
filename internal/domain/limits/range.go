// Package limits defines inclusive integer ranges, range-constrained fields,
// and the visitor category profiles built from them.
// All types are pure Go with no external dependencies.
package limits

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInteger is returned when a non-integer is assigned to a Field.
	ErrNotInteger = errors.New("value must be an integer")
	// ErrOutOfRange is returned when an integer falls outside a Field's bounds.
	ErrOutOfRange = errors.New("value out of range")
	// ErrUnsetRange is returned when a Record measure has no declared range.
	ErrUnsetRange = errors.New("range not set")
)

// IntRange is an immutable inclusive [min, max] pair.
// The zero value is unset. min <= max is not checked.
type IntRange struct {
	min, max int
	set      bool
}

// NewIntRange returns a set range with the given bounds.
func NewIntRange(min, max int) IntRange {
	return IntRange{min: min, max: max, set: true}
}

// Min returns the lower bound.
func (r IntRange) Min() int { return r.min }

// Max returns the upper bound.
func (r IntRange) Max() int { return r.max }

// IsSet reports whether the range was built with NewIntRange.
func (r IntRange) IsSet() bool { return r.set }

// Contains reports whether min <= v <= max. Unset ranges contain nothing.
func (r IntRange) Contains(v int) bool {
	return r.set && r.min <= v && v <= r.max
}

func (r IntRange) String() string {
	if !r.set {
		return "unset"
	}
	return fmt.Sprintf("%d–%d", r.min, r.max)
}

// FieldError describes a rejected assignment to a Field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Field is an integer constrained to an inclusive range.
// A Field is not safe for concurrent writes.
type Field struct {
	name   string
	bounds IntRange
	value  int
	ok     bool
}

// NewField creates an empty field bounded by [min, max].
func NewField(name string, min, max int) *Field {
	return &Field{name: name, bounds: NewIntRange(min, max)}
}

// Name returns the field name used in errors.
func (f *Field) Name() string { return f.name }

// Bounds returns the declared range.
func (f *Field) Bounds() IntRange { return f.bounds }

// Set stores v if it is an integer inside the bounds.
// A rejected value leaves any previous value in place.
func (f *Field) Set(v any) error {
	n, ok := asInt(v)
	if !ok {
		return &FieldError{Field: f.name, Value: v, Err: ErrNotInteger}
	}
	if !f.bounds.Contains(n) {
		return &FieldError{Field: f.name, Value: v, Err: ErrOutOfRange}
	}
	f.value = n
	f.ok = true
	return nil
}

// Get returns the stored value, or false if nothing was ever stored.
func (f *Field) Get() (int, bool) {
	return f.value, f.ok
}

// asInt converts any Go integer kind to int. bool is not an integer.
// Unsigned values that overflow int are reported as not representable.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if int64(int(n)) != n {
			return 0, false
		}
		return int(n), true
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return uintToInt(uint64(n))
	case uint64:
		return uintToInt(n)
	default:
		return 0, false
	}
}

func uintToInt(n uint64) (int, bool) {
	const maxInt = uint64(^uint(0) >> 1)
	if n > maxInt {
		return 0, false
	}
	return int(n), true
}
