// Package native implements hostval.Value with plain Go closures and
// values, standing in for a host scripting runtime when the caller embeds
// the reconciler directly from Go rather than through an interpreter. This
// is the backend the reconciler's own tests are written against.
package native

import (
	"fmt"
	"reflect"

	"github.com/lean-widgets/reconciler/pkg/hostval"
)

// Func wraps a Go closure as an invocable, taggless hostval.Value.
type Func struct {
	name string
	fn   func(args ...hostval.Value) (hostval.Value, error)
}

// NewFunc wraps fn. name is used only for error messages and String().
func NewFunc(name string, fn func(args ...hostval.Value) (hostval.Value, error)) *Func {
	return &Func{name: name, fn: fn}
}

func (f *Func) Equal(other hostval.Value) bool {
	o, ok := other.(*Func)
	return ok && o == f
}

func (f *Func) Hash() uint64 { return uint64(reflect.ValueOf(f).Pointer()) }

func (f *Func) Invoke(args ...hostval.Value) (hostval.Value, error) {
	if f == nil || f.fn == nil {
		return nil, fmt.Errorf("native: nil function %q invoked", f.name)
	}
	return f.fn(args...)
}

func (f *Func) Field(i int) hostval.Value { hostval.Unreachable(-1); return nil }
func (f *Func) Tag() int                  { return -1 }
func (f *Func) String() string            { return "func:" + f.name }

// Tagged is a constructor-tagged value: a tag index plus an ordered list of
// fields, mirroring the host runtime's own tagged-object representation (a
// constructor-index/cfield pair on a vm_obj). Component descriptors, html
// descriptors, and attr descriptors are all built from Tagged values.
type Tagged struct {
	tag    int
	fields []hostval.Value
}

// NewTagged builds a Tagged value with the given constructor tag and
// positional fields.
func NewTagged(tag int, fields ...hostval.Value) *Tagged {
	return &Tagged{tag: tag, fields: fields}
}

func (t *Tagged) Equal(other hostval.Value) bool {
	o, ok := other.(*Tagged)
	if !ok || o.tag != t.tag || len(o.fields) != len(t.fields) {
		return false
	}
	for i, f := range t.fields {
		if !f.Equal(o.fields[i]) {
			return false
		}
	}
	return true
}

func (t *Tagged) Hash() uint64 {
	h := uint64(t.tag) * 1099511628211
	for _, f := range t.fields {
		h ^= f.Hash()
		h *= 1099511628211
	}
	return h
}

func (t *Tagged) Invoke(args ...hostval.Value) (hostval.Value, error) {
	return nil, fmt.Errorf("native: constructor value (tag %d) is not invocable", t.tag)
}

func (t *Tagged) Field(i int) hostval.Value {
	if i < 0 || i >= len(t.fields) {
		panic(fmt.Sprintf("native: field %d out of range for tag %d with %d fields", i, t.tag, len(t.fields)))
	}
	return t.fields[i]
}

func (t *Tagged) Tag() int { return t.tag }

// Scalar wraps a comparable Go value (string, int64, float64, bool) as a
// hostval.Value.
type Scalar struct {
	V any
}

func Str(s string) Scalar   { return Scalar{V: s} }
func Int(i int64) Scalar    { return Scalar{V: i} }
func Bool(b bool) Scalar    { return Scalar{V: b} }
func Float(f float64) Scalar { return Scalar{V: f} }

func (s Scalar) Equal(other hostval.Value) bool {
	o, ok := other.(Scalar)
	return ok && o.V == s.V
}

func (s Scalar) Hash() uint64 {
	switch v := s.V.(type) {
	case string:
		var h uint64 = 14695981039346656037
		for i := 0; i < len(v); i++ {
			h ^= uint64(v[i])
			h *= 1099511628211
		}
		return h
	case int64:
		return uint64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (s Scalar) Invoke(args ...hostval.Value) (hostval.Value, error) {
	return nil, fmt.Errorf("native: scalar %v is not invocable", s.V)
}
func (s Scalar) Field(i int) hostval.Value { hostval.Unreachable(-1); return nil }

// Tag encodes a boolean Scalar as the two-constructor convention the rest
// of the package uses (0 = false, 1 = true) so hooks can read a host bool
// through Tag() alone without a backend-specific type assertion. All other
// scalar kinds have no meaningful tag.
func (s Scalar) Tag() int {
	if b, ok := s.V.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return -1
}

func (s Scalar) String() string { return fmt.Sprintf("%v", s.V) }

// StringOf extracts the underlying string from a Scalar, or "" if v is not
// a string Scalar.
func StringOf(v hostval.Value) string {
	if s, ok := v.(Scalar); ok {
		if str, ok := s.V.(string); ok {
			return str
		}
	}
	return ""
}

// Unit is the nullary value used where the host has nothing meaningful to
// pass (e.g. a component with no props).
var Unit hostval.Value = Scalar{V: struct{}{}}

const (
	// TagNone and TagSome are the constructor tags native code uses to
	// represent an optional host value (Option), matching the pattern the
	// with-task and filter-map-action hooks read.
	TagNone = 0
	TagSome = 1

	// TagPair tags a two-field Pair value (state, props) as used by
	// Stateful.GetProps and WithMouseCapture.GetProps.
	TagPair = 0
)

// None builds the empty Option value.
func None() hostval.Value { return NewTagged(TagNone) }

// Some wraps v in a present Option value.
func Some(v hostval.Value) hostval.Value { return NewTagged(TagSome, v) }

// IsSome reports whether v is a present Option and returns its payload.
func IsSome(v hostval.Value) (hostval.Value, bool) {
	t, ok := v.(*Tagged)
	if !ok || t.tag != TagSome {
		return nil, false
	}
	return t.fields[0], true
}

// Pair builds a two-element tuple value.
func Pair(a, b hostval.Value) hostval.Value { return NewTagged(TagPair, a, b) }
