// Package yaegi implements hostval.Value on top of an embedded Go
// interpreter, standing in for a host scripting runtime supplied
// externally: a real widget system lets an author write view/update/map
// callables as source text delivered with the widget description, not as
// compiled Go. This backend interprets that text with traefik/yaegi and
// adapts the resulting Go function value to hostval.Value.
//
// Only a narrow, allow-listed slice of the standard library is exposed to
// interpreted code; nothing in this package grants filesystem, network, or
// process access.
package yaegi

import (
	"fmt"
	"path"
	"reflect"
	"regexp"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
)

var importRE = regexp.MustCompile(`"([a-zA-Z0-9_/]+)"`)

// allowedPackages is the stdlib surface interpreted callables may import.
// Deliberately excludes os, net, os/exec, and anything else with side
// effects outside the interpreter's own heap.
var allowedPackages = map[string]bool{
	"strings":         true,
	"strconv":         true,
	"fmt":             true,
	"math":            true,
	"sort":            true,
	"encoding/json":   true,
}

// Host evaluates user-supplied view/update/map callables written as Go
// source text.
type Host struct {
	interp *interp.Interpreter
}

// New creates a Host with a fresh interpreter instance loaded with the
// allow-listed standard library.
func New() (*Host, error) {
	i := interp.New(interp.Options{})
	allowed := interp.Exports{}
	for key, syms := range stdlib.Symbols {
		// Symbol keys are "<import path>/<package name>".
		if allowedPackages[path.Dir(key)] {
			allowed[key] = syms
		}
	}
	if err := i.Use(allowed); err != nil {
		return nil, fmt.Errorf("yaegi: load stdlib: %w", err)
	}
	return &Host{interp: i}, nil
}

// EvalFunc interprets src, which must evaluate to a top-level function
// value, and adapts it into a hostval.Value invocable with hostval
// arguments. Interpreted functions receive and return `any`; the adapter
// unwraps hostval.Value arguments to their underlying Go value with Unwrap
// and re-wraps results with Wrap.
func (h *Host) EvalFunc(src string) (hostval.Value, error) {
	if err := validateImports(src); err != nil {
		return nil, err
	}
	v, err := h.interp.Eval(src)
	if err != nil {
		return nil, fmt.Errorf("yaegi: eval: %w", err)
	}
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("yaegi: expression did not evaluate to a function, got %s", v.Kind())
	}
	fn := v
	name := "interpreted"
	return native.NewFunc(name, func(args ...hostval.Value) (hostval.Value, error) {
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			in[i] = reflect.ValueOf(Unwrap(a))
		}
		out := fn.Call(in)
		if len(out) == 0 {
			return native.Unit, nil
		}
		return Wrap(out[0].Interface()), nil
	}), nil
}

// Unwrap converts a hostval.Value produced by the native backend into a
// plain Go value interpreted code can consume.
func Unwrap(v hostval.Value) any {
	switch t := v.(type) {
	case native.Scalar:
		return t.V
	default:
		return v
	}
}

// Wrap converts a plain Go value returned by interpreted code back into a
// hostval.Value.
func Wrap(v any) hostval.Value {
	switch t := v.(type) {
	case hostval.Value:
		return t
	case string:
		return native.Str(t)
	case int:
		return native.Int(int64(t))
	case int64:
		return native.Int(t)
	case bool:
		return native.Bool(t)
	case float64:
		return native.Float(t)
	default:
		return native.Str(fmt.Sprintf("%v", t))
	}
}

// validateImports gives a clear rejection message for disallowed imports
// before spending a full Eval; the interpreter's own symbol table is the
// real enforcement boundary since this is a textual, not semantic, check.
func validateImports(src string) error {
	inImportBlock := false
	for _, line := range regexp.MustCompile(`\r?\n`).Split(src, -1) {
		trimmed := line
		switch {
		case regexp.MustCompile(`^\s*import\s*\($`).MatchString(trimmed):
			inImportBlock = true
			continue
		case inImportBlock && regexp.MustCompile(`^\s*\)\s*$`).MatchString(trimmed):
			inImportBlock = false
			continue
		}
		if !inImportBlock && !regexp.MustCompile(`^\s*import\s+"`).MatchString(trimmed) {
			continue
		}
		m := importRE.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if !allowedPackages[m[1]] {
			return fmt.Errorf("yaegi: import %q is not in the allowed package list", m[1])
		}
	}
	return nil
}
