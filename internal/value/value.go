// Package value is the runtime value model: the tagged union of scalars
// Lox programs compute with, plus the callable and object values
// (Native, Function, Class, Instance). The Callable interface over them
// lives in internal/interp.
package value

import (
	"strconv"
	"strings"
)

// Value is any Lox runtime value: bool, float64 (Number), string, or nil
// (represented by the untyped Go nil). Display, truthiness, and equality
// are free functions below rather than methods, since the nil case has
// no receiver to hang a method off of.
type Value any

// Display renders v the way `print` and string-concatenation do.
func Display(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(x)
	case string:
		return x
	case *Function:
		if x.Declaration.Name.Lexeme == "" {
			return "<fn>"
		}
		return "<fn " + x.Declaration.Name.Lexeme + ">"
	case *Native:
		return "<native fn>"
	case *Class:
		return x.Name
	case *Instance:
		return x.Class.Name + " instance"
	default:
		return "?"
	}
}

// formatNumber prints the shortest decimal that round-trips, with no
// trailing ".0" for integral values (1 prints as "1", not "1.0").
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// FormatFloat with 'g' never emits a trailing ".0" on its own, but it
	// does use exponent notation past certain magnitudes; for small
	// integral values prefer the plain decimal form.
	if !strings.ContainsAny(s, "eE") {
		return s
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// Truthy implements Lox truthiness: false and nil are falsey, everything
// else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	default:
		return true
	}
}

// Equal implements Lox's `==`: structural equality within a variant,
// never-equal across variants except nil==nil.
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	default:
		// Function, Class, Instance: reference identity.
		return a == b
	}
}

// TypeName returns a short lowercase name for v's runtime type.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Function, *Native:
		return "function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return "value"
	}
}
