// Package value defines the closed value model for option resolution:
// the Val tagged union and the list/dict edit algebra used to combine
// contributions from layered configuration sources.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Val is a configuration value. It is a closed union over Bool, Int,
// Float, String, List, and Dict; no other shapes exist. Conversions
// between shapes are illegal except the documented Int-to-Float widening
// performed by the reader.
type Val interface {
	isVal()
	fmt.Stringer
}

// Bool is a boolean value.
type Bool bool

// Int is a 64-bit signed integer value.
type Int int64

// Float is a 64-bit floating point value.
type Float float64

// String is a string value.
type String string

// List is an ordered sequence of values.
type List []Val

// Dict maps unique string keys to values.
type Dict map[string]Val

func (Bool) isVal()   {}
func (Int) isVal()    {}
func (Float) isVal()  {}
func (String) isVal() {}
func (List) isVal()   {}
func (Dict) isVal()   {}

// Type name constants used in error messages.
const (
	TypeNameBool   = "bool"
	TypeNameInt    = "int"
	TypeNameFloat  = "float"
	TypeNameString = "string"
	TypeNameList   = "list"
	TypeNameDict   = "dict"
)

// TypeName returns the shape name of v for error messages.
func TypeName(v Val) string {
	switch v.(type) {
	case Bool:
		return TypeNameBool
	case Int:
		return TypeNameInt
	case Float:
		return TypeNameFloat
	case String:
		return TypeNameString
	case List:
		return TypeNameList
	case Dict:
		return TypeNameDict
	default:
		return "unknown"
	}
}

// Equal reports deep equality of two values. Shapes never compare equal
// across kinds; Int and Float are distinct even when numerically equal.
func Equal(a, b Val) bool {
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Dict:
		bv, ok := b.(Dict)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, present := bv[k]
			if !present || !Equal(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value in a compact literal form.
func (v Bool) String() string {
	return strconv.FormatBool(bool(v))
}

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v String) String() string {
	return strconv.Quote(string(v))
}

func (v List) String() string {
	parts := make([]string, len(v))
	for i, item := range v {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v Dict) String() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Quote(k) + ": " + v[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
