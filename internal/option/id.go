package option

import (
	"fmt"
	"strings"
)

// GlobalScope is the display token and section name for options with an
// empty scope.
const GlobalScope = "GLOBAL"

// OptionID identifies one option: an ordered sequence of scope-name
// segments (empty means the global scope), an ordered sequence of name
// segments (dash-joined in source syntax, underscore-joined in config
// keys), and an optional single-character short alias. Immutable.
type OptionID struct {
	scope []string
	name  []string
	short rune
}

// NewID constructs an OptionID. At least one name segment is required.
func NewID(scope []string, name ...string) OptionID {
	if len(name) == 0 {
		panic("option: NewID requires at least one name segment")
	}
	return OptionID{
		scope: append([]string(nil), scope...),
		name:  append([]string(nil), name...),
	}
}

// GlobalID constructs an OptionID in the global scope.
func GlobalID(name ...string) OptionID {
	return NewID(nil, name...)
}

// WithShort returns a copy of the id carrying a short alias. The alias
// never appears in Display output.
func (id OptionID) WithShort(short rune) OptionID {
	id.short = short
	return id
}

// Short returns the short alias, or 0 when none is set.
func (id OptionID) Short() rune {
	return id.short
}

// ScopeName returns the section name the option resolves against:
// GlobalScope for an empty scope, else the dash-joined scope segments.
func (id OptionID) ScopeName() string {
	if len(id.scope) == 0 {
		return GlobalScope
	}
	return strings.Join(id.scope, "-")
}

// Key returns the config key: name segments joined with underscores.
func (id OptionID) Key() string {
	return strings.Join(id.name, "_")
}

// Display renders the option as "[SCOPE] key_name".
func (id OptionID) Display() string {
	return fmt.Sprintf("[%s] %s", id.ScopeName(), id.Key())
}
