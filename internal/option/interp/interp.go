// Package interp implements placeholder interpolation for option values.
//
// Placeholders use the %(identifier)s syntax. Resolution is recursive: a
// looked-up value may itself contain placeholders, which are resolved
// before substitution, so a successful result is always placeholder-free.
package interp

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxDepth bounds recursive placeholder resolution. A lookup chain deeper
// than this fails rather than recursing without bound (placeholder cycles
// would otherwise never terminate).
const MaxDepth = 20

var placeholderRE = regexp.MustCompile(`%\(([A-Za-z0-9_]+)\)s`)

// UnknownPlaceholderError reports a placeholder with no entry in the
// lookup table.
type UnknownPlaceholderError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("Unknown value for placeholder `%s`", e.Name)
}

// DepthError reports placeholder resolution exceeding MaxDepth, which
// indicates a cycle or pathological nesting.
type DepthError struct {
	Name string
}

// Error implements the error interface.
func (e *DepthError) Error() string {
	return fmt.Sprintf("Exceeded %d levels of indirection resolving placeholder `%s` (placeholder cycle?)", MaxDepth, e.Name)
}

// Interpolate resolves every placeholder in text against lookup and
// returns the substituted result. Interpolating a placeholder-free string
// returns it unchanged. An unknown identifier or excessive recursion
// fails with no partial output.
func Interpolate(text string, lookup map[string]string) (string, error) {
	return interpolate(text, lookup, MaxDepth)
}

func interpolate(text string, lookup map[string]string, depth int) (string, error) {
	matches := placeholderRE.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}
	if depth <= 0 {
		return "", &DepthError{Name: text[matches[0][2]:matches[0][3]]}
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		name := text[m[2]:m[3]]
		raw, ok := lookup[name]
		if !ok {
			return "", &UnknownPlaceholderError{Name: name}
		}
		resolved, err := interpolate(raw, lookup, depth-1)
		if err != nil {
			return "", err
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(resolved)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), nil
}
