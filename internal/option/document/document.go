// Package document parses a section-structured TOML configuration source
// into an immutable, order-preserving store with a designated fallback
// section and eager placeholder interpolation.
package document

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/dshills/optcore/internal/option/interp"
	"github.com/dshills/optcore/internal/option/value"
)

// DefaultSection is the fallback section. Its entries apply to every other
// section unless locally overridden, and it is always valid to the
// schema scan.
const DefaultSection = "DEFAULT"

// Source is a configuration document plus the path used in error messages.
type Source struct {
	Path string
	Data []byte
}

// FileSource reads a configuration file into a Source.
func FileSource(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Source{Path: path, Data: data}, nil
}

// BytesSource wraps in-memory content as a Source. The path is only used
// in error messages.
func BytesSource(path string, data []byte) Source {
	return Source{Path: path, Data: data}
}

// ParseError represents a malformed document or a load-time interpolation
// failure. Parse errors are fatal: no partial Document is produced.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is an immutable section -> key -> value store. All string
// values are interpolated at parse time; getters never trigger inline
// interpolation.
type Document struct {
	path     string
	sections map[string]map[string]value.Val
	order    []string            // section file order, DefaultSection included
	keyOrder map[string][]string // key file order per section
	lookups  map[string]map[string]string
	defaults map[string]string // seeds + fallback-section strings, raw
}

// Parse builds a Document from src. Seeds are externally pre-resolved
// interpolation variables; they are visible to every section's strings and
// may be shadowed by same-named keys. Every placeholder in the document is
// resolved immediately; a resolution failure aborts the parse with an
// error naming the file, section, and key.
func Parse(src Source, seeds map[string]string) (*Document, error) {
	d := &Document{
		path:     src.Path,
		sections: map[string]map[string]value.Val{},
		keyOrder: map[string][]string{},
	}

	p := &unstable.Parser{}
	p.Reset(src.Data)
	current := ""
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table:
			current = keyString(e.Key())
			if _, ok := d.sections[current]; !ok {
				d.sections[current] = map[string]value.Val{}
				d.order = append(d.order, current)
			}
		case unstable.ArrayTable:
			return nil, &ParseError{
				Path:    src.Path,
				Message: fmt.Sprintf("array tables are not supported: [[%s]]", keyString(e.Key())),
			}
		case unstable.KeyValue:
			key := keyString(e.Key())
			if current == "" {
				return nil, &ParseError{
					Path:    src.Path,
					Message: fmt.Sprintf("top-level key %q outside any section", key),
				}
			}
			v, err := decodeValue(e.Value())
			if err != nil {
				return nil, &ParseError{
					Path:    src.Path,
					Message: fmt.Sprintf("key %q in section [%s]: %v", key, current, err),
					Err:     err,
				}
			}
			if _, dup := d.sections[current][key]; !dup {
				d.keyOrder[current] = append(d.keyOrder[current], key)
			}
			d.sections[current][key] = v
		}
	}
	if err := p.Error(); err != nil {
		return nil, &ParseError{Path: src.Path, Message: err.Error(), Err: err}
	}

	d.buildLookups(seeds)
	if err := d.interpolateAll(); err != nil {
		return nil, err
	}
	return d, nil
}

// buildLookups flattens the interpolation tables: seeds first, then the
// fallback section's string values, then each section's own string values.
// Values stay raw; recursion during interpolation resolves nesting.
func (d *Document) buildLookups(seeds map[string]string) {
	d.defaults = make(map[string]string, len(seeds))
	for k, v := range seeds {
		d.defaults[k] = v
	}
	for k, v := range d.sections[DefaultSection] {
		if s, ok := v.(value.String); ok {
			d.defaults[k] = string(s)
		}
	}

	d.lookups = make(map[string]map[string]string, len(d.sections))
	for name, sec := range d.sections {
		table := make(map[string]string, len(d.defaults)+len(sec))
		for k, v := range d.defaults {
			table[k] = v
		}
		for k, v := range sec {
			if s, ok := v.(value.String); ok {
				table[k] = string(s)
			}
		}
		d.lookups[name] = table
	}
}

// interpolateAll eagerly resolves every string in every section, walking
// into lists and inline tables.
func (d *Document) interpolateAll() error {
	for _, name := range d.order {
		table := d.lookups[name]
		for _, key := range d.keyOrder[name] {
			resolved, err := interpolateVal(d.sections[name][key], table)
			if err != nil {
				return fmt.Errorf("%w in config file %s, section %s, key %s", err, d.path, name, key)
			}
			d.sections[name][key] = resolved
		}
	}
	return nil
}

func interpolateVal(v value.Val, table map[string]string) (value.Val, error) {
	switch v := v.(type) {
	case value.String:
		s, err := interp.Interpolate(string(v), table)
		if err != nil {
			return nil, err
		}
		return value.String(s), nil
	case value.List:
		out := make(value.List, len(v))
		for i, item := range v {
			resolved, err := interpolateVal(item, table)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	case value.Dict:
		out := make(value.Dict, len(v))
		for k, item := range v {
			resolved, err := interpolateVal(item, table)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	default:
		return v, nil
	}
}

// Path returns the source path used in error messages.
func (d *Document) Path() string {
	return d.path
}

// Get returns the entry for key in section, falling back to the fallback
// section. This lookup never fails; absence is reported by ok=false.
func (d *Document) Get(section, key string) (value.Val, bool) {
	if v, ok := d.sections[section][key]; ok {
		return v, true
	}
	v, ok := d.sections[DefaultSection][key]
	return v, ok
}

// SectionValue returns the section's own entry for key, without fallback.
func (d *Document) SectionValue(section, key string) (value.Val, bool) {
	v, ok := d.sections[section][key]
	return v, ok
}

// DefaultValue returns the fallback section's entry for key.
func (d *Document) DefaultValue(key string) (value.Val, bool) {
	v, ok := d.sections[DefaultSection][key]
	return v, ok
}

// Interpolations returns the lookup table visible to strings of the given
// section: seeds, the fallback section's strings, and the section's own
// strings. For an unknown section it returns the seed+fallback table. The
// returned map must not be mutated.
func (d *Document) Interpolations(section string) map[string]string {
	if table, ok := d.lookups[section]; ok {
		return table
	}
	return d.defaults
}

// Sections returns section names in file order, including the fallback
// section if present.
func (d *Document) Sections() []string {
	return append([]string(nil), d.order...)
}

// Keys returns the keys of a section in file order.
func (d *Document) Keys(section string) []string {
	return append([]string(nil), d.keyOrder[section]...)
}

// keyString joins dotted key parts back into the flat key name used by
// option lookup (e.g. "mylist.add").
func keyString(it unstable.Iterator) string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return strings.Join(parts, ".")
}

// decodeValue converts a TOML value node into a Val.
func decodeValue(n *unstable.Node) (value.Val, error) {
	switch n.Kind {
	case unstable.String:
		return value.String(n.Data), nil
	case unstable.Bool:
		return value.Bool(string(n.Data) == "true"), nil
	case unstable.Integer:
		i, err := strconv.ParseInt(strings.ReplaceAll(string(n.Data), "_", ""), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", string(n.Data), err)
		}
		return value.Int(i), nil
	case unstable.Float:
		f, err := strconv.ParseFloat(strings.ReplaceAll(string(n.Data), "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q: %w", string(n.Data), err)
		}
		return value.Float(f), nil
	case unstable.Array:
		out := value.List{}
		it := n.Children()
		for it.Next() {
			item, err := decodeValue(it.Node())
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil
	case unstable.InlineTable:
		out := value.Dict{}
		it := n.Children()
		for it.Next() {
			kv := it.Node()
			item, err := decodeValue(kv.Value())
			if err != nil {
				return nil, err
			}
			out[keyString(kv.Key())] = item
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported TOML value kind %s", n.Kind)
	}
}
