package option

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/optcore/internal/option/document"
	"github.com/dshills/optcore/internal/option/fromfile"
	"github.com/dshills/optcore/internal/option/interp"
	"github.com/dshills/optcore/internal/option/value"
)

// Reader resolves typed option values against a parsed Document. Scalar
// getters return a nil pointer when the option is absent from both the
// scope's section and the fallback section; list and dict getters return
// a nil edit sequence. Getter errors are local to the call and do not
// invalidate the Document for other keys.
type Reader struct {
	doc   *document.Document
	files *fromfile.Expander
}

// NewReader combines a parsed document with a fromfile expander.
func NewReader(doc *document.Document, files *fromfile.Expander) *Reader {
	return &Reader{doc: doc, files: files}
}

// Display renders the option as "[SCOPE] key_name".
func (r *Reader) Display(id OptionID) string {
	return id.Display()
}

// Validate reports schema violations for the underlying document.
func (r *Reader) Validate(schema map[string][]string) []string {
	return r.doc.Validate(schema)
}

// scalar is a resolved scalar source: either a concrete stored (or
// structured fromfile) value, or interpolated fromfile text.
type scalar struct {
	val    value.Val
	text   string
	isText bool
}

// resolveScalar performs layered lookup and fromfile expansion for a
// scalar getter. A nil result with nil error means the option is absent.
func (r *Reader) resolveScalar(id OptionID) (*scalar, error) {
	v, ok := r.doc.Get(id.ScopeName(), id.Key())
	if !ok {
		return nil, nil
	}
	s, isString := v.(value.String)
	if !isString || !fromfile.IsFromfile(string(s)) {
		return &scalar{val: v}, nil
	}
	exp, err := r.files.Expand(string(s), id.Display())
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, nil
	}
	if exp.Structured {
		return &scalar{val: exp.Value}, nil
	}
	text, err := interp.Interpolate(exp.Text, r.doc.Interpolations(id.ScopeName()))
	if err != nil {
		return nil, fmt.Errorf("%w in file content for %s", err, id.Display())
	}
	return &scalar{text: text, isText: true}, nil
}

// GetBool resolves a bool option. Absent options yield (nil, nil).
func (r *Reader) GetBool(id OptionID) (*bool, error) {
	sc, err := r.resolveScalar(id)
	if sc == nil || err != nil {
		return nil, err
	}
	if sc.isText {
		switch strings.TrimSpace(sc.text) {
		case "true", "True":
			b := true
			return &b, nil
		case "false", "False":
			b := false
			return &b, nil
		}
		return nil, fmt.Errorf("cannot parse %q as a bool for %s", strings.TrimSpace(sc.text), id.Display())
	}
	b, ok := sc.val.(value.Bool)
	if !ok {
		return nil, &TypeError{Display: id.Display(), Expected: value.TypeNameBool, Actual: value.TypeName(sc.val)}
	}
	out := bool(b)
	return &out, nil
}

// GetInt resolves an int option. Absent options yield (nil, nil).
func (r *Reader) GetInt(id OptionID) (*int64, error) {
	sc, err := r.resolveScalar(id)
	if sc == nil || err != nil {
		return nil, err
	}
	if sc.isText {
		i, err := strconv.ParseInt(strings.TrimSpace(sc.text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as an int for %s", strings.TrimSpace(sc.text), id.Display())
		}
		return &i, nil
	}
	i, ok := sc.val.(value.Int)
	if !ok {
		return nil, &TypeError{Display: id.Display(), Expected: value.TypeNameInt, Actual: value.TypeName(sc.val)}
	}
	out := int64(i)
	return &out, nil
}

// GetFloat resolves a float option. A stored int widens to float; any
// other shape disagreement is an error. Absent options yield (nil, nil).
func (r *Reader) GetFloat(id OptionID) (*float64, error) {
	sc, err := r.resolveScalar(id)
	if sc == nil || err != nil {
		return nil, err
	}
	if sc.isText {
		f, err := strconv.ParseFloat(strings.TrimSpace(sc.text), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as a float for %s", strings.TrimSpace(sc.text), id.Display())
		}
		return &f, nil
	}
	switch v := sc.val.(type) {
	case value.Float:
		out := float64(v)
		return &out, nil
	case value.Int:
		out := float64(v)
		return &out, nil
	default:
		return nil, &TypeError{Display: id.Display(), Expected: value.TypeNameFloat, Actual: value.TypeName(sc.val)}
	}
}

// GetString resolves a string option. Fromfile text content is returned
// as read (after interpolation). Absent options yield (nil, nil).
func (r *Reader) GetString(id OptionID) (*string, error) {
	sc, err := r.resolveScalar(id)
	if sc == nil || err != nil {
		return nil, err
	}
	if sc.isText {
		out := sc.text
		return &out, nil
	}
	s, ok := sc.val.(value.String)
	if !ok {
		return nil, &TypeError{Display: id.Display(), Expected: value.TypeNameString, Actual: value.TypeName(sc.val)}
	}
	out := string(s)
	return &out, nil
}

// conv converts Vals and bare text tokens to a list item type.
type conv[T any] struct {
	name     string
	fromVal  func(value.Val) (T, bool)
	fromText func(string) (T, bool)
}

var stringConv = conv[string]{
	name: value.TypeNameString,
	fromVal: func(v value.Val) (string, bool) {
		s, ok := v.(value.String)
		return string(s), ok
	},
	fromText: func(s string) (string, bool) { return s, true },
}

var intConv = conv[int64]{
	name: value.TypeNameInt,
	fromVal: func(v value.Val) (int64, bool) {
		i, ok := v.(value.Int)
		return int64(i), ok
	},
	fromText: func(s string) (int64, bool) {
		i, err := strconv.ParseInt(s, 10, 64)
		return i, err == nil
	},
}

var floatConv = conv[float64]{
	name: value.TypeNameFloat,
	fromVal: func(v value.Val) (float64, bool) {
		switch v := v.(type) {
		case value.Float:
			return float64(v), true
		case value.Int:
			return float64(v), true
		}
		return 0, false
	},
	fromText: func(s string) (float64, bool) {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	},
}

var boolConv = conv[bool]{
	name: value.TypeNameBool,
	fromVal: func(v value.Val) (bool, bool) {
		b, ok := v.(value.Bool)
		return bool(b), ok
	},
	fromText: func(s string) (bool, bool) {
		switch s {
		case "true", "True":
			return true, true
		case "false", "False":
			return false, true
		}
		return false, false
	},
}

// GetStringList resolves a string-list option into its ordered edit
// sequence. The caller folds the edits (see value.ApplyListEdits).
func (r *Reader) GetStringList(id OptionID) ([]value.ListEdit[string], error) {
	return listEdits(r, id, stringConv)
}

// GetIntList resolves an int-list option into its ordered edit sequence.
func (r *Reader) GetIntList(id OptionID) ([]value.ListEdit[int64], error) {
	return listEdits(r, id, intConv)
}

// GetFloatList resolves a float-list option into its ordered edit
// sequence. Int items widen to float.
func (r *Reader) GetFloatList(id OptionID) ([]value.ListEdit[float64], error) {
	return listEdits(r, id, floatConv)
}

// GetBoolList resolves a bool-list option into its ordered edit sequence.
func (r *Reader) GetBoolList(id OptionID) ([]value.ListEdit[bool], error) {
	return listEdits(r, id, boolConv)
}

// listEdits builds the edit sequence for a list option. The fallback
// section's entry folds in before the owning section's (a literal or
// non-plus string form resets the sequence, a plus or minus form
// appends), then the .add and .remove dotted siblings append in that
// fixed order.
func listEdits[T any](r *Reader, id OptionID, c conv[T]) ([]value.ListEdit[T], error) {
	section, key := id.ScopeName(), id.Key()
	var edits []value.ListEdit[T]
	found := false

	var applyText func(s string) error
	applyText = func(s string) error {
		edit, err := parseListEdit(strings.TrimSpace(s), c, id)
		if err != nil {
			return err
		}
		if edit.Action == value.ListActionReplace {
			edits = []value.ListEdit[T]{edit}
		} else {
			edits = append(edits, edit)
		}
		return nil
	}

	applyVal := func(v value.Val) error {
		switch v := v.(type) {
		case value.List:
			items, err := convertItems(v, c, id)
			if err != nil {
				return err
			}
			edits = []value.ListEdit[T]{{Action: value.ListActionReplace, Items: items}}
			return nil
		case value.String:
			s := string(v)
			if !fromfile.IsFromfile(s) {
				return applyText(s)
			}
			exp, err := r.files.Expand(s, id.Display())
			if err != nil {
				return err
			}
			if exp == nil {
				return nil
			}
			if exp.Structured {
				lst, ok := exp.Value.(value.List)
				if !ok {
					return &TypeError{Display: id.Display(), Expected: value.TypeNameList, Actual: value.TypeName(exp.Value)}
				}
				items, err := convertItems(lst, c, id)
				if err != nil {
					return err
				}
				edits = []value.ListEdit[T]{{Action: value.ListActionReplace, Items: items}}
				return nil
			}
			text, err := interp.Interpolate(exp.Text, r.doc.Interpolations(section))
			if err != nil {
				return fmt.Errorf("%w in file content for %s", err, id.Display())
			}
			return applyText(text)
		default:
			return &TypeError{Display: id.Display(), Expected: value.TypeNameList, Actual: value.TypeName(v)}
		}
	}

	if v, ok := r.doc.DefaultValue(key); ok {
		found = true
		if err := applyVal(v); err != nil {
			return nil, err
		}
	}
	if section != document.DefaultSection {
		if v, ok := r.doc.SectionValue(section, key); ok {
			found = true
			if err := applyVal(v); err != nil {
				return nil, err
			}
		}
	}

	sibling := func(suffix string, action value.ListAction) error {
		v, ok := r.doc.Get(section, key+suffix)
		if !ok {
			return nil
		}
		found = true
		lst, isList := v.(value.List)
		if !isList {
			return &TypeError{Display: id.Display(), Expected: value.TypeNameList, Actual: value.TypeName(v)}
		}
		items, err := convertItems(lst, c, id)
		if err != nil {
			return err
		}
		edits = append(edits, value.ListEdit[T]{Action: action, Items: items})
		return nil
	}
	if err := sibling(".add", value.ListActionAdd); err != nil {
		return nil, err
	}
	if err := sibling(".remove", value.ListActionRemove); err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}
	return edits, nil
}

// parseListEdit interprets a string-encoded list form: "[...]" replaces,
// "+..." adds, "-[...]" removes, and a bare scalar adds one item. A bare
// leading minus on a scalar (e.g. "-42") is still a scalar.
func parseListEdit[T any](s string, c conv[T], id OptionID) (value.ListEdit[T], error) {
	action := value.ListActionAdd
	body := s
	switch {
	case strings.HasPrefix(s, "+"):
		body = strings.TrimSpace(s[1:])
	case strings.HasPrefix(s, "-["):
		action = value.ListActionRemove
		body = strings.TrimSpace(s[1:])
	case strings.HasPrefix(s, "["):
		action = value.ListActionReplace
	}

	if strings.HasPrefix(body, "[") {
		v, err := value.Parse(body)
		if err != nil {
			return value.ListEdit[T]{}, fmt.Errorf("invalid list value %q for %s: %w", s, id.Display(), err)
		}
		items, err := convertItems(v.(value.List), c, id)
		if err != nil {
			return value.ListEdit[T]{}, err
		}
		return value.ListEdit[T]{Action: action, Items: items}, nil
	}

	item, err := scalarItem(body, c, id)
	if err != nil {
		return value.ListEdit[T]{}, err
	}
	return value.ListEdit[T]{Action: action, Items: []T{item}}, nil
}

// scalarItem interprets a bare token as one list item: a parseable
// literal converts by shape, anything else falls back to the type's text
// form (which, for strings, is the token itself).
func scalarItem[T any](body string, c conv[T], id OptionID) (T, error) {
	if v, err := value.Parse(body); err == nil {
		if item, ok := c.fromVal(v); ok {
			return item, nil
		}
	}
	if item, ok := c.fromText(body); ok {
		return item, nil
	}
	var zero T
	return zero, fmt.Errorf("cannot interpret %q as a %s for %s", body, c.name, id.Display())
}

func convertItems[T any](items value.List, c conv[T], id OptionID) ([]T, error) {
	out := make([]T, len(items))
	for i, item := range items {
		converted, ok := c.fromVal(item)
		if !ok {
			return nil, &TypeError{Display: id.Display(), Expected: c.name, Actual: value.TypeName(item)}
		}
		out[i] = converted
	}
	return out, nil
}

// GetDict resolves a dict option into its ordered edit sequence. Dict
// edits have no remove action: a literal or string-encoded table
// replaces, a plus-prefixed string adds.
func (r *Reader) GetDict(id OptionID) ([]value.DictEdit, error) {
	section, key := id.ScopeName(), id.Key()
	var edits []value.DictEdit
	found := false

	applyText := func(s string) error {
		s = strings.TrimSpace(s)
		action := value.DictActionReplace
		body := s
		if strings.HasPrefix(s, "+") {
			action = value.DictActionAdd
			body = strings.TrimSpace(s[1:])
		}
		v, err := value.Parse(body)
		if err != nil {
			return fmt.Errorf("invalid dict value %q for %s: %w", s, id.Display(), err)
		}
		d, ok := v.(value.Dict)
		if !ok {
			return &TypeError{Display: id.Display(), Expected: value.TypeNameDict, Actual: value.TypeName(v)}
		}
		if action == value.DictActionReplace {
			edits = []value.DictEdit{{Action: action, Items: d}}
		} else {
			edits = append(edits, value.DictEdit{Action: action, Items: d})
		}
		return nil
	}

	applyVal := func(v value.Val) error {
		switch v := v.(type) {
		case value.Dict:
			edits = []value.DictEdit{{Action: value.DictActionReplace, Items: v}}
			return nil
		case value.String:
			s := string(v)
			if !fromfile.IsFromfile(s) {
				return applyText(s)
			}
			exp, err := r.files.Expand(s, id.Display())
			if err != nil {
				return err
			}
			if exp == nil {
				return nil
			}
			if exp.Structured {
				d, ok := exp.Value.(value.Dict)
				if !ok {
					return &TypeError{Display: id.Display(), Expected: value.TypeNameDict, Actual: value.TypeName(exp.Value)}
				}
				edits = []value.DictEdit{{Action: value.DictActionReplace, Items: d}}
				return nil
			}
			text, err := interp.Interpolate(exp.Text, r.doc.Interpolations(section))
			if err != nil {
				return fmt.Errorf("%w in file content for %s", err, id.Display())
			}
			return applyText(text)
		default:
			return &TypeError{Display: id.Display(), Expected: value.TypeNameDict, Actual: value.TypeName(v)}
		}
	}

	if v, ok := r.doc.DefaultValue(key); ok {
		found = true
		if err := applyVal(v); err != nil {
			return nil, err
		}
	}
	if section != document.DefaultSection {
		if v, ok := r.doc.SectionValue(section, key); ok {
			found = true
			if err := applyVal(v); err != nil {
				return nil, err
			}
		}
	}

	if !found {
		return nil, nil
	}
	return edits, nil
}
