// Package fromfile expands file-indirected option values. A raw string
// beginning with "@" names a file whose content supplies the value; "@?"
// marks the file as optional. Content is dispatched on file extension:
// .json and .yaml/.yml decode into structured values, anything else is
// raw text.
package fromfile

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/optcore/internal/option/value"
)

// ReadError reports a required fromfile that is missing or unreadable.
type ReadError struct {
	// Path is the resolved file path.
	Path string
	// Display names the owning option, e.g. "[GLOBAL] foo".
	Display string
	// Cause is the underlying read failure.
	Cause error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("Problem reading %s for %s: %v", e.Path, e.Display, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Cause
}

// Expanded is the content of a fromfile reference. Either Value holds a
// structured decode (Structured true) or Text holds the raw file text.
type Expanded struct {
	Value      value.Val
	Text       string
	Structured bool
}

// Expander resolves fromfile paths and reads their content. Reads happen
// lazily at getter-call time, once per call; nothing is cached.
type Expander struct {
	base string
}

// NewExpander returns an Expander resolving relative paths against base.
func NewExpander(base string) *Expander {
	return &Expander{base: base}
}

// RelativeToCWD returns an Expander resolving relative paths against the
// process working directory.
func RelativeToCWD() *Expander {
	return &Expander{}
}

// IsFromfile reports whether a raw string form is a fromfile reference.
func IsFromfile(s string) bool {
	return strings.HasPrefix(s, "@")
}

// Expand reads the file referenced by raw, which must satisfy IsFromfile.
// display names the owning option for error text. A missing optional file
// yields (nil, nil); a missing or unreadable required file is an error.
func (e *Expander) Expand(raw, display string) (*Expanded, error) {
	path := raw[1:]
	optional := false
	if strings.HasPrefix(path, "?") {
		optional = true
		path = path[1:]
	}
	if !filepath.IsAbs(path) && e.base != "" {
		path = filepath.Join(e.base, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ReadError{Path: path, Display: display, Cause: cause(err)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		v, err := decodeJSON(data)
		if err != nil {
			return nil, &ReadError{Path: path, Display: display, Cause: err}
		}
		return &Expanded{Value: v, Structured: true}, nil
	case ".yaml", ".yml":
		v, err := decodeYAML(data)
		if err != nil {
			return nil, &ReadError{Path: path, Display: display, Cause: err}
		}
		return &Expanded{Value: v, Structured: true}, nil
	default:
		return &Expanded{Text: string(data)}, nil
	}
}

// cause unwraps the syscall-level reason from a path error so messages
// read "no such file or directory" rather than the full "open <path>:"
// prefix, which would duplicate the path.
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func decodeJSON(data []byte) (value.Val, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	return jsonVal(gjson.ParseBytes(data))
}

func jsonVal(r gjson.Result) (value.Val, error) {
	switch {
	case r.Type == gjson.True:
		return value.Bool(true), nil
	case r.Type == gjson.False:
		return value.Bool(false), nil
	case r.Type == gjson.Null:
		return nil, errors.New("null is not a supported value")
	case r.Type == gjson.String:
		return value.String(r.Str), nil
	case r.Type == gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			return value.Float(r.Float()), nil
		}
		return value.Int(r.Int()), nil
	case r.IsArray():
		out := value.List{}
		var walkErr error
		r.ForEach(func(_, item gjson.Result) bool {
			v, err := jsonVal(item)
			if err != nil {
				walkErr = err
				return false
			}
			out = append(out, v)
			return true
		})
		return out, walkErr
	case r.IsObject():
		out := value.Dict{}
		var walkErr error
		r.ForEach(func(key, item gjson.Result) bool {
			v, err := jsonVal(item)
			if err != nil {
				walkErr = err
				return false
			}
			out[key.String()] = v
			return true
		})
		return out, walkErr
	default:
		return nil, fmt.Errorf("unsupported JSON value %s", r.Raw)
	}
}

func decodeYAML(data []byte) (value.Val, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return yamlVal(raw)
}

func yamlVal(v any) (value.Val, error) {
	switch v := v.(type) {
	case bool:
		return value.Bool(v), nil
	case int:
		return value.Int(int64(v)), nil
	case int64:
		return value.Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", v)
		}
		return value.Int(int64(v)), nil
	case float64:
		return value.Float(v), nil
	case string:
		return value.String(v), nil
	case []any:
		out := make(value.List, len(v))
		for i, item := range v {
			converted, err := yamlVal(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case map[string]any:
		out := make(value.Dict, len(v))
		for k, item := range v {
			converted, err := yamlVal(item)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil
	case nil:
		return nil, errors.New("null is not a supported value")
	default:
		return nil, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}
