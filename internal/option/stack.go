package option

import "github.com/dshills/optcore/internal/option/value"

// Stack layers several readers in precedence order: later readers are
// stronger. Scalars resolve to the strongest reader that defines the
// option; list and dict options concatenate every reader's edit sequence
// from weakest to strongest, so a stronger layer's Replace resets weaker
// contributions when folded.
type Stack struct {
	readers []*Reader
}

// NewStack builds a stack from readers ordered weakest to strongest.
func NewStack(readers ...*Reader) *Stack {
	return &Stack{readers: readers}
}

func stackScalar[T any](s *Stack, id OptionID, get func(*Reader, OptionID) (*T, error)) (*T, error) {
	for i := len(s.readers) - 1; i >= 0; i-- {
		v, err := get(s.readers[i], id)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}

// GetBool resolves a bool option against the stack.
func (s *Stack) GetBool(id OptionID) (*bool, error) {
	return stackScalar(s, id, (*Reader).GetBool)
}

// GetInt resolves an int option against the stack.
func (s *Stack) GetInt(id OptionID) (*int64, error) {
	return stackScalar(s, id, (*Reader).GetInt)
}

// GetFloat resolves a float option against the stack.
func (s *Stack) GetFloat(id OptionID) (*float64, error) {
	return stackScalar(s, id, (*Reader).GetFloat)
}

// GetString resolves a string option against the stack.
func (s *Stack) GetString(id OptionID) (*string, error) {
	return stackScalar(s, id, (*Reader).GetString)
}

func stackList[T any](s *Stack, id OptionID, get func(*Reader, OptionID) ([]value.ListEdit[T], error)) ([]value.ListEdit[T], error) {
	var out []value.ListEdit[T]
	found := false
	for _, r := range s.readers {
		edits, err := get(r, id)
		if err != nil {
			return nil, err
		}
		if edits != nil {
			found = true
			out = append(out, edits...)
		}
	}
	if !found {
		return nil, nil
	}
	return out, nil
}

// GetStringList concatenates every layer's string-list edits.
func (s *Stack) GetStringList(id OptionID) ([]value.ListEdit[string], error) {
	return stackList(s, id, (*Reader).GetStringList)
}

// GetIntList concatenates every layer's int-list edits.
func (s *Stack) GetIntList(id OptionID) ([]value.ListEdit[int64], error) {
	return stackList(s, id, (*Reader).GetIntList)
}

// GetFloatList concatenates every layer's float-list edits.
func (s *Stack) GetFloatList(id OptionID) ([]value.ListEdit[float64], error) {
	return stackList(s, id, (*Reader).GetFloatList)
}

// GetBoolList concatenates every layer's bool-list edits.
func (s *Stack) GetBoolList(id OptionID) ([]value.ListEdit[bool], error) {
	return stackList(s, id, (*Reader).GetBoolList)
}

// GetDict concatenates every layer's dict edits.
func (s *Stack) GetDict(id OptionID) ([]value.DictEdit, error) {
	var out []value.DictEdit
	found := false
	for _, r := range s.readers {
		edits, err := r.GetDict(id)
		if err != nil {
			return nil, err
		}
		if edits != nil {
			found = true
			out = append(out, edits...)
		}
	}
	if !found {
		return nil, nil
	}
	return out, nil
}

// Validate reports schema violations from every layer, weakest first.
func (s *Stack) Validate(schema map[string][]string) []string {
	var out []string
	for _, r := range s.readers {
		out = append(out, r.Validate(schema)...)
	}
	return out
}
