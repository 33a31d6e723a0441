package value

// ListAction describes how a list edit combines with previously
// accumulated items.
type ListAction uint8

const (
	// ListActionReplace resets the accumulated items to the edit's items.
	ListActionReplace ListAction = iota
	// ListActionAdd appends the edit's items, preserving order and duplicates.
	ListActionAdd
	// ListActionRemove deletes all occurrences equal to any of the edit's items.
	ListActionRemove
)

// String returns a human-readable name for the action.
func (a ListAction) String() string {
	switch a {
	case ListActionReplace:
		return "replace"
	case ListActionAdd:
		return "add"
	case ListActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// ListEdit is one layer's contribution to a list-valued option.
type ListEdit[T any] struct {
	Action ListAction
	Items  []T
}

// DictAction describes how a dict edit combines with previously
// accumulated entries. Dicts define no remove action.
type DictAction uint8

const (
	// DictActionReplace resets the accumulated entries to the edit's items.
	DictActionReplace DictAction = iota
	// DictActionAdd sets the edit's entries, overwriting existing keys.
	DictActionAdd
)

// String returns a human-readable name for the action.
func (a DictAction) String() string {
	switch a {
	case DictActionReplace:
		return "replace"
	case DictActionAdd:
		return "add"
	default:
		return "unknown"
	}
}

// DictEdit is one layer's contribution to a dict-valued option.
type DictEdit struct {
	Action DictAction
	Items  Dict
}

// ApplyListEdits folds an ordered edit sequence into a final list.
func ApplyListEdits[T comparable](edits []ListEdit[T]) []T {
	var out []T
	for _, edit := range edits {
		switch edit.Action {
		case ListActionReplace:
			out = append([]T(nil), edit.Items...)
		case ListActionAdd:
			out = append(out, edit.Items...)
		case ListActionRemove:
			doomed := make(map[T]struct{}, len(edit.Items))
			for _, item := range edit.Items {
				doomed[item] = struct{}{}
			}
			kept := out[:0]
			for _, item := range out {
				if _, gone := doomed[item]; !gone {
					kept = append(kept, item)
				}
			}
			out = kept
		}
	}
	return out
}

// ApplyDictEdits folds an ordered edit sequence into a final dict.
func ApplyDictEdits(edits []DictEdit) Dict {
	out := Dict{}
	for _, edit := range edits {
		if edit.Action == DictActionReplace {
			out = Dict{}
		}
		for k, v := range edit.Items {
			out[k] = v
		}
	}
	return out
}
