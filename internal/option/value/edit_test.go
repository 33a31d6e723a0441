package value

import (
	"reflect"
	"testing"
)

func TestApplyListEdits(t *testing.T) {
	tests := []struct {
		name  string
		edits []ListEdit[string]
		want  []string
	}{
		{
			"replace resets",
			[]ListEdit[string]{
				{Action: ListActionAdd, Items: []string{"a"}},
				{Action: ListActionReplace, Items: []string{"b", "c"}},
			},
			[]string{"b", "c"},
		},
		{
			"add preserves order and duplicates",
			[]ListEdit[string]{
				{Action: ListActionReplace, Items: []string{"a"}},
				{Action: ListActionAdd, Items: []string{"b", "a"}},
			},
			[]string{"a", "b", "a"},
		},
		{
			"remove deletes all occurrences",
			[]ListEdit[string]{
				{Action: ListActionReplace, Items: []string{"a", "b", "a", "c"}},
				{Action: ListActionRemove, Items: []string{"a", "missing"}},
			},
			[]string{"b", "c"},
		},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyListEdits(tt.edits)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ApplyListEdits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyDictEdits(t *testing.T) {
	edits := []DictEdit{
		{Action: DictActionReplace, Items: Dict{"x": Int(2), "y": Int(1)}},
		{Action: DictActionAdd, Items: Dict{"y": Int(9), "z": Int(3)}},
	}
	got := ApplyDictEdits(edits)
	want := Dict{"x": Int(2), "y": Int(9), "z": Int(3)}
	if !Equal(got, want) {
		t.Errorf("ApplyDictEdits() = %v, want %v", got, want)
	}

	// A later replace drops earlier contributions.
	edits = append(edits, DictEdit{Action: DictActionReplace, Items: Dict{"only": Bool(true)}})
	got = ApplyDictEdits(edits)
	want = Dict{"only": Bool(true)}
	if !Equal(got, want) {
		t.Errorf("ApplyDictEdits() after replace = %v, want %v", got, want)
	}
}
