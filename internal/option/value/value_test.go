package value

import "testing"

func TestTypeName(t *testing.T) {
	tests := []struct {
		val  Val
		want string
	}{
		{Bool(true), "bool"},
		{Int(42), "int"},
		{Float(3.14), "float"},
		{String("x"), "string"},
		{List{Int(1)}, "list"},
		{Dict{"a": Int(1)}, "dict"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.val); got != tt.want {
			t.Errorf("TypeName(%v) = %q, want %q", tt.val, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Val
		want bool
	}{
		{"bools", Bool(true), Bool(true), true},
		{"ints", Int(7), Int(7), true},
		{"int vs float", Int(1), Float(1), false},
		{"strings", String("a"), String("a"), true},
		{"lists", List{Int(1), String("x")}, List{Int(1), String("x")}, true},
		{"lists order", List{Int(1), Int(2)}, List{Int(2), Int(1)}, false},
		{"dicts", Dict{"a": Int(1), "b": List{Bool(false)}}, Dict{"b": List{Bool(false)}, "a": Int(1)}, true},
		{"dict missing key", Dict{"a": Int(1)}, Dict{"b": Int(1)}, false},
		{"nested", Dict{"a": Dict{"b": List{Int(1)}}}, Dict{"a": Dict{"b": List{Int(1)}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	v := Dict{
		"name":  String("straw"),
		"count": Int(2),
		"tags":  List{String("a"), Bool(true)},
	}
	want := `{"count": 2, "name": "straw", "tags": ["a", true]}`
	if got := v.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}
