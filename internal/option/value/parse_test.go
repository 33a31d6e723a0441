package value

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Val
	}{
		{"int", "42", Int(42)},
		{"negative int", "-42", Int(-42)},
		{"float", "3.14", Float(3.14)},
		{"exponent float", "1e3", Float(1000)},
		{"bool", "true", Bool(true)},
		{"python bool", "False", Bool(false)},
		{"double quoted", `"hello"`, String("hello")},
		{"single quoted", "'hello'", String("hello")},
		{"escapes", `"a\tb\n"`, String("a\tb\n")},
		{"unicode rune", `"é"`, String("é")},
		{"unicode escape", "\"\\u00e9\"", String("é")},
		{"empty list", "[]", List{}},
		{"int list", "[10, 12]", List{Int(10), Int(12)}},
		{"trailing comma", "[1, 2,]", List{Int(1), Int(2)}},
		{"mixed list", `['a', 2, true]`, List{String("a"), Int(2), Bool(true)}},
		{"nested list", "[[1], [2, 3]]", List{List{Int(1)}, List{Int(2), Int(3)}}},
		{"empty dict", "{}", Dict{}},
		{"json dict", `{ "x": 2 }`, Dict{"x": Int(2)}},
		{"native dict", `{'x': 2}`, Dict{"x": Int(2)}},
		{
			"nested dict",
			`{'FOO': {'BAR': 3.14, 'BAZ': {'QUX': True, 'QUUX': [1, 2]}}}`,
			Dict{"FOO": Dict{
				"BAR": Float(3.14),
				"BAZ": Dict{"QUX": Bool(true), "QUUX": List{Int(1), Int(2)}},
			}},
		},
		{"surrounding space", "  [1]  ", List{Int(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bare word", "apple"},
		{"unterminated list", "[1, 2"},
		{"unterminated string", "'abc"},
		{"unterminated dict", `{"a": 1`},
		{"unquoted dict key", "{a: 1}"},
		{"missing colon", `{"a" 1}`},
		{"trailing junk", "[1] extra"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.in)
			}
		})
	}
}
