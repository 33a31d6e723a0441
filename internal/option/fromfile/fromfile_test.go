package fromfile

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/dshills/optcore/internal/option/value"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestIsFromfile(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"@path.txt", true},
		{"@?path.txt", true},
		{"plain", false},
		{"", false},
		{"a@b", false},
	}
	for _, tt := range tests {
		if got := IsFromfile(tt.raw); got != tt.want {
			t.Errorf("IsFromfile(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestExpandText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "foo.txt", "'a', 'b'")

	exp := NewExpander(dir)
	got, err := exp.Expand("@foo.txt", "[GLOBAL] foo")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got.Structured || got.Text != "'a', 'b'" {
		t.Errorf("got %+v, want raw text", got)
	}
}

func TestExpandJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "foo.json", `{"a": 1, "b": [true, 2.5, "x"]}`)

	exp := NewExpander(dir)
	got, err := exp.Expand("@foo.json", "[GLOBAL] foo")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := value.Dict{
		"a": value.Int(1),
		"b": value.List{value.Bool(true), value.Float(2.5), value.String("x")},
	}
	if !got.Structured || !value.Equal(got.Value, want) {
		t.Errorf("got %+v, want %v", got, want)
	}
}

func TestExpandYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "foo.yaml", "- 1\n- 2\n- three\n")

	exp := NewExpander(dir)
	got, err := exp.Expand("@foo.yaml", "[GLOBAL] foo")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := value.List{value.Int(1), value.Int(2), value.String("three")}
	if !got.Structured || !value.Equal(got.Value, want) {
		t.Errorf("got %+v, want %v", got, want)
	}
}

func TestExpandMissingRequired(t *testing.T) {
	exp := RelativeToCWD()
	_, err := exp.Expand("@/does/not/exist", "[GLOBAL] foo")
	if err == nil {
		t.Fatal("expected error for missing required file")
	}
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("error %T is not a ReadError", err)
	}
	pat := `^Problem reading /does/not/exist for \[GLOBAL\] foo: `
	if !regexp.MustCompile(pat).MatchString(err.Error()) {
		t.Errorf("error %q did not match %q", err.Error(), pat)
	}
}

func TestExpandMissingOptional(t *testing.T) {
	exp := RelativeToCWD()
	got, err := exp.Expand("@?/does/not/exist", "[GLOBAL] foo")
	if err != nil {
		t.Fatalf("optional missing file must not error: %v", err)
	}
	if got != nil {
		t.Errorf("optional missing file yielded %+v, want nil", got)
	}
}

func TestExpandMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", "{not json")
	writeFile(t, dir, "bad.yaml", "a: [1, 2\n")
	writeFile(t, dir, "null.json", "null")

	exp := NewExpander(dir)
	for _, raw := range []string{"@bad.json", "@bad.yaml", "@null.json"} {
		if _, err := exp.Expand(raw, "[GLOBAL] foo"); err == nil {
			t.Errorf("Expand(%q) succeeded, want decode error", raw)
		}
	}
}

func TestExpandAbsolutePathIgnoresBase(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "abs.txt", "content")

	exp := NewExpander("/somewhere/else")
	got, err := exp.Expand("@"+path, "[GLOBAL] foo")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got.Text != "content" {
		t.Errorf("got %q, want %q", got.Text, "content")
	}
}
