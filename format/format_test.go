package format

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

type testTree struct{}

func (testTree) Value() any {
	return map[string]any{
		"name":  "top",
		"items": []any{1, true, nil},
	}
}

func (testTree) String() string {
	return `{"items":[1,true,null],"name":"top"}`
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(testTree{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{
  "items": [
    1,
    true,
    null
  ],
  "name": "top"
}
`
	if buf.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLEncoder(&buf).Encode(testTree{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "items:\n    - 1\n    - true\n    - null\nname: top\n"
	if buf.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestTreeEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(testTree{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := testTree{}.String() + "\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output %q", got)
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range Names() {
		var buf bytes.Buffer
		enc, err := NewEncoder(name, &buf)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if err := enc.Encode(testTree{}); err != nil {
			t.Fatalf("%s: encode: %v", name, err)
		}
		if buf.Len() == 0 {
			t.Errorf("%s: expected output", name)
		}
	}

	_, err := NewEncoder("toml", &bytes.Buffer{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{"json", "tree", "yaml"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
