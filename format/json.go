package format

import (
	"encoding/json"
	"io"
)

// JSONEncoder writes the value of a tree as indented JSON.
type JSONEncoder struct {
	w    io.Writer
	tree Tree
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tree Tree) error {
	e.tree = tree
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	text, err := json.MarshalIndent(e.tree.Value(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
