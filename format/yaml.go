package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder writes the value of a tree as a YAML document.
type YAMLEncoder struct {
	w    io.Writer
	tree Tree
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(tree Tree) error {
	e.tree = tree
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(e.tree.Value())
}
