package format

import "io"

// TreeEncoder writes the tree in its own syntax, one document per line.
type TreeEncoder struct {
	w    io.Writer
	tree Tree
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(tree Tree) error {
	e.tree = tree
	return write(e.w, e)
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	return []byte(e.tree.String() + "\n"), nil
}
