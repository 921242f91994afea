package xml

import (
	"strings"
)

// Attribute is a name="value" pair of an element.
type Attribute struct {
	Name  string
	Value string
}

// Element is a parsed XML element. Attributes keep their source order.
type Element struct {
	Name       string
	Attributes []Attribute
	Children   []Element
}

// Attr returns the value of the first attribute called name.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Value converts the element to plain Go values for encoders.
func (e Element) Value() any {
	attrs := make([]any, len(e.Attributes))
	for i, a := range e.Attributes {
		attrs[i] = map[string]any{"name": a.Name, "value": a.Value}
	}
	children := make([]any, len(e.Children))
	for i, c := range e.Children {
		children[i] = c.Value()
	}
	return map[string]any{
		"name":       e.Name,
		"attributes": attrs,
		"children":   children,
	}
}

// String renders the element back as compact XML.
func (e Element) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e Element) write(sb *strings.Builder) {
	sb.WriteString("<" + e.Name)
	for _, a := range e.Attributes {
		sb.WriteString(" " + a.Name + `="` + a.Value + `"`)
	}
	if len(e.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, c := range e.Children {
		c.write(sb)
	}
	sb.WriteString("</" + e.Name + ">")
}
