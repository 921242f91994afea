package json

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant an Element holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element is a parsed JSON value. Only the field matching Kind is set.
type Element struct {
	Kind   Kind
	Bool   bool
	Num    int
	Text   string
	Items  []Element
	Fields map[string]Element
}

// Null returns the null value.
func Null() Element {
	return Element{Kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Element {
	return Element{Kind: KindBool, Bool: b}
}

// Number returns an integer value.
func Number(n int) Element {
	return Element{Kind: KindNumber, Num: n}
}

// String returns a string value.
func String(s string) Element {
	return Element{Kind: KindString, Text: s}
}

// Array returns an array holding items in order.
func Array(items ...Element) Element {
	return Element{Kind: KindArray, Items: items}
}

// Object returns an object; a nil map becomes an empty object.
func Object(fields map[string]Element) Element {
	if fields == nil {
		fields = map[string]Element{}
	}
	return Element{Kind: KindObject, Fields: fields}
}

// Value converts the element to plain Go values: nil, bool, int, string,
// []any and map[string]any.
func (e Element) Value() any {
	switch e.Kind {
	case KindBool:
		return e.Bool
	case KindNumber:
		return e.Num
	case KindString:
		return e.Text
	case KindArray:
		items := make([]any, len(e.Items))
		for i, item := range e.Items {
			items[i] = item.Value()
		}
		return items
	case KindObject:
		fields := make(map[string]any, len(e.Fields))
		for name, field := range e.Fields {
			fields[name] = field.Value()
		}
		return fields
	default:
		return nil
	}
}

// String renders the element as compact JSON with object keys sorted.
func (e Element) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e Element) write(sb *strings.Builder) {
	switch e.Kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(e.Bool))
	case KindNumber:
		sb.WriteString(strconv.Itoa(e.Num))
	case KindString:
		sb.WriteString(`"` + e.Text + `"`)
	case KindArray:
		sb.WriteByte('[')
		for i, item := range e.Items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(`"` + name + `":`)
			e.Fields[name].write(sb)
		}
		sb.WriteByte('}')
	}
}
