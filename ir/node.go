package ir

// Type discriminates the variants of a Node.
type Type int

const (
	NullType Type = iota
	TextType
	ObjectType
	ArrayType
)

func Types() []Type {
	return []Type{NullType, TextType, ObjectType, ArrayType}
}

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case TextType:
		return "text"
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	default:
		return "<invalid>"
	}
}

// Node is a recursive tagged union representing an element mapping: a
// null (absent text), a text value, an ordered object of named children,
// or an array of nodes. The variant is selected by Type; only the fields
// belonging to the variant carry meaning.
//
// For ObjectType, Fields[i] names the value at Values[i]. Field order is
// the order of first occurrence, which for converted XML elements is
// document order.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	Text string
}

// Null returns the absent-text node.
func Null() *Node {
	return &Node{Type: NullType}
}

// FromText returns a text leaf node.
func FromText(v string) *Node {
	return &Node{Type: TextType, Text: v}
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// FromSlice returns an array node over the given nodes.
func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// Set binds field to v. If field is already present its value is
// overwritten in place, keeping the position of the first occurrence;
// otherwise the field is appended. Later writes win.
func (y *Node) Set(field string, v *Node) *Node {
	for i, f := range y.Fields {
		if f == field {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

// Get returns the value bound to field, or nil if absent.
func (y *Node) Get(field string) *Node {
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of fields of an object or elements of an array.
func (y *Node) Len() int {
	return len(y.Values)
}

// IsLeaf reports whether y carries no child values.
func (y *Node) IsLeaf() bool {
	switch y.Type {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// Visit walks y pre-order, calling f for the node and then, when f
// returns true, for each of its values.
func (y *Node) Visit(f func(y *Node) bool) {
	if !f(y) {
		return
	}
	for _, yy := range y.Values {
		yy.Visit(f)
	}
}

// ToGo converts y to plain Go values: nil, string, map[string]any, or
// []any. Object field order is lost; duplicate fields cannot occur.
func (y *Node) ToGo() any {
	switch y.Type {
	case NullType:
		return nil
	case TextType:
		return y.Text
	case ObjectType:
		m := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			m[f] = y.Values[i].ToGo()
		}
		return m
	case ArrayType:
		s := make([]any, len(y.Values))
		for i, v := range y.Values {
			s[i] = v.ToGo()
		}
		return s
	default:
		panic("type")
	}
}
