package xmlmap

import (
	"fmt"
	"strings"
)

// AttributesKey is the reserved mapping key under which the root element's
// attributes are merged next to its children. Element names cannot begin with
// '@', so the key never shadows a real child.
const AttributesKey = "@attributes"

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindScalar is the Kind of a Scalar.
	KindScalar Kind = iota
	// KindAttributed is the Kind of an *Attributed.
	KindAttributed
	// KindMapping is the Kind of a *Mapping.
	KindMapping
	// KindList is the Kind of a List.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindAttributed:
		return "attributed"
	case KindMapping:
		return "mapping"
	case KindList:
		return "list"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is the nested representation of markup content. It is one of
// Scalar, *Attributed, *Mapping or List.
type Value interface {
	Kind() Kind
	value()
}

// Scalar is the text content of a leaf element.
type Scalar string

func (Scalar) Kind() Kind { return KindScalar }
func (Scalar) value()     {}

// Attributed carries an element's attributes alongside its content. Value is
// a Scalar for leaf elements and a *Mapping for elements with children.
type Attributed struct {
	Value      Value
	Attributes Attributes
}

func (*Attributed) Kind() Kind { return KindAttributed }
func (*Attributed) value()     {}

// List holds the values of two or more siblings sharing one name, in
// document order.
type List []Value

func (List) Kind() Kind { return KindList }
func (List) value()     {}

// Attr is a single name='value' attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute set.
type Attributes []Attr

// Get returns the value of the named attribute.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Mapping returns the attributes as a mapping of scalars, the shape used for
// the root element's AttributesKey entry.
func (a Attributes) Mapping() *Mapping {
	m := NewMapping()
	for _, attr := range a {
		m.Set(attr.Name, Scalar(attr.Value))
	}
	return m
}

// attributesOf converts a mapping back into an attribute set. Non-scalar
// entries are stringified.
func attributesOf(m *Mapping) Attributes {
	attrs := make(Attributes, 0, m.Len())
	m.Range(func(key string, v Value) bool {
		attrs = append(attrs, Attr{Name: key, Value: stringify(v)})
		return true
	})
	return attrs
}

// Mapping is an insertion-ordered map from element names to values. Its read
// methods treat a nil *Mapping as empty.
type Mapping struct {
	keys    []string
	entries map[string]Value
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]Value)}
}

func (*Mapping) Kind() Kind { return KindMapping }
func (*Mapping) value()     {}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Set stores v under key. An existing key keeps its position and has its
// value overwritten.
func (m *Mapping) Set(key string, v Value) {
	if m.entries == nil {
		m.entries = make(map[string]Value)
	}
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Append adds v to the List stored under key, creating the list on first
// use. A non-list value already stored under key becomes the list's first
// element.
func (m *Mapping) Append(key string, v Value) {
	switch existing := m.entries[key].(type) {
	case nil:
		m.Set(key, List{v})
	case List:
		m.entries[key] = append(existing, v)
	default:
		m.entries[key] = List{existing, v}
	}
}

// Delete removes key.
func (m *Mapping) Delete(key string) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Merge copies every entry of other into m. Colliding keys are overwritten,
// not appended.
func (m *Mapping) Merge(other *Mapping) {
	other.Range(func(key string, v Value) bool {
		m.Set(key, v)
		return true
	})
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Mapping) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, key := range m.keys {
		if !fn(key, m.entries[key]) {
			return
		}
	}
}

// positional reports whether the mapping is a list surfaced with index keys,
// i.e. its first key is a non-negative integer.
func (m *Mapping) positional() bool {
	if m.Len() == 0 {
		return false
	}
	first := m.keys[0]
	if first == "" {
		return false
	}
	for _, r := range first {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stringify renders a value that appears where only text is allowed.
func stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case Scalar:
		return string(x)
	case *Attributed:
		if x == nil {
			return ""
		}
		return stringify(x.Value)
	case List:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, " ")
	case *Mapping:
		var parts []string
		x.Range(func(_ string, e Value) bool {
			parts = append(parts, stringify(e))
			return true
		})
		return strings.Join(parts, " ")
	}
	return fmt.Sprint(v)
}
