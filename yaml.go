package xmlmap

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ValueKey is the key holding an *Attributed's content in its YAML and
// generic-map forms, next to AttributesKey.
const ValueKey = "value"

// MarshalYAML renders the mapping as an ordered YAML mapping.
func (m *Mapping) MarshalYAML() (any, error) { return yamlNode(m), nil }

// MarshalYAML renders the carrier as a mapping of ValueKey and AttributesKey.
func (a *Attributed) MarshalYAML() (any, error) { return yamlNode(a), nil }

// MarshalYAML renders the list as a YAML sequence.
func (l List) MarshalYAML() (any, error) { return yamlNode(l), nil }

func yamlNode(v Value) *yaml.Node {
	switch x := v.(type) {
	case Scalar:
		return yamlString(string(x))
	case *Attributed:
		if x == nil {
			return yamlString("")
		}
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		n.Content = append(n.Content,
			yamlString(ValueKey), yamlNode(x.Value),
			yamlString(AttributesKey), yamlNode(x.Attributes.Mapping()))
		return n
	case *Mapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		x.Range(func(key string, e Value) bool {
			n.Content = append(n.Content, yamlString(key), yamlNode(e))
			return true
		})
		return n
	case List:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x {
			n.Content = append(n.Content, yamlNode(e))
		}
		return n
	}
	return yamlString("")
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// FromYAML parses a YAML document into a Value, keeping mapping order. A
// mapping holding exactly the keys ValueKey and AttributesKey becomes an
// *Attributed; sequences become Lists and every scalar becomes a Scalar.
func FromYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("xmlmap: parsing yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return NewMapping(), nil
	}
	return fromYAMLNode(doc.Content[0]), nil
}

func fromYAMLNode(n *yaml.Node) Value {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		l := make(List, len(n.Content))
		for i, c := range n.Content {
			l[i] = fromYAMLNode(c)
		}
		return l
	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			m.Set(n.Content[i].Value, fromYAMLNode(n.Content[i+1]))
		}
		return carrier(m)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return Scalar("")
		}
		return Scalar(n.Value)
	}
	return Scalar("")
}

// carrier turns a {ValueKey, AttributesKey} mapping into an *Attributed and
// returns any other mapping unchanged.
func carrier(m *Mapping) Value {
	if m.Len() != 2 {
		return m
	}
	v, hasValue := m.Get(ValueKey)
	av, hasAttrs := m.Get(AttributesKey)
	am, isMapping := av.(*Mapping)
	if !hasValue || !hasAttrs || !isMapping {
		return m
	}
	return &Attributed{Value: v, Attributes: attributesOf(am)}
}

// FromAny converts generic decoded data, such as the result of json.Unmarshal
// into an any, to a Value. Go maps are unordered, so mapping keys are sorted:
// integer keys numerically and ahead of all other keys, which sort
// lexically. Scalars other than strings are formatted with fmt.Sprint.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return Scalar("")
	case Value:
		return x
	case string:
		return Scalar(x)
	case []any:
		l := make(List, len(x))
		for i, e := range x {
			l[i] = FromAny(e)
		}
		return l
	case []string:
		l := make(List, len(x))
		for i, e := range x {
			l[i] = Scalar(e)
		}
		return l
	case map[string]string:
		m := NewMapping()
		for _, key := range sortedKeys(x) {
			m.Set(key, Scalar(x[key]))
		}
		return carrier(m)
	case map[string]any:
		m := NewMapping()
		for _, key := range sortedKeys(x) {
			m.Set(key, FromAny(x[key]))
		}
		return carrier(m)
	}
	return Scalar(fmt.Sprint(v))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		ai, aerr := strconv.Atoi(a)
		bi, berr := strconv.Atoi(b)
		switch {
		case aerr == nil && berr == nil:
			return cmp.Compare(ai, bi)
		case aerr == nil:
			return -1
		case berr == nil:
			return 1
		}
		return cmp.Compare(a, b)
	})
	return keys
}
