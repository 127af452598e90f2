package xmlmap_test

import (
	"github.com/KimNorgaard/go-xmlmap"
)

// fakeNode is an in-memory Node used to build trees without a parser.
type fakeNode struct {
	name     string
	text     string
	attrs    xmlmap.Attributes
	children []*fakeNode
}

func leaf(name, text string, attrs ...xmlmap.Attr) *fakeNode {
	return &fakeNode{name: name, text: text, attrs: attrs}
}

func parent(name string, attrs xmlmap.Attributes, children ...*fakeNode) *fakeNode {
	return &fakeNode{name: name, attrs: attrs, children: children}
}

func (f *fakeNode) Name() string { return f.name }

func (f *fakeNode) Children() []xmlmap.Node {
	nodes := make([]xmlmap.Node, len(f.children))
	for i, c := range f.children {
		nodes[i] = c
	}
	return nodes
}

func (f *fakeNode) ChildrenNamed(name string) []xmlmap.Node {
	var nodes []xmlmap.Node
	for _, c := range f.children {
		if c.name != name {
			continue
		}
		nodes = append(nodes, c)
	}
	return nodes
}

func (f *fakeNode) Attributes() xmlmap.Attributes { return f.attrs }

func (f *fakeNode) Text() string { return f.text }

// mapping builds a *Mapping from alternating key/value arguments.
func mapping(kv ...any) *xmlmap.Mapping {
	m := xmlmap.NewMapping()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1].(xmlmap.Value))
	}
	return m
}

func attrs(kv ...string) xmlmap.Attributes {
	var a xmlmap.Attributes
	for i := 0; i+1 < len(kv); i += 2 {
		a = append(a, xmlmap.Attr{Name: kv[i], Value: kv[i+1]})
	}
	return a
}
