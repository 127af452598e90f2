package xmlmap

import (
	"github.com/antchfx/xmlquery"

	"github.com/KimNorgaard/go-xmlmap/internal/markup"
)

// Node is a read-only element of a parsed markup tree. Encode accepts any
// implementation; the trees built by this package are backed by xmlquery.
type Node interface {
	// Name returns the element name.
	Name() string
	// Children returns the element children in document order.
	Children() []Node
	// ChildrenNamed returns the element children called name, in document order.
	ChildrenNamed(name string) []Node
	// Attributes returns the attributes in document order.
	Attributes() Attributes
	// Text returns the text content of the element.
	Text() string
}

// element adapts an xmlquery element to Node.
type element struct {
	n *xmlquery.Node
}

func newElement(n *xmlquery.Node) Node {
	if n == nil {
		return nil
	}
	return element{n: n}
}

func (e element) Name() string { return e.n.Data }

func (e element) Children() []Node {
	return wrapElements(markup.Elements(e.n, ""))
}

func (e element) ChildrenNamed(name string) []Node {
	if name == "" {
		return nil
	}
	return wrapElements(markup.Elements(e.n, name))
}

func (e element) Attributes() Attributes {
	pairs := markup.Attrs(e.n)
	if len(pairs) == 0 {
		return nil
	}
	attrs := make(Attributes, len(pairs))
	for i, p := range pairs {
		attrs[i] = Attr{Name: p[0], Value: p[1]}
	}
	return attrs
}

func (e element) Text() string { return e.n.InnerText() }

func wrapElements(ns []*xmlquery.Node) []Node {
	nodes := make([]Node, len(ns))
	for i, n := range ns {
		nodes[i] = element{n: n}
	}
	return nodes
}
