// Package markup parses and serializes well-formed XML using xmlquery. It is
// the only place in the module that reads markup text.
package markup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

var (
	// ErrNoElement is returned when the input parses but holds no element.
	ErrNoElement = errors.New("no root element")
	// ErrMultipleRoots is returned when the input holds more than one
	// top-level element.
	ErrMultipleRoots = errors.New("more than one root element")
)

// ParseString parses markup text and returns its root element.
func ParseString(s string) (*xmlquery.Node, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseFile parses the markup file at path and returns its root element.
func ParseFile(path string) (*xmlquery.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader parses markup read from r and returns its root element. The
// input must hold exactly one top-level element.
func ParseReader(r io.Reader) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	switch roots := Elements(doc, ""); len(roots) {
	case 0:
		return nil, ErrNoElement
	case 1:
		return roots[0], nil
	default:
		return nil, fmt.Errorf("%w: <%s> follows <%s>", ErrMultipleRoots, roots[1].Data, roots[0].Data)
	}
}

// Serialize renders the document containing n, declaration included when
// the source carried one. When path is non-empty the output is also written
// to that file.
func Serialize(n *xmlquery.Node, path string) (string, error) {
	top := n
	for top.Parent != nil {
		top = top.Parent
	}
	out := top.OutputXML(true)
	if path == "" {
		return out, nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

// Select compiles expr and returns the elements it matches under n.
func Select(n *xmlquery.Node, expr string) ([]*xmlquery.Node, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	var elements []*xmlquery.Node
	for _, match := range xmlquery.QuerySelectorAll(n, compiled) {
		if match.Type == xmlquery.ElementNode {
			elements = append(elements, match)
		}
	}
	return elements, nil
}

// Elements returns the element children of n in document order. When name
// is non-empty only children with that name are returned.
func Elements(n *xmlquery.Node, name string) []*xmlquery.Node {
	var children []*xmlquery.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		if name != "" && child.Data != name {
			continue
		}
		children = append(children, child)
	}
	return children
}

// Attrs returns the attributes of n as ordered name/value pairs. Namespace
// declarations are skipped.
func Attrs(n *xmlquery.Node) [][2]string {
	var attrs [][2]string
	for _, a := range n.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attrs = append(attrs, [2]string{a.Name.Local, a.Value})
	}
	return attrs
}
