package xmlmap

import (
	"io"
	"strings"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&apos;", `"`, "&quot;")
)

// formatter writes a nested value to an output stream as a markup fragment.
type formatter struct {
	w     io.Writer
	depth int
	opts  *options
}

func newFormatter(w io.Writer, opts *options) *formatter {
	return &formatter{w: w, opts: opts}
}

// format writes v. A mapping yields one element per entry; any other value
// has no name to use as a tag and is written as text.
func (f *formatter) format(v Value) error {
	if m, ok := v.(*Mapping); ok {
		return f.writeEntries(m, "")
	}
	return f.write(f.text(stringify(v)))
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) writeIndent() error {
	if f.opts.indent == "" {
		return nil
	}
	return f.write(strings.Repeat(f.opts.indent, f.depth))
}

// writeEntries writes one element per entry of m. When forcedKey is set it
// replaces every entry's key as the tag name, which turns the elements of a
// positional mapping back into same-named siblings. The AttributesKey entry
// belongs to the enclosing element and is skipped.
func (f *formatter) writeEntries(m *Mapping, forcedKey string) error {
	var err error
	m.Range(func(key string, v Value) bool {
		if key == AttributesKey {
			return true
		}
		name := key
		if forcedKey != "" {
			name = forcedKey
		}
		err = f.writeElement(name, v)
		return err == nil
	})
	return err
}

func (f *formatter) writeElement(name string, v Value) error {
	switch x := v.(type) {
	case *Attributed:
		if x == nil {
			return f.writeLeaf(name, nil, "")
		}
		if inner, ok := x.Value.(*Mapping); ok {
			return f.writeParent(name, x.Attributes, inner)
		}
		return f.writeLeaf(name, x.Attributes, stringify(x.Value))

	case *Mapping:
		if av, ok := x.Get(AttributesKey); ok {
			var attrs Attributes
			if am, ok := av.(*Mapping); ok {
				attrs = attributesOf(am)
			}
			return f.writeParent(name, attrs, x)
		}
		if x.positional() {
			return f.writeEntries(x, name)
		}
		return f.writeParent(name, nil, x)

	case List:
		for _, e := range x {
			if err := f.writeElement(name, e); err != nil {
				return err
			}
		}
		return nil

	default:
		return f.writeLeaf(name, nil, stringify(v))
	}
}

func (f *formatter) writeLeaf(name string, attrs Attributes, text string) error {
	if err := f.writeIndent(); err != nil {
		return err
	}
	return f.write(f.openTag(name, attrs) + f.text(text) + "</" + name + ">\n")
}

func (f *formatter) writeParent(name string, attrs Attributes, children *Mapping) error {
	if err := f.writeIndent(); err != nil {
		return err
	}
	if !hasElements(children) {
		return f.write(f.openTag(name, attrs) + "</" + name + ">\n")
	}
	if err := f.write(f.openTag(name, attrs) + "\n"); err != nil {
		return err
	}

	f.depth++
	if err := f.writeEntries(children, ""); err != nil {
		return err
	}
	f.depth--

	if err := f.writeIndent(); err != nil {
		return err
	}
	return f.write("</" + name + ">\n")
}

func (f *formatter) openTag(name string, attrs Attributes) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString("='")
		b.WriteString(f.attr(a.Value))
		b.WriteString("'")
	}
	b.WriteString(">")
	return b.String()
}

func (f *formatter) text(s string) string {
	if !f.opts.escape {
		return s
	}
	return textEscaper.Replace(s)
}

func (f *formatter) attr(s string) string {
	if !f.opts.escape {
		return s
	}
	return attrEscaper.Replace(s)
}

// hasElements reports whether m has an entry other than AttributesKey.
func hasElements(m *Mapping) bool {
	if m == nil {
		return false
	}
	for _, key := range m.keys {
		if key != AttributesKey {
			return true
		}
	}
	return false
}
