package xmlmap

// Encode converts the tree rooted at n into its nested representation. The
// result holds a single entry keyed by the root element's name.
//
// Element children are encoded by these rules:
//
//   - Siblings sharing a name are collected into a List in document order.
//   - A leaf becomes a Scalar holding its text, or an *Attributed wrapping
//     that Scalar when the leaf has attributes.
//   - A parent becomes the *Mapping of its own children, or an *Attributed
//     wrapping that mapping when the parent has attributes.
//
// The root element is the exception to the last rule: its attributes are
// merged into its mapping under AttributesKey instead of being wrapped.
//
// Encode never fails. Text mixed in with child elements is dropped, and the
// recursion depth equals the nesting depth of the tree.
func Encode(n Node) *Mapping {
	if n == nil {
		return NewMapping()
	}
	out := NewMapping()
	out.Set(n.Name(), encodeChildren(n, 0))
	return out
}

// encodeChildren returns n's contribution to its parent without wrapping it
// under n's name. siblingCount is the number of siblings sharing n's name,
// or 0 for the root.
func encodeChildren(n Node, siblingCount int) Value {
	children := n.Children()
	counts := make(map[string]int, len(children))
	for _, c := range children {
		counts[c.Name()]++
	}

	acc := NewMapping()
	for _, c := range children {
		name := c.Name()
		count := counts[name]

		if len(c.Children()) > 0 {
			v := encodeChildren(c, count)
			if count > 1 {
				acc.Append(name, v)
			} else {
				// A key already present is overwritten, not appended to.
				acc.Merge(singleEntry(name, v))
			}
			continue
		}

		var v Value = Scalar(c.Text())
		if attrs := c.Attributes(); len(attrs) > 0 {
			v = &Attributed{Value: v, Attributes: attrs}
		}
		if count > 1 {
			acc.Append(name, v)
		} else {
			acc.Set(name, v)
		}
	}

	attrs := n.Attributes()
	switch {
	case len(attrs) == 0:
		return acc
	case siblingCount == 0:
		acc.Merge(singleEntry(AttributesKey, attrs.Mapping()))
		return acc
	default:
		return &Attributed{Value: acc, Attributes: attrs}
	}
}

// singleEntry returns a mapping holding the single entry key: v.
func singleEntry(key string, v Value) *Mapping {
	m := NewMapping()
	m.Set(key, v)
	return m
}
