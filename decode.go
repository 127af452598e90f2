package xmlmap

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder writes nested values to an output stream as markup fragments.
type Decoder struct {
	w    io.Writer
	opts []Option
}

// NewDecoder returns a new decoder that writes to w.
func NewDecoder(w io.Writer, opts ...Option) *Decoder {
	return &Decoder{w: w, opts: opts}
}

// Decode writes the markup fragment for v to the stream.
//
// Every entry of a *Mapping becomes an element named by its key. The shape
// of the entry decides the element's content:
//
//   - Scalar: the escaped text.
//   - *Attributed: the attributes on the tag, then the inner Scalar as text
//     or the inner *Mapping as child elements.
//   - *Mapping: child elements, with the AttributesKey entry, if any,
//     rendered as the tag's attributes.
//   - List, or a *Mapping whose first key is a non-negative integer: one
//     element per item, each named by the entry's key.
//
// The fragment has no declaration. Each element is on its own line and
// children are indented one level deeper than their parent. Decode fails
// only when the underlying writer does.
func (d *Decoder) Decode(v Value) error {
	if d.w == nil {
		return fmt.Errorf("xmlmap: Decode(nil writer)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return err
	}
	return newFormatter(d.w, o).format(v)
}

// Marshal returns the markup fragment for v.
func Marshal(v Value, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewDecoder(&buf, opts...).Decode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode returns the markup fragment for v using the default options.
func Decode(v Value) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail and the default options are valid.
	_ = newFormatter(&buf, defaultOptions()).format(v)
	return buf.String()
}

func defaultOptions() *options {
	o, _ := newOptions(nil)
	return o
}
