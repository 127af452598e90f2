/*
Package xmlmap converts markup documents into nested values that plain Go
code can walk, and turns such values back into markup fragments.

A document is encoded into a Value, which is one of four variants:

  - Scalar: the text of a leaf element.
  - *Attributed: an element's content together with its attributes.
  - *Mapping: an insertion-ordered map from child names to values.
  - List: the values of siblings that share a name.

Example of encoding a document:

	m, err := xmlmap.Unmarshal([]byte(`<shelf id="1"><book>Go</book><book>XML</book></shelf>`))
	if err != nil {
		// handle error
	}
	// m is {shelf: {book: [Go, XML], @attributes: {id: 1}}}

The root element's attributes are merged into its mapping under
AttributesKey, while attributes of any other element wrap that element's
content in an *Attributed. Encode never fails; text that is mixed with child
elements is dropped.

Decoding writes one element per mapping entry, re-emits a list's key once
per item, and indents children one level deeper than their parent:

	out, err := xmlmap.Marshal(m, xmlmap.Indent("  "))
	// <shelf id='1'>
	//   <book>Go</book>
	//   <book>XML</book>
	// </shelf>

Text and attribute values are escaped unless Escape(false) is given.

For the common case of holding a single tree, Document dispatches on its
input (a Value, markup text, a file path, a reader) and exposes encoding,
decoding, serialization and XPath selection over the loaded tree.

Recursion depth in both directions equals the nesting depth of the input.
*/
package xmlmap
