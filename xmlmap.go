package xmlmap

import (
	"bytes"
)

// Unmarshal parses markup data and returns its nested representation.
// Malformed input is reported with code ErrCodeParse.
func Unmarshal(data []byte, opts ...Option) (*Mapping, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	d := &Document{opts: o}
	if err := d.load(bytes.NewReader(data), sourceBytes); err != nil {
		return nil, err
	}
	return d.ToMap(), nil
}
