package xmlmap

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-xmlmap/internal/markup"
)

// Log messages and fields.
const (
	LogMsgLoaded     = "document loaded"
	LogMsgLoadFailed = "document load failed"
	LogMsgSerialized = "document serialized"
	LogMsgSelected   = "xpath selection"
	LogFieldSource   = "source"
	LogFieldRoot     = "root"
	LogFieldPath     = "path"
	LogFieldExpr     = "expr"
	LogFieldMatches  = "matches"
	LogFieldBytes    = "bytes"
	sourceString     = "string"
	sourceValue      = "value"
	sourceReader     = "reader"
	sourceBytes      = "bytes"
)

// Document holds one parsed markup tree and converts it to and from nested
// values. A Document is not safe for concurrent use while loading.
type Document struct {
	root *xmlquery.Node
	opts *options
}

// New returns a Document built from input:
//
//   - a Value, map[string]any or []any is decoded to markup and parsed;
//   - a string containing '<' is parsed as markup text;
//   - any other string is taken as the path of a markup file;
//   - a []byte or io.Reader is parsed as markup;
//   - nil yields an empty Document ready for LoadFile or LoadString.
//
// Parse failures are returned with code ErrCodeParse. A string that is
// neither markup nor an existing file, or an input of any other type, fails
// with ErrUnrecognizedInput.
func New(input any, opts ...Option) (*Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	d := &Document{opts: o}

	switch v := input.(type) {
	case nil:
		return d, nil
	case Value:
		err = d.loadValue(v)
	case map[string]any:
		err = d.loadValue(FromAny(v))
	case []any:
		err = d.loadValue(FromAny(v))
	case string:
		switch {
		case strings.Contains(v, "<"):
			err = d.LoadString(v)
		case fileExists(v):
			err = d.LoadFile(v)
		default:
			return nil, newInputError(input)
		}
	case []byte:
		err = d.load(bytes.NewReader(v), sourceBytes)
	case io.Reader:
		err = d.load(v, sourceReader)
	default:
		return nil, newInputError(input)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile replaces the tree with the one parsed from the file at path.
func (d *Document) LoadFile(path string) error {
	root, err := markup.ParseFile(path)
	if err != nil {
		d.opts.logger.Debug(LogMsgLoadFailed, zap.String(LogFieldSource, path), zap.Error(err))
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return newIOError(err, ErrMsgReadFailed, path)
		}
		return newParseError(err, path)
	}
	d.setRoot(root, path)
	return nil
}

// LoadString replaces the tree with the one parsed from markup text s.
func (d *Document) LoadString(s string) error {
	return d.load(strings.NewReader(s), sourceString)
}

func (d *Document) load(r io.Reader, source string) error {
	root, err := markup.ParseReader(r)
	if err != nil {
		d.opts.logger.Debug(LogMsgLoadFailed, zap.String(LogFieldSource, source), zap.Error(err))
		return newParseError(err, source)
	}
	d.setRoot(root, source)
	return nil
}

func (d *Document) loadValue(v Value) error {
	var buf bytes.Buffer
	if err := newFormatter(&buf, d.opts).format(v); err != nil {
		return err
	}
	return d.load(&buf, sourceValue)
}

func (d *Document) setRoot(root *xmlquery.Node, source string) {
	d.root = root
	d.opts.logger.Debug(LogMsgLoaded,
		zap.String(LogFieldSource, source),
		zap.String(LogFieldRoot, root.Data))
}

// Root returns the root element, or nil when nothing is loaded.
func (d *Document) Root() Node {
	return newElement(d.root)
}

// Attributes returns the root element's attributes.
func (d *Document) Attributes() Attributes {
	if d.root == nil {
		return nil
	}
	return element{n: d.root}.Attributes()
}

// ToMap encodes the loaded tree. An empty Document yields an empty mapping.
func (d *Document) ToMap() *Mapping {
	return Encode(d.Root())
}

// ToXML returns the markup fragment for v using the Document's options.
func (d *Document) ToXML(v Value) string {
	var buf bytes.Buffer
	_ = newFormatter(&buf, d.opts).format(v)
	return buf.String()
}

// AsXML serializes the loaded tree. When path is non-empty the output is
// also written to that file.
func (d *Document) AsXML(path string) (string, error) {
	if d.root == nil {
		return "", newIOError(ErrNoDocument, ErrMsgNoDocument, path)
	}
	out, err := markup.Serialize(d.root, path)
	if err != nil {
		return "", newIOError(err, ErrMsgSerializeFailed, path)
	}
	d.opts.logger.Debug(LogMsgSerialized, zap.String(LogFieldPath, path), zap.Int(LogFieldBytes, len(out)))
	return out, nil
}

// Select evaluates the XPath expression expr against the loaded tree and
// encodes every matching element.
func (d *Document) Select(expr string) ([]*Mapping, error) {
	if d.root == nil {
		return nil, newIOError(ErrNoDocument, ErrMsgNoDocument, expr)
	}
	matches, err := markup.Select(d.root, expr)
	if err != nil {
		return nil, newSelectError(err, expr)
	}
	d.opts.logger.Debug(LogMsgSelected, zap.String(LogFieldExpr, expr), zap.Int(LogFieldMatches, len(matches)))

	out := make([]*Mapping, len(matches))
	for i, m := range matches {
		out[i] = Encode(element{n: m})
	}
	return out, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
