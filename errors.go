package xmlmap

import (
	"errors"
	"fmt"

	"github.com/itsatony/go-cuserr"
)

// Error codes attached to errors returned by Document loading.
const (
	ErrCodeParse = "XMLMAP_PARSE"
	ErrCodeInput = "XMLMAP_INPUT"
	ErrCodeIO    = "XMLMAP_IO"
)

// Error messages.
const (
	ErrMsgParseFailed     = "markup parsing failed"
	ErrMsgUnrecognized    = "unrecognized document input"
	ErrMsgSerializeFailed = "markup serialization failed"
	ErrMsgNoDocument      = "no document loaded"
	ErrMsgSelectFailed    = "xpath selection failed"
	ErrMsgReadFailed      = "markup file unreadable"
)

// Metadata keys.
const (
	MetaKeySource = "source"
	MetaKeyInput  = "input_type"
	MetaKeyExpr   = "expr"
)

// ErrUnrecognizedInput is the cause of errors returned by New for input that
// is neither a value, markup text, nor the path of an existing file.
var ErrUnrecognizedInput = errors.New("xmlmap: unrecognized input")

// ErrNoDocument is the cause of errors returned by Document methods that
// need a loaded tree.
var ErrNoDocument = errors.New("xmlmap: no document loaded")

// newParseError wraps a failure reported by the markup provider.
func newParseError(cause error, source string) error {
	return cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgParseFailed).
		WithMetadata(MetaKeySource, source)
}

func newInputError(input any) error {
	return cuserr.WrapStdError(ErrUnrecognizedInput, ErrCodeInput, ErrMsgUnrecognized).
		WithMetadata(MetaKeyInput, fmt.Sprintf("%T", input))
}

func newIOError(cause error, msg, source string) error {
	return cuserr.WrapStdError(cause, ErrCodeIO, msg).
		WithMetadata(MetaKeySource, source)
}

func newSelectError(cause error, expr string) error {
	return cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgSelectFailed).
		WithMetadata(MetaKeyExpr, expr)
}
