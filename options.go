package xmlmap

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const defaultIndent = "\t"

// Option configures decoding and document loading.
type Option func(*options) error

type options struct {
	indent string
	escape bool
	logger *zap.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		indent: defaultIndent,
		escape: true,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Indent sets the string written once per nesting level in decoded
// fragments. It may only contain spaces and tabs; the empty string disables
// indentation. Default: a single tab.
func Indent(s string) Option {
	return func(o *options) error {
		if strings.Trim(s, " \t") != "" {
			return fmt.Errorf("xmlmap: indent must contain only spaces and tabs, got %q", s)
		}
		o.indent = s
		return nil
	}
}

// Escape controls whether text and attribute values are escaped in decoded
// fragments. With Escape(false) values are written verbatim, and values
// holding quotes or markup characters produce broken output. Default: true.
func Escape(enabled bool) Option {
	return func(o *options) error {
		o.escape = enabled
		return nil
	}
}

// WithLogger sets the logger used for document loading events.
// Default: no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return fmt.Errorf("xmlmap: logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}
