package autop

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/mrjoshuak/autop/internal/pipeline"
)

// Formatter defines the interface for paragraph formatting.
type Formatter interface {
	// Format converts text into paragraph markup. It never fails.
	Format(text string) string

	// FormatReader reads all of r and formats it
	FormatReader(r io.Reader) (string, error)
}

// Option represents a function that modifies Options.
type Option func(*Options)

// WithLineBreaks enables or disables the conversion of single newlines
// into <br /> elements. Double newlines always become paragraphs.
func WithLineBreaks(enable bool) Option {
	return func(o *Options) {
		o.LineBreaks = enable
	}
}

// WithMaxInputSize limits how many bytes FormatReader accepts.
// A size of zero or less removes the limit.
func WithMaxInputSize(size int64) Option {
	return func(o *Options) {
		o.MaxInputSize = size
	}
}

// WithLogger sets the logger FormatReader reports to. A nil logger
// restores the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Autop replaces double line breaks in text with paragraph elements. When
// br is true the remaining single line breaks become <br /> elements.
//
// Pre-existing block markup is left in place and <pre> regions are never
// touched. The result ends with the newline the algorithm pads the text
// with; callers that don't want it trim the output themselves.
func Autop(text string, br bool) string {
	return pipeline.Run(text, br)
}

// formatter is the concrete implementation of the Formatter interface.
type formatter struct {
	options Options
}

// Format runs the paragraph pipeline over text using the formatter's options.
func (f *formatter) Format(text string) string {
	return pipeline.Run(text, f.options.LineBreaks)
}

// FormatReader reads the whole of r and formats it. A leading byte order
// mark selects the encoding (UTF-16 input is converted to UTF-8); input
// without one is passed through byte for byte.
func (f *formatter) FormatReader(r io.Reader) (string, error) {
	limit := f.options.MaxInputSize
	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit)
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", WrapError(err, ReadError, "FormatReader", "failed to read input")
	}
	if limit > 0 && int64(len(raw)) == limit && hasMore(r) {
		f.options.Logger.Warn("rejecting oversized input", "limit", limit)
		return "", WrapError(ErrInputTooLarge, ValidationError, "FormatReader",
			fmt.Sprintf("more than %d bytes", limit))
	}

	decoded, n, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
	if err != nil {
		return "", WrapError(err, DecodeError, "FormatReader", "failed to decode input")
	}
	if len(decoded) != n {
		f.options.Logger.Debug("input had a byte order mark", "in", n, "out", len(decoded))
	}

	return f.Format(string(decoded)), nil
}

// hasMore reports whether r yields at least one more byte.
func hasMore(r io.Reader) bool {
	var b [1]byte
	n, _ := io.ReadFull(r, b[:])
	return n > 0
}

// New creates a Formatter with the provided options.
//
// Example:
//
//	f := autop.New(
//	    autop.WithLineBreaks(false),
//	    autop.WithMaxInputSize(64*1024),
//	)
func New(opts ...Option) Formatter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = discardLogger()
	}

	return &formatter{
		options: options,
	}
}
