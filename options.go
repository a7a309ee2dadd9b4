package untable

import (
	"go.uber.org/zap"

	"github.com/mrjoshuak/untable/internal/dom"
	"github.com/mrjoshuak/untable/internal/table"
)

// Defaults applied by DefaultOptions.
const (
	DefaultSkip          = table.DefaultSkip
	DefaultThreshold     = table.DefaultThreshold
	DefaultMaxBufferSize = 10 * 1024 * 1024 // 10MB
)

// Options configures an extraction.
type Options struct {
	Skip                 int         // Final cells (single) or rows (multi) ignored before scanning
	Threshold            float64     // Minimum signature similarity for a cell to be a label
	DeepSignature        bool        // Include descendant elements in cell signatures
	TableSelector        string      // CSS selector choosing the table, empty for the first one
	TableXPath           string      // XPath expression choosing the table, empty for the first one
	UnicodeNormalization bool        // NFKC-normalize cell text and strip control characters
	MaxBufferSize        int         // Maximum bytes read by the FromReader methods
	Logger               *zap.Logger // Receives debug output of the classifier
}

// DefaultOptions returns the default extraction options.
// Nothing is skipped, the label threshold is 0.8, signatures are shallow,
// the first table of the document is used and nothing is logged.
func DefaultOptions() Options {
	cfg := table.DefaultConfig()
	return Options{
		Skip:          cfg.Skip,
		Threshold:     cfg.Threshold,
		MaxBufferSize: DefaultMaxBufferSize,
		Logger:        zap.NewNop(),
	}
}

// Option represents a function that modifies Options.
// This follows the functional options pattern for configuring the extractor.
type Option func(*Options)

// WithSkip sets how many leading final cells (single-entity tables) or rows
// (multi-entity tables) are ignored. Use it to step over a caption or an
// image cell that precedes the first label.
func WithSkip(n int) Option {
	return func(o *Options) {
		o.Skip = n
	}
}

// WithThreshold sets the minimum similarity, from 0 to 1, a cell's signature
// must exceed against the first label's signature to be taken as a new
// label. Raise it when value cells look much like label cells.
func WithThreshold(threshold float64) Option {
	return func(o *Options) {
		o.Threshold = threshold
	}
}

// WithDeepSignature includes the tags and attributes of a cell's descendants
// in its signature. Useful when label and value cells only differ by their
// content markup.
func WithDeepSignature(enable bool) Option {
	return func(o *Options) {
		o.DeepSignature = enable
	}
}

// WithTableSelector picks the table with a CSS selector instead of taking
// the first one. Cannot be combined with WithTableXPath.
func WithTableSelector(selector string) Option {
	return func(o *Options) {
		o.TableSelector = selector
	}
}

// WithTableXPath picks the table with an XPath expression instead of taking
// the first one. Cannot be combined with WithTableSelector.
func WithTableXPath(expr string) Option {
	return func(o *Options) {
		o.TableXPath = expr
	}
}

// WithUnicodeNormalization applies NFKC normalization and strips control
// characters from cell text before whitespace is collapsed.
func WithUnicodeNormalization(enable bool) Option {
	return func(o *Options) {
		o.UnicodeNormalization = enable
	}
}

// WithMaxBufferSize sets the maximum number of bytes read from an io.Reader.
// Zero or less removes the limit.
func WithMaxBufferSize(size int) Option {
	return func(o *Options) {
		o.MaxBufferSize = size
	}
}

// WithLogger sets the logger receiving debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func buildOptions(opts []Option) Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// config converts the public options to the extractor configuration.
func (o Options) config() table.Config {
	return table.Config{
		Skip:             o.Skip,
		Threshold:        o.Threshold,
		DeepSignature:    o.DeepSignature,
		NormalizeUnicode: o.UnicodeNormalization,
		Logger:           o.Logger,
	}
}

func (o Options) query() dom.Query {
	return dom.Query{
		Selector: o.TableSelector,
		XPath:    o.TableXPath,
	}
}
