// Package table implements the two extractors: label/value pairs laid out
// down a single-entity table, and one record per row of a multi-entity table.
package table

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/mrjoshuak/untable/internal/errs"
	"github.com/mrjoshuak/untable/internal/textutil"
)

// Defaults used when a caller sets nothing.
const (
	DefaultSkip      = 0
	DefaultThreshold = 0.8
)

// Config controls a single extraction run.
type Config struct {
	Skip             int         // leading final cells (single) or rows (multi) to ignore
	Threshold        float64     // minimum similarity for a cell to count as a label
	DeepSignature    bool        // include descendants in cell signatures
	NormalizeUnicode bool        // apply NFKC and strip control characters on cell text
	Logger           *zap.Logger // debug output, nil means silent
}

// DefaultConfig returns a Config with the default skip and threshold.
func DefaultConfig() Config {
	return Config{
		Skip:      DefaultSkip,
		Threshold: DefaultThreshold,
	}
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	if c.Skip < 0 {
		return errs.WrapValidationError(
			fmt.Errorf("%w: skip must not be negative, got %d", errs.ErrInvalidArgument, c.Skip), "Validate", "")
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 1 {
		return errs.WrapValidationError(
			fmt.Errorf("%w: threshold must be within [0,1], got %v", errs.ErrInvalidArgument, c.Threshold), "Validate", "")
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c Config) normalizer() func(string) string {
	return textutil.Normalizer(c.NormalizeUnicode)
}
