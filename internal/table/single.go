package table

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/untable/internal/dom"
	"github.com/mrjoshuak/untable/internal/errs"
	"github.com/mrjoshuak/untable/internal/signature"
	"github.com/mrjoshuak/untable/types"
)

var cellTags = dom.Tags("th", "td")

// ExtractSingle reads one entity laid out as label/value cells.
//
// The first non-empty final cell is taken as a label and its signature is
// pinned. Every later non-empty cell whose signature is more similar than
// cfg.Threshold to the pinned one starts a new label; any other cell is a
// value of the current label. Values found before any label are dropped,
// and repeated values under one label accumulate into a list.
func ExtractSingle(tbl *html.Node, cfg Config) (*types.Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tbl == nil {
		return nil, errs.WrapLocateError(errs.ErrTableNotFound, "ExtractSingle", "")
	}

	log := cfg.logger()
	clean := cfg.normalizer()
	record := types.NewRecord()

	var (
		labelSig  string
		pinned    bool
		label     string
		haveLabel bool
	)

	cells := dom.FinalElements(goquery.NewDocumentFromNode(tbl).Selection, cellTags)
	cells.Each(func(i int, cell *goquery.Selection) {
		if i < cfg.Skip {
			return
		}

		text := clean(cell.Text())
		if text == "" {
			return
		}

		sig := signature.Of(cell.Get(0), cfg.DeepSignature)
		if !pinned {
			labelSig, pinned = sig, true
		}

		similarity := signature.Similarity(labelSig, sig)
		if similarity > cfg.Threshold {
			label, haveLabel = text, true
			log.Debug("label cell",
				zap.Int("cell", i),
				zap.String("label", text),
				zap.Float64("similarity", similarity))
			return
		}

		if !haveLabel {
			log.Debug("value cell without label discarded",
				zap.Int("cell", i),
				zap.Float64("similarity", similarity))
			return
		}

		record.Add(label, text)
		log.Debug("value cell",
			zap.Int("cell", i),
			zap.String("label", label),
			zap.Float64("similarity", similarity))
	})

	return record, nil
}
