package table

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/untable/internal/dom"
	"github.com/mrjoshuak/untable/internal/errs"
	"github.com/mrjoshuak/untable/types"
)

var (
	rowTag        = dom.Tags("tr")
	headerCellTag = dom.Tags("th")
	dataCellTag   = dom.Tags("td")
)

// ExtractMulti reads one record per row.
//
// The final row at index cfg.Skip holds the labels: its header cells if it
// has any, its data cells otherwise. Each following row must have exactly
// one data cell per label; values are matched to labels by position and an
// empty label is dropped.
func ExtractMulti(tbl *html.Node, cfg Config) ([]*types.Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tbl == nil {
		return nil, errs.WrapLocateError(errs.ErrTableNotFound, "ExtractMulti", "")
	}

	log := cfg.logger()
	clean := cfg.normalizer()

	rows := dom.FinalElements(goquery.NewDocumentFromNode(tbl).Selection, rowTag)
	if cfg.Skip >= rows.Length() {
		return nil, errs.WrapLocateError(
			fmt.Errorf("%w: index %d with %d rows", errs.ErrLabelRowNotFound, cfg.Skip, rows.Length()),
			"ExtractMulti", "")
	}

	labelRow := rows.Eq(cfg.Skip)
	labelCells := labelRow.FindMatcher(headerCellTag)
	if labelCells.Length() == 0 {
		labelCells = labelRow.FindMatcher(dataCellTag)
	}
	labels := cellTexts(labelCells, clean)
	log.Debug("label row", zap.Int("row", cfg.Skip), zap.Strings("labels", labels))

	records := make([]*types.Record, 0, rows.Length()-cfg.Skip-1)
	for i := cfg.Skip + 1; i < rows.Length(); i++ {
		values := cellTexts(rows.Eq(i).FindMatcher(dataCellTag), clean)
		if len(values) != len(labels) {
			return nil, errs.WrapExtractionError(
				&errs.RowLengthError{Row: i, Want: len(labels), Got: len(values)}, "ExtractMulti", "")
		}

		record := types.NewRecord()
		for j, label := range labels {
			record.Set(label, types.Single(values[j]))
		}
		record.Delete("")

		log.Debug("data row", zap.Int("row", i), zap.Int("fields", record.Len()))
		records = append(records, record)
	}

	return records, nil
}

func cellTexts(cells *goquery.Selection, clean func(string) string) []string {
	out := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		out = append(out, clean(cell.Text()))
	})
	return out
}
