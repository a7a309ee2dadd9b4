package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/untable/internal/dom"
	"github.com/mrjoshuak/untable/internal/errs"
)

func loadTable(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := dom.Parse(src)
	require.NoError(t, err)
	tbl, err := dom.LocateTable(doc, dom.Query{})
	require.NoError(t, err)
	return tbl
}

func loadFixture(t *testing.T, name string) *html.Node {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return loadTable(t, string(data))
}

func withSkip(skip int) Config {
	cfg := DefaultConfig()
	cfg.Skip = skip
	return cfg
}

func TestExtractSingleInfobox(t *testing.T) {
	record, err := ExtractSingle(loadFixture(t, "infobox.html"), withSkip(1))
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"Author":           "Talbot Mundy",
		"Country":          "United States",
		"Language":         "English",
		"Series":           "Tros",
		"Genre":            "Fantasy novel",
		"Publisher":        "Appleton-Century",
		"Publication date": "1935",
		"Media type":       "Print (Hardback)",
		"Pages":            "367",
		"OCLC":             "581460",
		"Preceded by":      "Queen Cleopatra",
	}, record.Plain())

	assert.Equal(t, []string{
		"Author", "Country", "Language", "Series", "Genre", "Publisher",
		"Publication date", "Media type", "Pages", "OCLC", "Preceded by",
	}, record.Labels())
	assert.False(t, record.Has("First edition"))
}

func TestExtractSingleMultipleValues(t *testing.T) {
	tbl := loadTable(t, `<table>
		<tr><th>Author</th><td>Ada Lovelace</td></tr>
		<tr><th>Languages</th><td>English</td></tr>
		<tr><td>French</td></tr>
		<tr><td>Italian</td></tr>
		<tr><th>Born</th><td>1815</td></tr>
	</table>`)

	record, err := ExtractSingle(tbl, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"Author":    "Ada Lovelace",
		"Languages": []string{"English", "French", "Italian"},
		"Born":      "1815",
	}, record.Plain())

	v, ok := record.Get("Languages")
	require.True(t, ok)
	assert.True(t, v.IsMultiple())
}

func TestExtractSingleSkipsEmptyCells(t *testing.T) {
	tbl := loadTable(t, `<table>
		<tr><td class="blank"> </td><td class="blank"></td></tr>
		<tr><th>Name</th><td>  </td><td>Ada</td></tr>
	</table>`)

	record, err := ExtractSingle(tbl, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"Name": "Ada"}, record.Plain())
}

func TestExtractSingleSkipMatchesTrimmedInput(t *testing.T) {
	full := loadTable(t, `<table>
		<tr><td class="img">Cover</td><td class="img">Caption</td></tr>
		<tr><th>Title</th><td>Purple Pirate</td></tr>
		<tr><th>Year</th><td>1935</td></tr>
	</table>`)
	trimmed := loadTable(t, `<table>
		<tr><th>Title</th><td>Purple Pirate</td></tr>
		<tr><th>Year</th><td>1935</td></tr>
	</table>`)

	skipped, err := ExtractSingle(full, withSkip(2))
	require.NoError(t, err)
	plain, err := ExtractSingle(trimmed, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, plain.Plain(), skipped.Plain())
	assert.Equal(t, plain.Labels(), skipped.Labels())
}

func TestExtractSingleSkipBeyondCells(t *testing.T) {
	tbl := loadTable(t, `<table><tr><th>a</th><td>b</td></tr></table>`)
	record, err := ExtractSingle(tbl, withSkip(10))
	require.NoError(t, err)
	assert.Equal(t, 0, record.Len())
}

func TestExtractSingleNestedCells(t *testing.T) {
	tbl := loadTable(t, `<table>
		<tr><th>Name</th><td><table><tr><td class="inner">Ada</td></tr></table></td></tr>
	</table>`)

	record, err := ExtractSingle(tbl, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"Name": "Ada"}, record.Plain())
}

func TestExtractSingleDeepSignature(t *testing.T) {
	src := `<table>
		<tr><td>Name</td><td><span class="v">Ada</span></td></tr>
		<tr><td>Role</td><td><span class="v">Programmer</span></td></tr>
	</table>`

	shallow, err := ExtractSingle(loadTable(t, src), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, shallow.Len(), "identical shallow signatures make every cell a label")

	cfg := DefaultConfig()
	cfg.DeepSignature = true
	deep, err := ExtractSingle(loadTable(t, src), cfg)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"Name": "Ada",
		"Role": "Programmer",
	}, deep.Plain())
}

func TestExtractSingleThresholdIsStrict(t *testing.T) {
	// "td  " against "td  b " scores exactly 0.8.
	tbl := loadTable(t, `<table><tr><td>Name</td><td><b>Ada</b></td></tr></table>`)

	cfg := DefaultConfig()
	cfg.DeepSignature = true
	record, err := ExtractSingle(tbl, cfg)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"Name": "Ada"}, record.Plain())

	cfg.Threshold = 0.79
	record, err = ExtractSingle(tbl, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, record.Len())
}

func TestExtractSingleValuesBeforeLabelDiscarded(t *testing.T) {
	tbl := loadTable(t, `<table><tr><th>Name</th><td>Ada</td></tr></table>`)

	cfg := DefaultConfig()
	cfg.Threshold = 1.0
	record, err := ExtractSingle(tbl, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, record.Len())
}

func TestExtractSingleUnicodeNormalization(t *testing.T) {
	tbl := loadTable(t, "<table><tr><th>Cafe\u0301</th><td>open\u2003daily</td></tr></table>")

	cfg := DefaultConfig()
	cfg.NormalizeUnicode = true
	record, err := ExtractSingle(tbl, cfg)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"Caf\u00e9": "open daily"}, record.Plain())
}

func TestExtractSingleLogsClassification(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := DefaultConfig()
	cfg.Logger = zap.New(core)

	tbl := loadTable(t, `<table><tr><th>Name</th><td>Ada</td></tr></table>`)
	_, err := ExtractSingle(tbl, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("label cell").Len())
	assert.Equal(t, 1, logs.FilterMessage("value cell").Len())
}

func TestExtractSingleInvalidConfig(t *testing.T) {
	tbl := loadTable(t, `<table><tr><th>a</th><td>b</td></tr></table>`)

	for _, cfg := range []Config{
		{Skip: -1, Threshold: 0.8},
		{Threshold: 1.5},
		{Threshold: -0.1},
	} {
		_, err := ExtractSingle(tbl, cfg)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.True(t, errs.IsErrorType(err, errs.ValidationError))
	}
}

func TestExtractSingleNilTable(t *testing.T) {
	_, err := ExtractSingle(nil, DefaultConfig())
	assert.ErrorIs(t, err, errs.ErrTableNotFound)
}
