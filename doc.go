/*
Package untable extracts structured records from HTML tables whose layout is
not known in advance.

Two layouts are supported. A single-entity table, such as a Wikipedia infobox,
describes one thing through a sequence of label cells each followed by one or
more value cells. A multi-entity table holds one label row followed by one row
per entity.

Labels in single-entity tables are told apart from values by the markup of the
cells rather than their text: each cell gets a signature built from its tag and
attributes, and a cell whose signature is similar enough to the first label's is
taken as a new label.

Basic Usage:

	import "github.com/mrjoshuak/untable"

	// One entity; skip the cover image cell that precedes the first label
	record, err := untable.Single(htmlString, untable.WithSkip(1))
	if err != nil {
	    // Handle error
	}

	for _, label := range record.Labels() {
	    value, _ := record.Get(label)
	    fmt.Printf("%s: %s\n", label, value)
	}

	// One record per row
	records, err := untable.Multi(htmlString)

Advanced Usage with Options:

	ext := untable.New(
	    untable.WithTableSelector("table.infobox"),
	    untable.WithThreshold(0.9),
	    untable.WithDeepSignature(true),
	)

	// Extract from a reader (like a file or HTTP response)
	record, err := ext.SingleFromReader(reader)

Features:

- Table selection by CSS selector or XPath, defaulting to the first table
- Nested tables handled by only reading final cells and rows
- Labels with several values collected in document order
- Records that keep their label order and marshal to ordered JSON or YAML
- Charset detection for input read from an io.Reader
*/
package untable
