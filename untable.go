package untable

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/untable/internal/dom"
	"github.com/mrjoshuak/untable/internal/errs"
	"github.com/mrjoshuak/untable/internal/table"
)

// Source is the input of an extraction: raw HTML or an already parsed tree.
// When Tree is set, HTML is ignored. If the tree is itself a <table> it is
// used directly, otherwise the table is searched inside it.
type Source struct {
	HTML string
	Tree *html.Node
}

// Extractor defines the interface for table extraction.
// Implementations keep no state between calls and are safe for concurrent use.
type Extractor interface {
	// Single extracts one entity from a label/value table
	Single(src Source) (*Record, error)

	// Multi extracts one record per row from a table whose first row holds labels
	Multi(src Source) ([]*Record, error)

	// SingleFromReader reads HTML from r and extracts one entity
	SingleFromReader(r io.Reader) (*Record, error)

	// MultiFromReader reads HTML from r and extracts one record per row
	MultiFromReader(r io.Reader) ([]*Record, error)
}

// tableExtractor is the concrete implementation of the Extractor interface.
type tableExtractor struct {
	options Options
}

// New creates a new Extractor with the provided options.
//
// Example:
//
//	ext := untable.New(
//	    untable.WithSkip(1),
//	    untable.WithThreshold(0.9),
//	)
//	record, err := ext.Single(untable.Source{HTML: page})
func New(opts ...Option) Extractor {
	return &tableExtractor{options: buildOptions(opts)}
}

func (e *tableExtractor) Single(src Source) (*Record, error) {
	tbl, err := e.locate(src)
	if err != nil {
		return nil, err
	}
	return table.ExtractSingle(tbl, e.options.config())
}

func (e *tableExtractor) Multi(src Source) ([]*Record, error) {
	tbl, err := e.locate(src)
	if err != nil {
		return nil, err
	}
	return table.ExtractMulti(tbl, e.options.config())
}

func (e *tableExtractor) SingleFromReader(r io.Reader) (*Record, error) {
	doc, err := e.parseReader(r)
	if err != nil {
		return nil, err
	}
	return e.Single(Source{Tree: doc})
}

func (e *tableExtractor) MultiFromReader(r io.Reader) ([]*Record, error) {
	doc, err := e.parseReader(r)
	if err != nil {
		return nil, err
	}
	return e.Multi(Source{Tree: doc})
}

// locate validates the options, parses the source if needed and finds the table.
func (e *tableExtractor) locate(src Source) (*html.Node, error) {
	if err := e.options.config().Validate(); err != nil {
		return nil, err
	}

	root := src.Tree
	if root == nil {
		if src.HTML == "" {
			return nil, errs.WrapValidationError(errs.ErrMissingInput, "locate", "")
		}
		doc, err := dom.Parse(src.HTML)
		if err != nil {
			return nil, err
		}
		root = doc
	}

	return dom.LocateTable(root, e.options.query())
}

func (e *tableExtractor) parseReader(r io.Reader) (*html.Node, error) {
	if r == nil {
		return nil, errs.WrapValidationError(errs.ErrMissingInput, "parseReader", "")
	}
	return dom.ParseReader(r, e.options.MaxBufferSize)
}

// ExtractSingle extracts one entity from src.
func ExtractSingle(src Source, opts ...Option) (*Record, error) {
	return New(opts...).Single(src)
}

// ExtractMulti extracts one record per row from src.
func ExtractMulti(src Source, opts ...Option) ([]*Record, error) {
	return New(opts...).Multi(src)
}

// Single extracts one entity from the first table of an HTML string.
func Single(htmlSrc string, opts ...Option) (*Record, error) {
	return ExtractSingle(Source{HTML: htmlSrc}, opts...)
}

// Multi extracts one record per row from the first table of an HTML string.
func Multi(htmlSrc string, opts ...Option) ([]*Record, error) {
	return ExtractMulti(Source{HTML: htmlSrc}, opts...)
}

// SingleFromNode extracts one entity from a parsed tree.
func SingleFromNode(tree *html.Node, opts ...Option) (*Record, error) {
	if tree == nil {
		return nil, errs.WrapValidationError(errs.ErrMissingInput, "SingleFromNode", "")
	}
	return ExtractSingle(Source{Tree: tree}, opts...)
}

// MultiFromNode extracts one record per row from a parsed tree.
func MultiFromNode(tree *html.Node, opts ...Option) ([]*Record, error) {
	if tree == nil {
		return nil, errs.WrapValidationError(errs.ErrMissingInput, "MultiFromNode", "")
	}
	return ExtractMulti(Source{Tree: tree}, opts...)
}

// SingleFromSelection extracts one entity from the first node of a goquery selection.
func SingleFromSelection(sel *goquery.Selection, opts ...Option) (*Record, error) {
	return SingleFromNode(firstNode(sel), opts...)
}

// MultiFromSelection extracts one record per row from the first node of a goquery selection.
func MultiFromSelection(sel *goquery.Selection, opts ...Option) ([]*Record, error) {
	return MultiFromNode(firstNode(sel), opts...)
}

func firstNode(sel *goquery.Selection) *html.Node {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}
