package dom

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/untable/internal/errs"
)

var tableTag = Tags("table")

// Query narrows down which table of a document is extracted.
// At most one of Selector (CSS) and XPath may be set.
type Query struct {
	Selector string
	XPath    string
}

// LocateTable returns the table to extract from root.
//
// A root that already is a table is used as is. Otherwise the first node
// matched by the query is taken, or the first table in document order when
// the query is empty. A match that is not itself a table resolves to the
// first table inside it.
func LocateTable(root *html.Node, q Query) (*html.Node, error) {
	if root == nil {
		return nil, errs.WrapValidationError(errs.ErrMissingInput, "LocateTable", "")
	}
	if IsTable(root) {
		return root, nil
	}

	match, err := queryFirst(root, q)
	if err != nil {
		return nil, err
	}
	if match != nil && !IsTable(match) {
		match = firstTable(match)
	}
	if match == nil {
		return nil, errs.WrapLocateError(errs.ErrTableNotFound, "LocateTable", "")
	}
	return match, nil
}

func queryFirst(root *html.Node, q Query) (*html.Node, error) {
	switch {
	case q.Selector != "" && q.XPath != "":
		return nil, errs.WrapValidationError(errs.ErrInvalidArgument, "LocateTable", "selector and xpath are mutually exclusive")

	case q.XPath != "":
		n, err := htmlquery.Query(root, q.XPath)
		if err != nil {
			return nil, errs.WrapValidationError(
				fmt.Errorf("%w: xpath %q: %v", errs.ErrInvalidArgument, q.XPath, err), "LocateTable", "")
		}
		return n, nil

	case q.Selector != "":
		m, err := cascadia.Compile(q.Selector)
		if err != nil {
			return nil, errs.WrapValidationError(
				fmt.Errorf("%w: selector %q: %v", errs.ErrInvalidArgument, q.Selector, err), "LocateTable", "")
		}
		sel := goquery.NewDocumentFromNode(root).FindMatcher(m)
		if sel.Length() == 0 {
			return nil, nil
		}
		return sel.Get(0), nil

	default:
		return firstTable(root), nil
	}
}

// firstTable returns the first table below n in document order.
func firstTable(n *html.Node) *html.Node {
	sel := goquery.NewDocumentFromNode(n).FindMatcher(tableTag)
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}
