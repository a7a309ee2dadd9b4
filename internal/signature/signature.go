// Package signature derives structural fingerprints from table cells and
// scores how alike two fingerprints are.
//
// A signature only looks at tag names and attributes. Text content never
// takes part, which is what lets the single-entity extractor tell a label
// cell from a value cell without knowing anything about the table's schema.
package signature

import (
	"strings"

	"golang.org/x/net/html"
)

// ignoredAttrs holds identity-like attributes that differ from cell to cell
// without saying anything about the cell's role.
var ignoredAttrs = map[string]bool{
	"id":   true,
	"name": true,
}

// Of returns the signature of n. In deep mode the shallow signature of every
// descendant element is appended in document order.
func Of(n *html.Node, deep bool) string {
	if n == nil {
		return ""
	}

	sig := shallow(n)
	if !deep {
		return sig
	}

	var parts []string
	walkElements(n, func(d *html.Node) {
		parts = append(parts, shallow(d))
	})
	return sig + " " + strings.Join(parts, " ")
}

// shallow renders "tag attr value attr value ...". A node without kept
// attributes still gets the separator, so "i" becomes "i ".
func shallow(n *html.Node) string {
	attrs := make([]string, 0, len(n.Attr))
	for _, attr := range n.Attr {
		if ignoredAttrs[attr.Key] {
			continue
		}
		attrs = append(attrs, attr.Key+" "+attr.Val)
	}
	return n.Data + " " + strings.Join(attrs, " ")
}

// walkElements calls fn for every element below n in document order.
func walkElements(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			fn(c)
		}
		walkElements(c, fn)
	}
}
