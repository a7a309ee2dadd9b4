// Package dom holds the tree plumbing used by the extractors: parsing, table
// lookup and the search for final (innermost) elements of a tag set.
package dom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// TagSet is a set of tag names used as a single element predicate.
// It satisfies goquery.Matcher, so it can drive Selection.FindMatcher directly.
type TagSet map[string]struct{}

// Tags builds a TagSet from the given lowercase tag names.
func Tags(names ...string) TagSet {
	set := make(TagSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Match reports whether n is an element whose tag is in the set.
func (t TagSet) Match(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	_, ok := t[n.Data]
	return ok
}

// MatchAll returns n and its descendants that match, in document order.
func (t TagSet) MatchAll(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if t.Match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Filter keeps the nodes that match.
func (t TagSet) Filter(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if t.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

// FinalElements returns every descendant of root whose tag is in tags and
// that has no descendant whose tag is in tags, in document order.
//
// Markup that nests a cell inside a cell yields only the inner one.
func FinalElements(root *goquery.Selection, tags TagSet) *goquery.Selection {
	return root.FindMatcher(tags).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.FindMatcher(tags).Length() == 0
	})
}

// IsTable reports whether n is a <table> element.
func IsTable(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == "table"
}
