package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// LayoutMode selects how a section's list is found relative to its label
type LayoutMode int

const (
	// Nested: the label sits inside a block that also holds the list
	Nested LayoutMode = iota
	// Flat: the list is the label's next sibling
	Flat
)

func (m LayoutMode) String() string {
	switch m {
	case Nested:
		return "nested"
	case Flat:
		return "flat"
	default:
		return "unknown"
	}
}

const labelSelector = "b, strong"

// findLabel returns the first bold label whose text starts with header
func findLabel(body *goquery.Selection, header *regexp.Regexp) *goquery.Selection {
	var found *goquery.Selection
	body.Find(labelSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if loc := header.FindStringIndex(labelText(sel)); loc != nil && loc[0] == 0 {
			found = sel
			return false
		}
		return true
	})
	return found
}

// Extract returns the text of the section introduced by the label matching
// header. An empty string means the section is absent.
func Extract(doc *Document, header *regexp.Regexp, mode LayoutMode) string {
	label := findLabel(doc.Body(), header)
	if label == nil {
		return ""
	}

	switch mode {
	case Nested:
		if list := nestedList(label); list != nil {
			return Text(list)
		}
		return ""
	case Flat:
		if n := nextNonBlank(label.Nodes[0]); n != nil {
			return nodeText(n)
		}
		return ""
	default:
		return ""
	}
}

// nestedList finds the first list after the label in its enclosing block. The
// HTML5 parser closes a <p> when a <ul> opens, so the list may also follow the
// block as a sibling. Either search stops at the next label.
func nestedList(label *goquery.Selection) *goquery.Selection {
	if list, done := followingList(label.Next()); done {
		return list
	}
	list, _ := followingList(label.Parent().Next())
	return list
}

// followingList walks sib and its later siblings for a list. done is true
// once a list or another label was reached.
func followingList(sib *goquery.Selection) (list *goquery.Selection, done bool) {
	for ; sib.Length() > 0; sib = sib.Next() {
		if goquery.NodeName(sib) == "ul" {
			return sib, true
		}
		if sib.Is(labelSelector) || sib.Find(labelSelector).Length() > 0 {
			return nil, true
		}
		if found := sib.Find("ul").First(); found.Length() > 0 {
			return found, true
		}
	}
	return nil, false
}

// nextNonBlank skips whitespace-only text, comments and line breaks between
// siblings
func nextNonBlank(n *html.Node) *html.Node {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		switch sib.Type {
		case html.CommentNode:
			continue
		case html.ElementNode:
			if sib.Data == "br" {
				continue
			}
		case html.TextNode:
			if strings.TrimSpace(sib.Data) == "" {
				continue
			}
		}
		return sib
	}
	return nil
}

// WholeText returns the text of the entire statistics container
func WholeText(doc *Document) string {
	return Text(doc.Body())
}

// HeaderNumeral returns the number embedded in the first label matching
// header, taken from its first capture group. The second result is false when
// no label matches; a nil pointer with true means the release printed the
// missing-value sentinel.
func HeaderNumeral(doc *Document, header *regexp.Regexp, sentinel string) (*int, bool) {
	var (
		value *int
		found bool
	)
	doc.Body().Find(labelSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		m := header.FindStringSubmatch(labelText(sel))
		if len(m) < 2 {
			return true
		}
		found = true
		if m[1] != sentinel {
			if n, ok := parseNumeral(m[1]); ok {
				value = &n
			}
		}
		return false
	})
	return value, found
}
