package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ppiankov/lacph/internal/model"
	"golang.org/x/net/html"
)

var (
	// First date in a release is its publication date, e.g. "April 04, 2020"
	reReleaseDate = regexp.MustCompile(`[A-Z][a-z]+ \d{1,2}, 20\d{2}`)
	reSpace       = regexp.MustCompile(`\s+`)
)

const releaseDateLayout = "January 2, 2006"

// blockElements get a line break around their text so adjacent list items
// never run together.
var blockElements = map[string]bool{
	"address": true, "article": true, "blockquote": true, "br": true, "dd": true,
	"div": true, "dl": true, "dt": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "hr": true, "li": true, "ol": true,
	"p": true, "section": true, "table": true, "td": true, "th": true,
	"tr": true, "ul": true,
}

// Document is a parsed press release
type Document struct {
	root *goquery.Document
	body *goquery.Selection // statistics container, or the whole document
	date model.Date
}

// ParseDocument parses a press release and locates its publication date.
// wholeDocumentDates lists releases whose broken markup defeats the
// statistics container lookup.
func ParseDocument(raw []byte, wholeDocumentDates []model.Date) (*Document, error) {
	root, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	date, err := findReleaseDate(Text(root.Selection))
	if err != nil {
		return nil, err
	}

	doc := &Document{root: root, body: root.Selection, date: date}
	if !containsDate(wholeDocumentDates, date) {
		if container := root.Find("div.container.p-4").First(); container.Length() > 0 {
			doc.body = container
		}
	}
	return doc, nil
}

// Date returns the publication date printed in the release
func (d *Document) Date() model.Date {
	return d.date
}

// Body returns the statistics container
func (d *Document) Body() *goquery.Selection {
	return d.body
}

func findReleaseDate(text string) (model.Date, error) {
	for _, match := range reReleaseDate.FindAllString(text, -1) {
		// "Cases 12, 2020" has the shape of a date but not a month name.
		t, err := time.Parse(releaseDateLayout, match)
		if err == nil {
			return model.DateOf(t), nil
		}
	}
	return model.Date{}, ErrNoDate
}

func containsDate(dates []model.Date, d model.Date) bool {
	for _, candidate := range dates {
		if candidate == d {
			return true
		}
	}
	return false
}

// Text renders the text of a selection, breaking lines at block elements and
// skipping scripts and styles.
func Text(sel *goquery.Selection) string {
	return nodeText(sel.Nodes...)
}

func nodeText(nodes ...*html.Node) string {
	var buf strings.Builder
	for _, n := range nodes {
		writeText(&buf, n)
	}
	return buf.String()
}

func writeText(buf *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	case html.CommentNode:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		buf.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(buf, c)
	}
	if block {
		buf.WriteByte('\n')
	}
}

// labelText is the whitespace-normalized text of a bold label
func labelText(sel *goquery.Selection) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(sel.Text(), " "))
}
