// Package goquery implements pagesift.Extractor on top of goquery and the
// golang.org/x/net/html parser.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesift"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagesift.Extractor at compile time.
var _ pagesift.Extractor = (*Extractor)(nil)

// Extractor reduces HTML to visible text.
// The HTML5 parsing algorithm recovers from any malformed input, so
// Extractor never fails.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBody returns the first body element serialized with its own tag.
//
// The HTML5 parser synthesizes a body for every document, so presence is
// decided by looking for an explicit body start tag in the token stream.
func (e *Extractor) ExtractBody(rawHTML string) pagesift.Body {
	if !hasBodyTag(rawHTML) {
		return pagesift.Body{}
	}

	doc, err := parse(rawHTML)
	if err != nil {
		return pagesift.Body{}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return pagesift.Body{}
	}

	out, err := goquery.OuterHtml(body)
	if err != nil {
		return pagesift.Body{}
	}

	return pagesift.Body{HTML: out, Found: true}
}

// Clean strips script and style elements and returns the remaining text,
// one trimmed line per text run with blank lines dropped.
func (e *Extractor) Clean(fragment string) string {
	doc, err := parse(fragment)
	if err != nil {
		return cleanLines(fragment)
	}

	doc.Find("script, style").Remove()

	var texts []string
	for _, n := range doc.Nodes {
		texts = appendText(texts, n)
	}

	return cleanLines(strings.Join(texts, "\n"))
}

// parse builds a document with scripting disabled so that noscript content
// is parsed as markup instead of raw text.
func parse(s string) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(strings.NewReader(s), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

// hasBodyTag reports whether the markup contains a body start tag outside
// raw text elements such as script.
func hasBodyTag(s string) bool {
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "body" {
				return true
			}
		}
	}
}

// appendText collects text nodes under n in document order.
// Comments and doctypes are not text.
func appendText(texts []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		return append(texts, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		texts = appendText(texts, c)
	}
	return texts
}

// cleanLines trims every line and drops the blank ones.
func cleanLines(s string) string {
	lines := strings.FieldsFunc(s, isLineBreak)
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
