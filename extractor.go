package pagesift

// NoBodyContent is returned in place of body markup when a document has no
// body element.
const NoBodyContent = "No body content found"

// Body is the body subtree of a page, serialized back to markup.
// A missing body is a normal outcome and is represented by Found == false.
type Body struct {
	// HTML is the serialized body element including its own tag.
	HTML string

	// Found reports whether the document contained a body element.
	Found bool
}

// String returns the body markup, or NoBodyContent if the document had no body.
func (b Body) String() string {
	if !b.Found {
		return NoBodyContent
	}
	return b.HTML
}

// Extractor reduces raw HTML to cleaned visible text.
// Implementations must be lenient: malformed markup is never an error.
type Extractor interface {
	// ExtractBody locates the first body element in html.
	ExtractBody(html string) Body

	// Clean removes script and style elements from fragment and returns the
	// remaining visible text, one trimmed non-empty line per text run, in
	// document order.
	Clean(fragment string) string
}
