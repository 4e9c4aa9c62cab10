package mock

import "github.com/fwojciec/pagesift"

var _ pagesift.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagesift.Extractor.
type Extractor struct {
	ExtractBodyFn func(html string) pagesift.Body
	CleanFn       func(fragment string) string
}

func (e *Extractor) ExtractBody(html string) pagesift.Body {
	return e.ExtractBodyFn(html)
}

func (e *Extractor) Clean(fragment string) string {
	return e.CleanFn(fragment)
}
