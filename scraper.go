package pagesift

import "context"

// Scraper turns a URL into cleaned visible text.
type Scraper struct {
	Fetcher   Fetcher
	Extractor Extractor
}

// Scrape fetches url and returns its cleaned body text.
// Fetch errors are returned unchanged. A page without a body yields
// NoBodyContent rather than an error.
func (s *Scraper) Scrape(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", Errorf(EINVALID, "url required")
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	body := s.Extractor.ExtractBody(html)
	return s.Extractor.Clean(body.String()), nil
}

// Parser extracts described information from cleaned text.
type Parser struct {
	Aggregator *Aggregator

	// MaxLength is the segment length. Zero means DefaultMaxLength.
	MaxLength int
}

// Parse splits text into segments and runs the aggregator over them.
func (p *Parser) Parse(ctx context.Context, text, description string) (string, error) {
	maxLength := p.MaxLength
	if maxLength == 0 {
		maxLength = DefaultMaxLength
	}

	segments, err := Split(text, maxLength)
	if err != nil {
		return "", err
	}

	return p.Aggregator.Run(ctx, segments, description)
}
