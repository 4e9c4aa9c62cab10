package pagesift

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Session holds the cleaned text of the last scraped page so that it can be
// parsed any number of times. Each successful scrape replaces the text.
//
// Session is safe for concurrent use.
type Session struct {
	ID      string
	Scraper *Scraper
	Parser  *Parser
	Logger  *slog.Logger

	mu   sync.RWMutex
	url  string
	text string
	ok   bool
}

// NewSession returns a Session with a fresh ID.
func NewSession(scraper *Scraper, parser *Parser, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		ID:      uuid.NewString(),
		Scraper: scraper,
		Parser:  parser,
		Logger:  logger,
	}
}

// Scrape fetches url and stores its cleaned text in the session.
// On failure the previously stored text is kept.
func (s *Session) Scrape(ctx context.Context, url string) (string, error) {
	text, err := s.Scraper.Scrape(ctx, url)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.url, s.text, s.ok = url, text, true
	s.mu.Unlock()

	s.Logger.Debug("session scrape",
		"session", s.ID,
		"url", url,
		"chars", len(text),
		"digest", digest(text),
	)
	return text, nil
}

// Parse runs the parser over the stored text.
// Returns ENOTFOUND if nothing has been scraped yet.
func (s *Session) Parse(ctx context.Context, description string) (string, error) {
	s.mu.RLock()
	url, text, ok := s.url, s.text, s.ok
	s.mu.RUnlock()

	if !ok {
		return "", Errorf(ENOTFOUND, "nothing scraped yet")
	}

	s.Logger.Debug("session parse",
		"session", s.ID,
		"url", url,
		"digest", digest(text),
	)
	return s.Parser.Parse(ctx, text, description)
}

// Text returns the stored text and the URL it came from.
func (s *Session) Text() (url, text string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url, s.text, s.ok
}

func digest(text string) string {
	return strconv.FormatUint(xxhash.Sum64String(text), 16)
}
