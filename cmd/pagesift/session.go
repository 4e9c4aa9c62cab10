package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/pagesift"
)

// Session commands. Any other input line is a parse description.
const (
	sessionScrape = ":scrape"
	sessionText   = ":text"
	sessionQuit   = ":quit"
)

// Run executes the session command. Errors from individual lines are
// printed and the session continues; only reading stdin can end it early.
func (c *SessionCmd) Run(deps *Dependencies) error {
	session := pagesift.NewSession(deps.Scraper, deps.Parser, deps.Logger)

	if c.URL != "" {
		scrape(deps, session, c.URL)
	}

	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == sessionQuit:
			return nil
		case line == sessionText:
			if _, text, ok := session.Text(); ok {
				fmt.Fprintln(deps.Stdout, text)
			} else {
				fmt.Fprintln(deps.Stderr, "error: nothing scraped yet")
			}
		case strings.HasPrefix(line, sessionScrape):
			scrape(deps, session, strings.TrimSpace(strings.TrimPrefix(line, sessionScrape)))
		default:
			result, err := session.Parse(deps.Ctx, line)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
				continue
			}
			fmt.Fprintln(deps.Stdout, result)
		}
	}
	return scanner.Err()
}

func scrape(deps *Dependencies, session *pagesift.Session, url string) {
	text, err := session.Scrape(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return
	}
	fmt.Fprintf(deps.Stderr, "scraped %s (%d characters)\n", url, len([]rune(text)))
}
