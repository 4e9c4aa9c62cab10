package main

import "fmt"

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	text, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
