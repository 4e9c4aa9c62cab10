package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pagesift"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	text, err := c.source(deps)
	if err != nil {
		return err
	}

	result, err := deps.Parser.Parse(deps.Ctx, text, c.Description)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, result)
	return nil
}

// source returns the text to parse from the page or file.
func (c *ParseCmd) source(deps *Dependencies) (string, error) {
	switch {
	case c.URL != "" && c.File != "":
		return "", pagesift.Errorf(pagesift.EINVALID, "use either --url or --file, not both")
	case c.URL != "":
		return deps.Scraper.Scrape(deps.Ctx, c.URL)
	case c.File == "-":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case c.File != "":
		b, err := os.ReadFile(c.File)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", pagesift.Errorf(pagesift.EINVALID, "--url or --file required")
	}
}
