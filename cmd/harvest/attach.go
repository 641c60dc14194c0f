package main

import (
	"fmt"

	"github.com/Ryder-MHumble/harvest"
)

// Run executes the attach command.
func (c *AttachCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	cfg := harvest.ExtractConfig{PDFSelector: c.Selector}
	url, err := deps.Attachments.ExtractAttachment(html, c.PageURL, c.Title, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	if url == "" {
		fmt.Fprintln(deps.Stderr, "no attachment found")
		return nil
	}
	fmt.Fprintln(deps.Stdout, url)
	return nil
}
