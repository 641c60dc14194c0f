package main

import (
	"encoding/json"
	"fmt"

	"github.com/Ryder-MHumble/harvest"
	"github.com/Ryder-MHumble/harvest/yaml"
)

// Run executes the record command.
func (c *RecordCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var cfg harvest.ExtractConfig
	if c.Config != "" {
		f, err := yaml.LoadFile(c.Config)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
			return err
		}
		if c.Source != "" {
			src, err := f.FindSource(c.Source)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
				return err
			}
			cfg = src.ExtractConfig()
		}
	}

	page := &harvest.Page{URL: c.PageURL, Title: c.Title, HTML: html}
	record, err := deps.Processor.Process(deps.Ctx, page, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
