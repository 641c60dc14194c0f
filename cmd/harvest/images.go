package main

import (
	"encoding/json"
	"fmt"

	"github.com/Ryder-MHumble/harvest"
)

// Run executes the images command.
func (c *ImagesCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	images, err := deps.Images.ExtractImages(html, c.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}
	if images == nil {
		images = []harvest.Image{}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(images)
}
