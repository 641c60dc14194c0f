package main

import (
	"context"
	"io"

	"github.com/Ryder-MHumble/harvest"
	"github.com/Ryder-MHumble/harvest/process"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Sanitizer   harvest.Sanitizer
	Images      harvest.ImageExtractor
	Attachments harvest.AttachmentExtractor
	Processor   *process.Processor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Sanitize SanitizeCmd `cmd:"" help:"Sanitize an HTML file to the content-safe subset"`
	Images   ImagesCmd   `cmd:"" help:"Extract image descriptors from an HTML file"`
	Attach   AttachCmd   `cmd:"" help:"Locate the official document (PDF) link in an HTML file"`
	Record   RecordCmd   `cmd:"" help:"Produce a full extraction record from an HTML file"`
}

// SanitizeCmd is the "sanitize" subcommand.
type SanitizeCmd struct {
	File    string `arg:"" help:"HTML file to read, or - for stdin"`
	BaseURL string `short:"b" name:"base-url" help:"Base URL for resolving relative references"`
}

// ImagesCmd is the "images" subcommand.
type ImagesCmd struct {
	File    string `arg:"" help:"HTML file to read, or - for stdin"`
	BaseURL string `short:"b" name:"base-url" help:"Base URL for resolving relative references"`
}

// AttachCmd is the "attach" subcommand.
type AttachCmd struct {
	File     string `arg:"" help:"HTML file to read, or - for stdin"`
	PageURL  string `short:"u" name:"page-url" required:"" help:"Final page URL used to resolve candidate links"`
	Selector string `short:"s" help:"CSS selector for the document link (heuristic when omitted)"`
	Title    string `help:"Article title (reserved, currently unused)"`
}

// RecordCmd is the "record" subcommand.
type RecordCmd struct {
	File    string `arg:"" help:"HTML file to read, or - for stdin"`
	PageURL string `short:"u" name:"page-url" required:"" help:"Final page URL of the fetched document"`
	Title   string `help:"Article title supplied by the crawler"`
	Config  string `short:"c" help:"Sources YAML file with per-source extraction options"`
	Source  string `help:"Source name to look up in the config file"`
}
