package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Ryder-MHumble/harvest/goquery"
	"github.com/Ryder-MHumble/harvest/htmltomarkdown"
	"github.com/Ryder-MHumble/harvest/process"
	harvestslog "github.com/Ryder-MHumble/harvest/slog"
	"github.com/Ryder-MHumble/harvest/trafilatura"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("harvest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'harvest --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Diagnostics go to stderr so piped output stays clean.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire core services into dependencies. Attachment extraction is
	// optional enrichment, so it carries the logging decorator that
	// converts failures into the none result.
	deps.Sanitizer = goquery.NewSanitizer()
	deps.Images = goquery.NewImageExtractor()
	deps.Attachments = harvestslog.NewLoggingAttachmentExtractor(goquery.NewAttachmentExtractor(), logger)
	deps.Processor = &process.Processor{
		Extractor:   trafilatura.NewExtractor(),
		Sanitizer:   deps.Sanitizer,
		Images:      deps.Images,
		Attachments: deps.Attachments,
		Converter:   htmltomarkdown.NewConverter(),
	}

	return kongCtx.Run(deps)
}

// readInput reads the named HTML file, or stdin when file is "-".
func readInput(deps *Dependencies, file string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", file, err)
	}
	return string(data), nil
}
