// Command pandochtml converts Markdown or pandoc JSON to HTML.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	pandochtml "github.com/growler/go-pandoc-html"
)

var CLI struct {
	Input     string `arg:"" optional:"" help:"Input file (default: stdin)"`
	Output    string `short:"o" help:"Output file (default: stdout)"`
	From      string `short:"f" default:"markdown" enum:"markdown,json,pandoc" help:"Input kind: markdown (built-in parser), json (pandoc -t json output), pandoc (run the pandoc executable)"`
	Format    string `help:"Input format passed to pandoc with --from=pandoc" default:"markdown"`
	Pandoc    string `help:"Path to the pandoc executable" type:"path"`
	UnsafeRaw bool   `name:"unsafe-raw" help:"Pass raw HTML content through unescaped"`
	Verbose   bool   `short:"v" help:"Enable verbose logging"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("pandochtml"),
		kong.Description("Render Markdown or pandoc JSON documents to HTML."))

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := run(); err != nil {
		slog.Error("Conversion failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	doc, err := load()
	if err != nil {
		return err
	}
	slog.Debug("Document loaded", "blocks", len(doc.Blocks))

	var cfg pandochtml.Config[pandochtml.HTML]
	if CLI.UnsafeRaw {
		cfg.Raw = passthroughRaw
	}
	out := pandochtml.RenderHTML(cfg, doc)

	w := io.Writer(os.Stdout)
	if CLI.Output != "" {
		f, err := os.Create(CLI.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.WriteString(w, out.String()+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func load() (*pandochtml.Document, error) {
	in := io.Reader(os.Stdin)
	if CLI.Input != "" {
		f, err := os.Open(CLI.Input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	switch CLI.From {
	case "json":
		return pandochtml.ReadDocument(in)
	case "pandoc":
		conv := &pandochtml.Converter{Path: CLI.Pandoc, Format: CLI.Format}
		return conv.Read(in)
	default:
		source, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return pandochtml.FromMarkdown(source)
	}
}

// passthroughRaw emits raw HTML content verbatim and still drops every
// other raw format.
func passthroughRaw(raw pandochtml.RawContent) pandochtml.HTML {
	switch raw.Format {
	case "html", "html5", "html4":
		return pandochtml.HTMLBackend{}.Unsafe(raw.Text)
	}
	return ""
}
