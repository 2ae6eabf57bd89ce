package pandochtml

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Converter parses documents by running a pandoc executable with
// "-t json" and decoding its output. It supports any input format the
// installed pandoc does.
type Converter struct {
	Path   string   // Path to pandoc executable; looked up when empty
	Format string   // Input format, e.g. "markdown" or "rst"
	Ext    []string // Format extensions, each starting with '+' or '-'
	Opts   []string // Additional pandoc options
}

func (c *Converter) findPandoc() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	if this, err := os.Executable(); err == nil {
		pandoc, err := exec.LookPath(filepath.Join(filepath.Dir(this), "pandoc"))
		if err == nil || errors.Is(err, exec.ErrDot) {
			c.Path = pandoc
			return c.Path, nil
		}
	}
	if pandoc, err := exec.LookPath("pandoc"); err == nil {
		c.Path = pandoc
		return c.Path, nil
	}
	return "", exec.ErrNotFound
}

// Read parses a document from r.
func (c *Converter) Read(r io.Reader) (*Document, error) {
	pandoc, err := c.findPandoc()
	if err != nil {
		return nil, err
	}
	format := c.Format
	if format == "" {
		format = "markdown"
	}
	var cmd = &exec.Cmd{
		Path: pandoc,
		Args: append([]string{
			"pandoc",
			"-tjson",
			strings.Join(append([]string{"-f", format}, c.Ext...), ""),
		}, c.Opts...),
		Stdin:  r,
		Stderr: os.Stderr,
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	doc, err := ReadDocument(out)
	if err != nil {
		_, _ = io.Copy(io.Discard, out)
		_ = cmd.Wait()
		return nil, err
	}
	if err = cmd.Wait(); err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadFile parses a document from the named file.
func (c *Converter) ReadFile(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return c.Read(f)
}
