// Package display writes search results to the terminal or a pipe.
//
// Results are plain paths, one per line, with no decoration. When the
// destination is an interactive terminal every line is flushed as soon as it
// is written so matches appear while the walk is still running; otherwise
// output is block-buffered and flushed once at the end.
package display

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// PathWriter emits one path per line.
type PathWriter struct {
	buf       *bufio.Writer
	lineFlush bool
}

// NewPathWriter wraps out, choosing line flushing when out is a terminal.
func NewPathWriter(out io.Writer) *PathWriter {
	return &PathWriter{
		buf:       bufio.NewWriter(out),
		lineFlush: IsTerminal(out),
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WritePath writes path followed by a newline.
func (p *PathWriter) WritePath(path string) error {
	if _, err := p.buf.WriteString(path); err != nil {
		return err
	}
	if err := p.buf.WriteByte('\n'); err != nil {
		return err
	}
	if p.lineFlush {
		return p.buf.Flush()
	}
	return nil
}

// Flush writes any buffered paths to the underlying writer.
func (p *PathWriter) Flush() error {
	return p.buf.Flush()
}
