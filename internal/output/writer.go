// Package output writes selected lines to a sink, one per line.
package output

import (
	"bufio"
	"io"

	"github.com/warpstreamlabs/linesample/internal/input"
)

// Writer emits lines to an underlying stream. Writes are buffered; callers
// must Flush once the sampling pass completes.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w in a buffered line writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits the text of a line followed by a line feed.
func (w *Writer) Write(line input.Line) error {
	if _, err := w.w.WriteString(line.Text); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush forces any buffered lines out to the underlying stream.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
