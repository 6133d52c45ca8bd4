// Package input provides forward-only line readers over files and standard
// input, with transparent decompression of gzip sources.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/pgzip"
)

// StdinPath is the sentinel positional argument meaning "read standard input".
const StdinPath = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// Line is a single line of text tagged with its 1-based arrival index within
// the stream. Trailing carriage return and line feed characters have already
// been trimmed from Text.
type Line struct {
	Index int64
	Text  string
}

// Reader yields lines from a source in arrival order. It is forward-only and
// not restartable; once Next returns io.EOF the stream is exhausted.
type Reader interface {
	// Next returns the next line, or io.EOF at the end of the stream.
	Next() (Line, error)

	// Close releases the underlying source.
	Close() error
}

// Option configures a Reader constructor.
type Option func(*lineReader)

// WithMaxLineLength bounds the size of a single line in bytes. Lines
// exceeding the bound surface bufio.ErrTooLong from Next.
func WithMaxLineLength(n int) Option {
	return func(r *lineReader) {
		r.maxLineLength = n
	}
}

type lineReader struct {
	scanner       *bufio.Scanner
	closer        io.Closer
	index         int64
	maxLineLength int
}

// NewReader wraps an arbitrary stream of newline-delimited text.
func NewReader(r io.Reader, opts ...Option) Reader {
	lr := &lineReader{
		maxLineLength: bufio.MaxScanTokenSize,
	}
	for _, opt := range opts {
		opt(lr)
	}
	lr.scanner = bufio.NewScanner(r)
	if lr.maxLineLength != bufio.MaxScanTokenSize {
		lr.scanner.Buffer(nil, lr.maxLineLength)
	}
	return lr
}

// Open returns a Reader over the file at path, or over standard input when
// path is "-". Files beginning with the gzip magic header are decompressed
// on the fly.
func Open(path string, opts ...Option) (Reader, error) {
	if path == StdinPath {
		return NewReader(os.Stdin, opts...), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %v: %w", path, err)
	}

	br := bufio.NewReader(f)
	var src io.Reader = br
	closer := multiCloser{f}
	if magic, _ := br.Peek(len(gzipMagic)); bytes.Equal(magic, gzipMagic) {
		gr, err := pgzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip input %v: %w", path, err)
		}
		src = gr
		closer = multiCloser{gr, f}
	}

	lr := NewReader(src, opts...).(*lineReader)
	lr.closer = closer
	return lr, nil
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var firstErr error
	for _, c := range m {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *lineReader) Next() (Line, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Line{}, err
		}
		return Line{}, io.EOF
	}
	r.index++
	return Line{
		Index: r.index,
		Text:  trimLineEnding(r.scanner.Text()),
	}, nil
}

func (r *lineReader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// trimLineEnding strips trailing carriage returns left behind by CRLF input.
// The scanner has already consumed the line feed itself.
func trimLineEnding(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\r' || s[len(s)-1] == '\n') {
		s = s[:len(s)-1]
	}
	return s
}
