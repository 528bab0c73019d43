package label

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single label line.
const maxLineSize = 1 << 20

// Source is a forward-only stream of labels. Next advances the stream and
// reports whether a label is available; after it returns false, Err reports
// the error that stopped the stream, if any.
type Source interface {
	Next() bool
	Label() Label
	Err() error
}

// Reader decodes labels lazily, one line per call to Next. It stops at the
// first malformed line.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	cur     Label
	err     error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: sc}
}

// Next decodes the next line.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.scanner.Scan() {
		r.err = r.scanner.Err()
		r.cur = nil
		return false
	}
	r.line++

	l, err := ParseLine(r.scanner.Text())
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Line = r.line
		}
		r.err = err
		r.cur = nil
		return false
	}
	r.cur = l
	return true
}

// Label returns the label decoded by the last successful call to Next.
func (r *Reader) Label() Label {
	return r.cur
}

// Err returns the first error encountered, or nil at a clean end of input.
func (r *Reader) Err() error {
	return r.err
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

// File is a Reader bound to an open file. The file is closed as soon as the
// stream ends, whether cleanly or on error, and Close may be called again
// at any time.
type File struct {
	*Reader
	path string
	f    *os.File
}

// Open opens path for lazy decoding.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{Reader: NewReader(f), path: path, f: f}, nil
}

// Next decodes the next line and releases the file at end of stream.
func (f *File) Next() bool {
	if f.Reader.Next() {
		return true
	}
	if cerr := f.Close(); cerr != nil && f.Reader.err == nil {
		f.Reader.err = cerr
	}
	return false
}

// Err returns the stream error annotated with the file path.
func (f *File) Err() error {
	if err := f.Reader.Err(); err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	return nil
}

// Path returns the file path the stream reads from.
func (f *File) Path() string {
	return f.path
}

// Close releases the underlying file.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

// sliceSource serves labels from memory.
type sliceSource struct {
	labels []Label
	pos    int
}

// Slice returns a Source over an in-memory list of labels.
func Slice(labels ...Label) Source {
	return &sliceSource{labels: labels, pos: -1}
}

func (s *sliceSource) Next() bool {
	if s.pos+1 >= len(s.labels) {
		s.pos = len(s.labels)
		return false
	}
	s.pos++
	return true
}

func (s *sliceSource) Label() Label {
	if s.pos < 0 || s.pos >= len(s.labels) {
		return nil
	}
	return s.labels[s.pos]
}

func (s *sliceSource) Err() error { return nil }
