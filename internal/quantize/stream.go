package quantize

import "github.com/specialistvlad/labelquant/internal/label"

// Stream yields one Result per target label, in target order.
type Stream struct {
	ref    *Reference
	target label.Source
	cur    Result
	err    error
}

// Quantize reads the whole reference source, then returns a lazy stream over
// target. An empty reference is only an error once a target label is read.
func Quantize(reference, target label.Source) (*Stream, error) {
	ref, err := Collect(reference)
	if err != nil {
		return nil, err
	}
	return NewStream(ref, target), nil
}

// NewStream quantizes target against an existing reference set.
func NewStream(ref *Reference, target label.Source) *Stream {
	return &Stream{ref: ref, target: target}
}

// Next quantizes the next target label.
func (s *Stream) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.target.Next() {
		s.err = s.target.Err()
		s.cur = nil
		return false
	}
	res, err := s.ref.Adjust(s.target.Label())
	if err != nil {
		s.err = err
		s.cur = nil
		return false
	}
	s.cur = res
	return true
}

// Result returns the result produced by the last successful Next.
func (s *Stream) Result() Result {
	return s.cur
}

// Err returns the error that ended the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// Reference returns the reference set the stream quantizes against.
func (s *Stream) Reference() *Reference {
	return s.ref
}

// All quantizes every target label and returns the results.
func All(reference, target label.Source) ([]Result, error) {
	s, err := Quantize(reference, target)
	if err != nil {
		return nil, err
	}
	var out []Result
	for s.Next() {
		out = append(out, s.Result())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
