// Package quantize snaps target labels onto the nearest timestamps of a
// reference set.
//
// The reference set is built from the anchor of each reference label (the
// timestamp of a Point, the start of an Interval). Every target value is
// replaced by the closest anchor; when several anchors are equally close the
// one that appeared first in the reference wins.
package quantize

import (
	"errors"
	"math"

	"github.com/specialistvlad/labelquant/internal/label"
)

// ErrEmptyReference is returned when a target value has to be quantized
// against a reference set with no entries.
var ErrEmptyReference = errors.New("reference set is empty")

// Reference is an immutable, ordered set of anchor timestamps.
type Reference struct {
	anchors []float64
}

// NewReference builds a reference set from anchors, keeping their order
// and any duplicates.
func NewReference(anchors ...float64) *Reference {
	return &Reference{anchors: append([]float64(nil), anchors...)}
}

// Collect drains src into a reference set.
func Collect(src label.Source) (*Reference, error) {
	ref := &Reference{}
	for src.Next() {
		ref.anchors = append(ref.anchors, src.Label().Anchor())
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return ref, nil
}

// Len returns the number of anchors, duplicates included.
func (r *Reference) Len() int {
	return len(r.anchors)
}

// Anchors returns a copy of the anchors in reference order.
func (r *Reference) Anchors() []float64 {
	return append([]float64(nil), r.anchors...)
}

// Nearest returns the anchor closest to t. Distances are compared with a
// strict less-than so the earliest of several equidistant anchors is kept.
func (r *Reference) Nearest(t float64) (float64, error) {
	if len(r.anchors) == 0 {
		return 0, ErrEmptyReference
	}
	best := r.anchors[0]
	bestDist := math.Abs(best - t)
	for _, a := range r.anchors[1:] {
		if d := math.Abs(a - t); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best, nil
}

// Adjust quantizes a single target label. The start and end of an Interval
// are snapped independently.
func (r *Reference) Adjust(l label.Label) (Result, error) {
	switch l := l.(type) {
	case label.Point:
		nearest, err := r.Nearest(l.Time)
		if err != nil {
			return nil, err
		}
		return PointResult{Nearest: nearest, Adjustment: nearest - l.Time}, nil
	case label.Interval:
		start, err := r.Nearest(l.Start)
		if err != nil {
			return nil, err
		}
		end, err := r.Nearest(l.End)
		if err != nil {
			return nil, err
		}
		return IntervalResult{
			Start:           start,
			End:             end,
			Text:            l.Text,
			StartAdjustment: start - l.Start,
			EndAdjustment:   end - l.End,
		}, nil
	default:
		return nil, errors.New("quantize: unsupported label variant")
	}
}
