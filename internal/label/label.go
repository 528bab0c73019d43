package label

// Label is either a Point or an Interval. The interface is sealed; use a type
// switch to dispatch on the variant.
type Label interface {
	// Anchor returns the timestamp used when the label is part of a
	// reference set.
	Anchor() float64
	isLabel()
}

// Point is a bare timestamp in seconds.
type Point struct {
	Time float64
}

// Interval is an Audacity label: a start and end time plus free text.
type Interval struct {
	Start float64
	End   float64
	Text  string
}

func (p Point) Anchor() float64    { return p.Time }
func (i Interval) Anchor() float64 { return i.Start }

func (Point) isLabel()    {}
func (Interval) isLabel() {}
