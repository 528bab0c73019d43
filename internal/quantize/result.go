package quantize

import "github.com/specialistvlad/labelquant/internal/label"

// Result is the outcome of quantizing one target label: either a
// PointResult or an IntervalResult.
type Result interface {
	// Label returns the quantized label.
	Label() label.Label
	// Adjustments returns the signed shifts applied, one per quantized value.
	Adjustments() []float64
	isResult()
}

// PointResult is the quantized form of a label.Point.
type PointResult struct {
	Nearest    float64
	Adjustment float64
}

// IntervalResult is the quantized form of a label.Interval.
type IntervalResult struct {
	Start           float64
	End             float64
	Text            string
	StartAdjustment float64
	EndAdjustment   float64
}

func (r PointResult) Label() label.Label { return label.Point{Time: r.Nearest} }

func (r PointResult) Adjustments() []float64 { return []float64{r.Adjustment} }

func (r IntervalResult) Label() label.Label {
	return label.Interval{Start: r.Start, End: r.End, Text: r.Text}
}

func (r IntervalResult) Adjustments() []float64 {
	return []float64{r.StartAdjustment, r.EndAdjustment}
}

func (PointResult) isResult()    {}
func (IntervalResult) isResult() {}
