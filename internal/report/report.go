// Package report renders quantization results and accumulates the
// adjustment statistics printed at the end of a run.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/specialistvlad/labelquant/internal/label"
	"github.com/specialistvlad/labelquant/internal/quantize"
)

// Line renders a result in the shape of its input line.
func Line(r quantize.Result) string {
	return label.Format(r.Label())
}

// Render joins lines into a document with a trailing newline. No lines
// render as an empty document.
func Render(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Summary accumulates absolute adjustments. Interval results contribute two
// values, point results one.
type Summary struct {
	Total float64
	Count int
}

// Add records every adjustment carried by r.
func (s *Summary) Add(r quantize.Result) {
	for _, adj := range r.Adjustments() {
		s.Total += math.Abs(adj)
		s.Count++
	}
}

// Average returns the mean absolute adjustment, or 0 when nothing was added.
func (s Summary) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Total / float64(s.Count)
}

// WriteDiagnostic writes the verbose per-entry lines for r.
func WriteDiagnostic(w io.Writer, r quantize.Result) error {
	var err error
	switch r := r.(type) {
	case quantize.PointResult:
		_, err = fmt.Fprintf(w, "Adjusted -> %.6f\n", math.Abs(r.Adjustment))
	case quantize.IntervalResult:
		_, err = fmt.Fprintf(w, "Adjusted start %s %s %.6f\nAdjusted end %s %s %.6f\n",
			label.FormatSeconds(r.Start), arrow(r.StartAdjustment), math.Abs(r.StartAdjustment),
			label.FormatSeconds(r.End), arrow(r.EndAdjustment), math.Abs(r.EndAdjustment))
	}
	return err
}

// WriteSummary writes the total and average absolute adjustment.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "\nTotal adjustment: %.6f seconds\nAverage adjustment: %.6f seconds\n\n",
		s.Total, s.Average())
	return err
}

// arrow points right for a positive shift and left otherwise.
func arrow(adj float64) string {
	if adj > 0 {
		return "->"
	}
	return "<-"
}
