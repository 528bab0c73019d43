package label

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedLine is returned for lines that carry no fields at all.
var ErrMalformedLine = errors.New("malformed label line")

// ParseError describes a line that could not be decoded into a label.
type ParseError struct {
	Line  int    // 1-based line number, 0 when unknown
	Field int    // 0-based field index, -1 when the whole line is at fault
	Value string // offending raw text
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field >= 0 {
		fmt.Fprintf(&b, "field %d: ", e.Field+1)
	}
	fmt.Fprintf(&b, "invalid value %q: %v", e.Value, e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLine decodes one line of a label file. Trailing whitespace (including
// a carriage return) is dropped before the line is split on tabs.
func ParseLine(line string) (Label, error) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if line == "" {
		return nil, &ParseError{Field: -1, Value: line, Err: ErrMalformedLine}
	}

	fields := strings.Split(line, "\t")
	if len(fields) == 1 {
		t, err := parseSeconds(fields, 0)
		if err != nil {
			return nil, err
		}
		return Point{Time: t}, nil
	}

	start, err := parseSeconds(fields, 0)
	if err != nil {
		return nil, err
	}
	end, err := parseSeconds(fields, 1)
	if err != nil {
		return nil, err
	}
	var text string
	if len(fields) > 2 {
		text = fields[2]
	}
	return Interval{Start: start, End: end, Text: text}, nil
}

func parseSeconds(fields []string, idx int) (float64, error) {
	raw := fields[idx]
	s := strings.TrimSpace(raw)
	if isHexLiteral(s) {
		return 0, &ParseError{Field: idx, Value: raw, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		// Out-of-range literals saturate to ±Inf.
		return v, nil
	}
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Field: idx, Value: raw, Err: err}
	}
	return v, nil
}

// isHexLiteral reports whether s is a hexadecimal float such as "0x1p-2".
// Only decimal notation is accepted for label times.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
