package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Lines builds label file content: one entry per line with a trailing newline.
func Lines(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// AssertSummary checks that the diagnostic output ends with the summary block
// for the given total and average, both rendered with six decimals.
func AssertSummary(t *testing.T, result *HarnessResult, total, average float64) {
	t.Helper()

	expected := fmt.Sprintf("\nTotal adjustment: %.6f seconds\nAverage adjustment: %.6f seconds\n", total, average)
	require.True(t,
		strings.Contains(result.Stderr, expected),
		"summary block not found in diagnostic output:\n%s", result.Stderr,
	)
}

// AssertNoSummary checks that the run stopped before reporting a summary.
func AssertNoSummary(t *testing.T, result *HarnessResult) {
	t.Helper()
	require.NotContains(t, result.Stderr, "Total adjustment:")
}
