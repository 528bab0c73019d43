package label

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, src Source) []Label {
	t.Helper()
	var out []Label
	for src.Next() {
		out = append(out, src.Label())
	}
	return out
}

func TestReader_MixedShapes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := "0.5\n1.0\t2.0\tchorus\n3.25\r\n4.0\t5.0\n"

	// --- Act ---
	r := NewReader(strings.NewReader(input))
	got := drain(t, r)

	// --- Assert ---
	require.NoError(t, r.Err())
	assert.Equal(t, []Label{
		Point{Time: 0.5},
		Interval{Start: 1, End: 2, Text: "chorus"},
		Point{Time: 3.25},
		Interval{Start: 4, End: 5},
	}, got)
	assert.Equal(t, 4, r.Line())
}

func TestReader_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("1.0\n2.0"))
	got := drain(t, r)

	require.NoError(t, r.Err())
	assert.Equal(t, []Label{Point{Time: 1}, Point{Time: 2}}, got)
}

func TestReader_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := "1.0\n2.0\nnot-a-number\n4.0\n"

	// --- Act ---
	r := NewReader(strings.NewReader(input))
	got := drain(t, r)

	// --- Assert ---
	assert.Equal(t, []Label{Point{Time: 1}, Point{Time: 2}}, got)
	var perr *ParseError
	require.True(t, errors.As(r.Err(), &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Nil(t, r.Label())
	assert.False(t, r.Next(), "a failed reader must stay exhausted")
}

func TestReader_BlankLineIsAnError(t *testing.T) {
	t.Parallel()

	r := NewReader(strings.NewReader("1.0\n\n2.0\n"))
	got := drain(t, r)

	assert.Len(t, got, 1)
	assert.ErrorIs(t, r.Err(), ErrMalformedLine)
}

func TestOpen_ReadsAndCloses(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "labels.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.0\t2.0\tintro\n"), 0o600))

	// --- Act ---
	f, err := Open(path)
	require.NoError(t, err)
	got := drain(t, f)

	// --- Assert ---
	require.NoError(t, f.Err())
	assert.Equal(t, []Label{Interval{Start: 1, End: 2, Text: "intro"}}, got)
	assert.Equal(t, path, f.Path())
	assert.Nil(t, f.f, "file handle should be released once the stream is exhausted")
	assert.NoError(t, f.Close(), "Close after exhaustion must be a no-op")
}

func TestOpen_ErrorMentionsPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.0\nbad\n"), 0o600))

	f, err := Open(path)
	require.NoError(t, err)
	drain(t, f)

	require.Error(t, f.Err())
	assert.Contains(t, f.Err().Error(), path)
	assert.Contains(t, f.Err().Error(), "line 2")
	var perr *ParseError
	assert.True(t, errors.As(f.Err(), &perr))
}

func TestOpen_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSlice(t *testing.T) {
	t.Parallel()

	src := Slice(Point{Time: 1}, Interval{Start: 2, End: 3})
	assert.Nil(t, src.Label())

	got := drain(t, src)

	assert.Equal(t, []Label{Point{Time: 1}, Interval{Start: 2, End: 3}}, got)
	assert.NoError(t, src.Err())
	assert.False(t, src.Next())
	assert.Nil(t, src.Label())
}
