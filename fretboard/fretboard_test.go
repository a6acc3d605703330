package fretboard_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/QEStudios/scaled/fretboard"
	"github.com/QEStudios/scaled/theory"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cMajorStandardE = `┌────────────────────────────────────────────────────────────────────────────────┐
│  0  |  1  |  2  |  3  |  4  |  5  |  6  |  7  |  8  |  9  |  10  |  11  |  12  │
│────────────────────────────────────────────────────────────────────────────────│
│  E  |  F  |     |  G  |     |  A  |     |  B  |  C  |     |  D   |      |  E   │
│  B  |  C  |     |  D  |     |  E  |  F  |     |  G  |     |  A   |      |  B   │
│  G  |     |  A  |     |  B  |  C  |     |  D  |     |  E  |  F   |      |  G   │
│  D  |     |  E  |  F  |     |  G  |     |  A  |     |  B  |  C   |      |  D   │
│  A  |     |  B  |  C  |     |  D  |     |  E  |  F  |     |  G   |      |  A   │
│  E  |  F  |     |  G  |     |  A  |     |  B  |  C  |     |  D   |      |  E   │
└────────────────────────────────────────────────────────────────────────────────┘
`

func mustBoard(t *testing.T, root, mode, tuningRoot string, drop bool) ([]theory.Note, []theory.Note) {
	t.Helper()
	scale, err := theory.Scale(root, mode)
	require.NoError(t, err)
	tuning, err := theory.Tuning(tuningRoot, drop)
	require.NoError(t, err)
	return scale, tuning
}

func TestRender_CMajorStandard(t *testing.T) {
	scale, tuning := mustBoard(t, "C", "major", "e", false)

	var buf bytes.Buffer
	require.NoError(t, fretboard.Render(&buf, scale, tuning))
	assert.Equal(t, cMajorStandardE, buf.String())
}

// TestRender_ColumnsAligned checks every line has the same display width for every
// root, mode and tuning, whether notes are one or two characters wide.
func TestRender_ColumnsAligned(t *testing.T) {
	for _, root := range theory.Notes() {
		for _, mode := range theory.Modes() {
			for _, drop := range []bool{false, true} {
				scale, tuning := mustBoard(t, root.String(), mode.Name, root.String(), drop)
				lines := strings.Split(strings.TrimSuffix(fretboard.String(scale, tuning), "\n"), "\n")
				require.Len(t, lines, 4+theory.NumStrings)

				for _, line := range lines {
					assert.Equal(t, 82, runewidth.StringWidth(line), "%v %s: %q", root, mode.Name, line)
				}
				// Separators line up with the header's.
				header := []rune(lines[1])
				for _, line := range lines[3 : 3+theory.NumStrings] {
					row := []rune(line)
					for i, r := range header {
						if r == '|' || r == '│' {
							assert.Equal(t, r, row[i], "column %d of %q", i, line)
						}
					}
				}
			}
		}
	}
}

// TestRender_OpenStringAlwaysShown uses a scale that contains none of the open strings.
func TestRender_OpenStringAlwaysShown(t *testing.T) {
	scale, tuning := mustBoard(t, "F", "locrian", "e", false) // F F# G# A# B C# D#, no E, A, D, G.
	for _, open := range tuning {
		if open == theory.B {
			continue
		}
		require.False(t, theory.Contains(scale, open))
	}

	lines := strings.Split(fretboard.String(scale, tuning), "\n")
	for i, open := range tuning {
		row := lines[3+i]
		prefix := "│  " + runewidth.FillRight(open.String(), 3) + "|"
		assert.True(t, strings.HasPrefix(row, prefix), "row %q should start with %q", row, prefix)
	}
}

func TestRender_DoubleDigitFrets(t *testing.T) {
	scale, tuning := mustBoard(t, "C#", "major", "e", false)
	lines := strings.Split(fretboard.String(scale, tuning), "\n")

	// High E string: fret 10 is D, fret 11 is D#, fret 12 is E. C# major has D# but not D or E,
	// and only fret 0 shows the open note unconditionally.
	assert.True(t, strings.HasSuffix(lines[3], "|      |  D#  |      │"), "got %q", lines[3])
}

func TestRender_Idempotent(t *testing.T) {
	scale, tuning := mustBoard(t, "G", "mixolydian", "d", true)
	assert.Equal(t, fretboard.String(scale, tuning), fretboard.String(scale, tuning))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender_WriteError(t *testing.T) {
	scale, tuning := mustBoard(t, "C", "major", "e", false)
	err := fretboard.Render(failingWriter{}, scale, tuning)
	assert.ErrorContains(t, err, "disk full")
}
