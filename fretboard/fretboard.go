// Package fretboard draws a guitar neck as a text table, marking the frets that hold scale notes.
package fretboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/QEStudios/scaled/theory"
	"github.com/mattn/go-runewidth"
)

// Highest fret drawn. Fret 0 is the open string.
const Frets = 12

// Padding to the left of every cell.
const cellIndent = 2

// cellWidth is the width of the column for a fret, not counting the separator.
// Double-digit frets get one extra column so their header fits.
func cellWidth(fret int) int {
	if fret > 9 {
		return 6
	}
	return 5
}

// innerWidth is the width between the left and right borders.
func innerWidth() int {
	w := 0
	for fret := 0; fret <= Frets; fret++ {
		w += cellWidth(fret) + 1 // +1 for the separator after the cell.
	}
	return w - 1 // The last separator is the right border.
}

// cell left-aligns s inside the column for fret.
func cell(s string, fret int) string {
	return strings.Repeat(" ", cellIndent) + runewidth.FillRight(s, cellWidth(fret)-cellIndent)
}

// row joins one cell per fret with interior separators and box borders on each end.
func row(cells []string) string {
	return "│" + strings.Join(cells, "|") + "│"
}

func horizontal(left, right string) string {
	return left + strings.Repeat("─", innerWidth()) + right
}

func header() string {
	cells := make([]string, Frets+1)
	for fret := range cells {
		cells[fret] = cell(strconv.Itoa(fret), fret)
	}
	return row(cells)
}

// stringRow draws one guitar string. The open note is always shown, other frets only when the
// note at that fret is in the scale.
func stringRow(open theory.Note, scale []theory.Note) string {
	cells := make([]string, Frets+1)
	for fret := range cells {
		note := open.Transpose(fret)
		label := ""
		if fret == 0 || theory.Contains(scale, note) {
			label = note.String()
		}
		cells[fret] = cell(label, fret)
	}
	return row(cells)
}

// Render writes the fretboard diagram to w, one row per entry in tuning, top row first.
func Render(w io.Writer, scale []theory.Note, tuning []theory.Note) error {
	var b strings.Builder

	b.WriteString(horizontal("┌", "┐"))
	b.WriteString("\n")
	b.WriteString(header())
	b.WriteString("\n")
	b.WriteString(horizontal("│", "│"))
	b.WriteString("\n")

	for _, open := range tuning {
		b.WriteString(stringRow(open, scale))
		b.WriteString("\n")
	}

	b.WriteString(horizontal("└", "┘"))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write fretboard: %w", err)
	}
	return nil
}

// String returns the diagram Render would write.
func String(scale []theory.Note, tuning []theory.Note) string {
	var b strings.Builder
	Render(&b, scale, tuning) // Writing to a strings.Builder never fails.
	return b.String()
}
