package theory

import (
	"strings"
)

// Number of pitch classes in the chromatic cycle.
const NumNotes = 12

// A single pitch class, stored as its index (0-11) in the chromatic cycle starting at C.
type Note int

const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Canonical names, sharps only. Indexed by Note.
var noteNames = [NumNotes]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Notes returns the full chromatic cycle in order, starting at C.
func Notes() []Note {
	notes := make([]Note, NumNotes)
	for i := range notes {
		notes[i] = Note(i)
	}
	return notes
}

// mod12 is a Euclidean modulo, so negative offsets still land on 0-11.
func mod12(n int) int {
	m := n % NumNotes
	if m < 0 {
		m += NumNotes
	}
	return m
}

// Index returns the note's position in the chromatic cycle.
func (n Note) Index() int {
	return mod12(int(n))
}

// Transpose moves the note by a number of semitones (up or down), wrapping around the cycle.
func (n Note) Transpose(semitones int) Note {
	return Note(mod12(int(n) + semitones))
}

func (n Note) String() string {
	return noteNames[n.Index()]
}

// ParseNote maps user input to a canonical note. Matching is case-insensitive but otherwise exact,
// so flat spellings like "Bb" are rejected rather than converted.
func ParseNote(s string) (Note, error) {
	upper := strings.ToUpper(s)
	for i, name := range noteNames {
		if name == upper {
			return Note(i), nil
		}
	}
	return 0, &InvalidNoteError{Input: s}
}

// JoinNotes formats a sequence of notes with sep between each name.
func JoinNotes(notes []Note, sep string) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.String()
	}
	return strings.Join(names, sep)
}
