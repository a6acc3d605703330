package theory

import (
	"fmt"
	"strings"
)

// Number of notes in a modal scale.
const ScaleLength = 7

// A named pattern of semitone steps. The steps always add up to one octave (12 semitones).
type Mode struct {
	Name      string
	Intervals [ScaleLength]int
}

// Mode catalog, in the order they're listed to the user. Never modified.
var modes = []Mode{
	{Name: "major", Intervals: [ScaleLength]int{2, 2, 1, 2, 2, 2, 1}},
	{Name: "dorian", Intervals: [ScaleLength]int{2, 1, 2, 2, 2, 1, 2}},
	{Name: "phrygian", Intervals: [ScaleLength]int{1, 2, 2, 2, 1, 2, 2}},
	{Name: "lydian", Intervals: [ScaleLength]int{2, 2, 2, 1, 2, 2, 1}},
	{Name: "mixolydian", Intervals: [ScaleLength]int{2, 2, 1, 2, 2, 1, 2}},
	{Name: "minor", Intervals: [ScaleLength]int{2, 1, 2, 2, 1, 2, 2}},
	{Name: "locrian", Intervals: [ScaleLength]int{1, 2, 2, 1, 2, 2, 2}},
}

// Modes returns a copy of the mode catalog.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// LookupMode finds a mode by name, ignoring case.
func LookupMode(name string) (Mode, error) {
	lower := strings.ToLower(name)
	for _, m := range modes {
		if m.Name == lower {
			return m, nil
		}
	}
	return Mode{}, &InvalidModeError{Input: name}
}

// Notes walks the chromatic cycle from root using the mode's steps.
// The root is not repeated at the end, so the result always has ScaleLength notes.
func (m Mode) Notes(root Note) []Note {
	notes := make([]Note, 0, ScaleLength)
	current := root
	for _, step := range m.Intervals {
		notes = append(notes, current)
		current = current.Transpose(step)
	}
	return notes
}

// Scale returns the notes of the scale built on root in the given mode.
// The root is validated before the mode.
func Scale(root string, mode string) ([]Note, error) {
	rootNote, err := ParseNote(root)
	if err != nil {
		return nil, err
	}

	m, err := LookupMode(mode)
	if err != nil {
		return nil, err
	}

	return m.Notes(rootNote), nil
}

// Contains reports whether n is one of the notes in scale.
func Contains(scale []Note, n Note) bool {
	for _, s := range scale { // At most 7 entries, a linear scan is fine.
		if s.Index() == n.Index() {
			return true
		}
	}
	return false
}

func (m Mode) String() string {
	return fmt.Sprintf("%s %v", m.Name, m.Intervals)
}
