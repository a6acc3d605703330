package theory

// Number of strings on the guitar.
const NumStrings = 6

// Semitone offsets of each open string above the tuning root, lowest string first.
var (
	StandardIntervals = [NumStrings]int{0, 5, 10, 15, 19, 24}
	DropIntervals     = [NumStrings]int{0, 7, 12, 17, 21, 26}
)

// Intervals returns the offset catalog for standard or drop tuning.
func Intervals(drop bool) [NumStrings]int {
	if drop {
		return DropIntervals
	}
	return StandardIntervals
}

// TuningName is "Drop" or "Standard".
func TuningName(drop bool) string {
	if drop {
		return "Drop"
	}
	return "Standard"
}

// Tuning returns the open-string notes for a guitar whose lowest string is tuned to root.
// The result is ordered highest string first, which is how the strings are drawn top to bottom.
// Octaves are discarded; only the pitch class of each string is kept.
func Tuning(root string, drop bool) ([]Note, error) {
	rootNote, err := ParseNote(root)
	if err != nil {
		return nil, err
	}

	intervals := Intervals(drop)
	openStrings := make([]Note, NumStrings)
	for i, interval := range intervals {
		// Fill from the end to reverse the order.
		openStrings[NumStrings-1-i] = rootNote.Transpose(interval)
	}
	return openStrings, nil
}
