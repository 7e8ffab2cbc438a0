package theory

import (
	"fmt"
	"strings"

	"github.com/caltim3/Beboptionary/model"
)

// BaseOctave is the register chord roots are placed in (C4 is middle C).
const BaseOctave = 4

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParsePitchClass reads a note name such as "C", "Bb" or "F#" from the start
// of s and returns the pitch class together with the number of bytes used.
func ParsePitchClass(s string) (model.PitchClass, int, error) {
	if len(s) == 0 {
		return 0, 0, fmt.Errorf("empty note name")
	}
	offset, ok := letterOffsets[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, 0, fmt.Errorf("invalid note letter: %q", s[:1])
	}
	used := 1
	if len(s) > 1 {
		switch s[1] {
		case '#':
			offset++
			used++
		case 'b':
			offset--
			used++
		}
	}
	return model.PitchClass(0).Transpose(offset), used, nil
}

// PitchClassName spells a pitch class with sharps, or flats when asked.
func PitchClassName(pc model.PitchClass, preferFlats bool) string {
	if preferFlats {
		return flatNames[pc%12]
	}
	return sharpNames[pc%12]
}

// keys whose signatures use flats
var flatKeys = map[model.PitchClass]bool{
	5: true, 10: true, 3: true, 8: true, 1: true, 6: true,
}

// PrefersFlats reports whether a (major) key is conventionally written with flats.
func PrefersFlats(key model.PitchClass) bool {
	return flatKeys[key]
}

// PitchAbove places a pitch the given number of semitones above root in the
// base octave.
func PitchAbove(root model.PitchClass, semitones int) model.Pitch {
	return model.PitchFromMIDI((BaseOctave+1)*12 + int(root) + semitones)
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod is the always non-negative remainder.
func Mod(a, b int) int {
	return ((a % b) + b) % b
}
