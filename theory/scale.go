package theory

import (
	"fmt"

	"github.com/caltim3/Beboptionary/model"
)

const (
	Ionian     = "ionian"
	Dorian     = "dorian"
	Aeolian    = "aeolian"
	Mixolydian = "mixolydian"
	Locrian    = "locrian"

	// LocrianNatural2 is locrian with a major second, the usual m7b5 scale.
	LocrianNatural2 = "locrian-natural-2"
)

// semitones above the tonic for each mode
var modeSteps = map[string][7]int{
	Ionian:     {0, 2, 4, 5, 7, 9, 11},
	Dorian:     {0, 2, 3, 5, 7, 9, 10},
	Aeolian:    {0, 2, 3, 5, 7, 8, 10},
	Mixolydian: {0, 2, 4, 5, 7, 9, 10},
	Locrian:    {0, 1, 3, 5, 6, 8, 10},

	LocrianNatural2: {0, 2, 3, 5, 6, 8, 10},
}

// Minor chords take natural minor for simplicity.
var qualityModes = map[model.Quality]string{
	model.Major:          Ionian,
	model.Minor:          Aeolian,
	model.Dominant:       Mixolydian,
	model.HalfDiminished: LocrianNatural2,
}

type Scale struct {
	Tonic   model.PitchClass
	Mode    string
	Degrees [7]model.PitchClass
	steps   [7]int
}

// Step returns the semitone offset above the tonic of a 0-indexed degree.
// Degrees outside 0-6 wrap into the neighboring octaves, so Step(7) is 12
// and Step(-1) is the seventh degree an octave down.
func (s Scale) Step(degree int) int {
	return s.steps[Mod(degree, 7)] + 12*FloorDiv(degree, 7)
}

// IndexOf finds the degree holding semitones (mod 12), or -1.
func (s Scale) IndexOf(semitones int) int {
	for i, st := range s.steps {
		if st == Mod(semitones, 12) {
			return i
		}
	}
	return -1
}

func NewScale(tonic model.PitchClass, mode string) (Scale, error) {
	steps, ok := modeSteps[mode]
	if !ok {
		return Scale{}, fmt.Errorf("unknown mode: %q", mode)
	}
	s := Scale{Tonic: tonic, Mode: mode, steps: steps}
	for i, st := range steps {
		s.Degrees[i] = tonic.Transpose(st)
	}
	return s, nil
}

// ScaleFor selects the chord's scale through the quality to mode table.
func ScaleFor(c model.Chord) (Scale, error) {
	mode, ok := qualityModes[c.Quality]
	if !ok {
		return Scale{}, fmt.Errorf("no scale for %v chord %q", c.Quality, c.Symbol)
	}
	return NewScale(c.Root, mode)
}

const (
	BebopDominant = "bebop-dominant"
	BebopMajor    = "bebop-major"
	BebopDorian   = "bebop-dorian"
	BebopLocrian  = "bebop-locrian"
	// BebopChord picks the bebop scale matching the chord quality.
	BebopChord = "bebop-chord"
)

// Eight-note bebop scales: a seven note mode plus one chromatic passing
// tone so chord tones fall on the beat in straight eighths.
var bebopScales = map[string][]int{
	BebopDominant: {0, 2, 4, 5, 7, 9, 10, 11},
	BebopMajor:    {0, 2, 4, 5, 7, 8, 9, 11},
	BebopDorian:   {0, 2, 3, 4, 5, 7, 9, 10},
	BebopLocrian:  {0, 2, 3, 5, 6, 8, 10, 11},
}

var qualityBebopScales = map[model.Quality]string{
	model.Major:          BebopMajor,
	model.Minor:          BebopDorian,
	model.Dominant:       BebopDominant,
	model.HalfDiminished: BebopLocrian,
}

// BebopRun expands a bebop scale keyword into a descending run, in
// semitones above the chord root, that starts on the octave and ends just
// above the root.
func BebopRun(keyword string, quality model.Quality) ([]int, error) {
	if keyword == BebopChord {
		name, ok := qualityBebopScales[quality]
		if !ok {
			return nil, fmt.Errorf("no bebop scale for %v chords", quality)
		}
		keyword = name
	}
	steps, ok := bebopScales[keyword]
	if !ok {
		return nil, fmt.Errorf("unknown scale expansion: %q", keyword)
	}
	run := make([]int, 0, len(steps))
	run = append(run, 12)
	for i := len(steps) - 1; i > 0; i-- {
		run = append(run, steps[i])
	}
	return run, nil
}
