package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/theory"
)

var ErrUnknownChord = errors.New("unknown chord symbol")

// chord symbol suffixes (everything after the root) to quality
var suffixQualities = map[string]model.Quality{
	"":       model.Major,
	"maj":    model.Major,
	"maj7":   model.Major,
	"maj9":   model.Major,
	"M7":     model.Major,
	"6":      model.Major,
	"69":     model.Major,
	"6/9":    model.Major,
	"m":      model.Minor,
	"mi":     model.Minor,
	"min":    model.Minor,
	"m6":     model.Minor,
	"m7":     model.Minor,
	"mi7":    model.Minor,
	"min7":   model.Minor,
	"m9":     model.Minor,
	"m11":    model.Minor,
	"7":      model.Dominant,
	"9":      model.Dominant,
	"13":     model.Dominant,
	"7b9":    model.Dominant,
	"7#9":    model.Dominant,
	"7#11":   model.Dominant,
	"7b13":   model.Dominant,
	"7alt":   model.Dominant,
	"7sus4":  model.Dominant,
	"m7b5":   model.HalfDiminished,
	"mi7b5":  model.HalfDiminished,
	"min7b5": model.HalfDiminished,
}

// Parse looks a chord symbol such as "Dm7", "G7" or "Bbmaj7" up in the
// chord tables.
func Parse(symbol string) (model.Chord, error) {
	trimmed := strings.TrimSpace(symbol)
	root, used, err := theory.ParsePitchClass(trimmed)
	if err != nil {
		return model.Chord{Symbol: symbol}, fmt.Errorf("%w %q: %v", ErrUnknownChord, symbol, err)
	}
	quality, ok := suffixQualities[trimmed[used:]]
	if !ok {
		return model.Chord{Symbol: symbol}, fmt.Errorf("%w %q: unrecognized suffix %q", ErrUnknownChord, symbol, trimmed[used:])
	}
	return model.Chord{Symbol: trimmed, Root: root, Quality: quality}, nil
}

// Lookup is Parse for callers that keep unknown chords around: the symbol
// is preserved with an Unknown quality.
func Lookup(symbol string) model.Chord {
	c, err := Parse(symbol)
	if err != nil {
		return model.Chord{Symbol: strings.TrimSpace(symbol)}
	}
	return c
}

// ThirdSemitones is 3 for chords with a minor third and 4 otherwise.
func ThirdSemitones(c model.Chord) int {
	switch c.Quality {
	case model.Minor, model.HalfDiminished:
		return 3
	}
	return 4
}

// ToneSemitones returns the semitones above the root of chord tone 1, 3, 5
// or 7, taken from the chord's scale.
func ToneSemitones(c model.Chord, tone int) (int, error) {
	scale, err := theory.ScaleFor(c)
	if err != nil {
		return 0, err
	}
	switch tone {
	case 1:
		return 0, nil
	case 3:
		return ThirdSemitones(c), nil
	case 5:
		return scale.Step(4), nil
	case 7:
		return scale.Step(6), nil
	}
	return 0, fmt.Errorf("not a chord tone: %d", tone)
}
