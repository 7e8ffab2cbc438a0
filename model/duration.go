package model

import "strings"

// Duration is a display duration token in the notation renderer's
// vocabulary: "8" is an eighth note, "16" a sixteenth and a trailing "t"
// marks a triplet.
type Duration string

const (
	Half             Duration = "2"
	Quarter          Duration = "4"
	Eighth           Duration = "8"
	Sixteenth        Duration = "16"
	QuarterTriplet   Duration = "4t"
	EighthTriplet    Duration = "8t"
	SixteenthTriplet Duration = "16t"
)

const (
	tripletMarker     = "t"
	tripletMultiplier = 2.0 / 3.0
)

// beat fraction of each base token, a quarter note being one beat
var beatFractions = map[Duration]float64{
	Half:      2,
	Quarter:   1,
	Eighth:    0.5,
	Sixteenth: 0.25,
}

// Durations lists every recognized token.
func Durations() []Duration {
	return []Duration{Half, Quarter, Eighth, Sixteenth, QuarterTriplet, EighthTriplet, SixteenthTriplet}
}

func (d Duration) Triplet() bool {
	return strings.HasSuffix(string(d), tripletMarker) && d.Base() != d
}

// Base strips the triplet marker.
func (d Duration) Base() Duration {
	base := Duration(strings.TrimSuffix(string(d), tripletMarker))
	if _, ok := beatFractions[base]; ok {
		return base
	}
	return d
}

func (d Duration) Valid() bool {
	_, ok := beatFractions[d.Base()]
	return ok
}

// BeatFraction is the length of the base token in quarter-note beats,
// ignoring any triplet marker. Unrecognized tokens have no length.
func (d Duration) BeatFraction() float64 {
	return beatFractions[d.Base()]
}

// Beats is the sounding length in beats with triplets shortened to 2/3.
func (d Duration) Beats() float64 {
	if d.Triplet() {
		return d.BeatFraction() * tripletMultiplier
	}
	return d.BeatFraction()
}
