package model

import "fmt"

// PitchClass is a note name irrespective of octave, C = 0 through B = 11.
type PitchClass uint8

// Transpose moves the pitch class by semitones, wrapping around the octave.
func (pc PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(((int(pc)+semitones)%12 + 12) % 12)
}

func (pc PitchClass) Valid() bool {
	return pc < 12
}

// Pitch is a pitch class placed in a specific octave (scientific pitch
// notation, so middle C is C4 and MIDI 60).
type Pitch struct {
	Class  PitchClass `json:"class"`
	Octave int        `json:"octave"`
}

// PitchFromMIDI maps a MIDI note number onto a Pitch.
func PitchFromMIDI(midi int) Pitch {
	octave := midi/12 - 1
	if midi < 0 && midi%12 != 0 {
		octave--
	}
	return Pitch{Class: PitchClass(((midi % 12) + 12) % 12), Octave: octave}
}

func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + int(p.Class)
}

type Quality uint8

const (
	Unknown Quality = iota
	Major
	Minor
	Dominant
	HalfDiminished
)

var qualityNames = map[Quality]string{
	Unknown:        "unknown",
	Major:          "major",
	Minor:          "minor",
	Dominant:       "dominant",
	HalfDiminished: "half-diminished",
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("quality(%d)", uint8(q))
}

// Chord is an immutable chord derived from a chord symbol. A chord whose
// symbol could not be looked up keeps its symbol with an Unknown quality.
type Chord struct {
	Symbol  string     `json:"symbol"`
	Root    PitchClass `json:"root"`
	Quality Quality    `json:"quality"`
}

func (c Chord) Known() bool {
	return c.Quality != Unknown
}

func (c Chord) String() string {
	return c.Symbol
}
