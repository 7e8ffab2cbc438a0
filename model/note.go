package model

import (
	"errors"
	"fmt"
)

// Note is one emitted note of a lick. Notes are values; nothing downstream
// of the translator should modify them.
type Note struct {
	Pitch    Pitch
	Duration Duration
	Chord    Chord
}

func (n Note) Beats() float64 {
	return n.Duration.Beats()
}

// Progression is an ordered list of chords filling TotalBeats.
// ChordBeats[i] is how long Chords[i] lasts before the next chord change;
// when it is shorter than Chords the missing entries use DefaultChordBeats.
type Progression struct {
	Name       string
	Chords     []Chord
	ChordBeats []float64
	TotalBeats float64
	Key        PitchClass
}

const (
	DefaultChordBeats = 2.0
	BeatsPerMeasure   = 4.0
)

// BeatsFor is the length of chord i in the chord-change schedule.
func (p Progression) BeatsFor(i int) float64 {
	if len(p.Chords) == 0 {
		return 0
	}
	i = i % len(p.Chords)
	if i < len(p.ChordBeats) && p.ChordBeats[i] > 0 {
		return p.ChordBeats[i]
	}
	return DefaultChordBeats
}

const (
	MinStyleWeight = 0
	MaxStyleWeight = 100
)

// StyleWeights bias fragment selection towards a vocabulary. Each dial is
// a percentage.
type StyleWeights struct {
	Bebop   int `json:"bebop"`
	Blues   int `json:"blues"`
	Altered int `json:"altered"`
}

var ErrWeightOutOfRange = errors.New("style weight out of range")

// Validate rejects dials outside [0, 100]; they are never clamped.
func (w StyleWeights) Validate() error {
	dials := []struct {
		name  string
		value int
	}{
		{"bebop", w.Bebop},
		{"blues", w.Blues},
		{"altered", w.Altered},
	}
	for _, d := range dials {
		if d.value < MinStyleWeight || d.value > MaxStyleWeight {
			return fmt.Errorf("%w: %s is %d, must be between %d and %d",
				ErrWeightOutOfRange, d.name, d.value, MinStyleWeight, MaxStyleWeight)
		}
	}
	return nil
}
