package playback

import (
	"errors"
	"fmt"
	"math"

	"github.com/caltim3/Beboptionary/model"
)

const (
	ConcertA     = 440.0
	ConcertAMIDI = 69
	// notes fade out over the first 90% of their slot
	ReleaseFraction = 0.9
)

var ErrInvalidTempo = errors.New("tempo must be positive")

// Frequency is the equal-temperament frequency of p with A4 at 440Hz.
func Frequency(p model.Pitch) float64 {
	return ConcertA * math.Pow(2, float64(p.MIDI()-ConcertAMIDI)/12)
}

// Seconds is how long d lasts at tempo beats per minute.
func Seconds(d model.Duration, tempo float64) (float64, error) {
	if tempo <= 0 || math.IsNaN(tempo) || math.IsInf(tempo, 0) {
		return 0, fmt.Errorf("%w, got %v", ErrInvalidTempo, tempo)
	}
	return 60 / tempo * d.Beats(), nil
}

type Event struct {
	Start     float64
	Length    float64
	Release   float64
	Frequency float64
	MIDI      int
}

// Schedule lays notes end to end starting at 0 seconds.
func Schedule(notes []model.Note, tempo float64) ([]Event, error) {
	events := make([]Event, 0, len(notes))
	var at float64
	for _, n := range notes {
		length, err := Seconds(n.Duration, tempo)
		if err != nil {
			return nil, err
		}
		events = append(events, Event{
			Start:     at,
			Length:    length,
			Release:   length * ReleaseFraction,
			Frequency: Frequency(n.Pitch),
			MIDI:      n.Pitch.MIDI(),
		})
		at += length
	}
	return events, nil
}
