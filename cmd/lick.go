package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/caltim3/Beboptionary/constants"
	"github.com/caltim3/Beboptionary/fragment"
	"github.com/caltim3/Beboptionary/lick"
	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/notation"
	"github.com/caltim3/Beboptionary/playback"
	"github.com/caltim3/Beboptionary/progression"
	"github.com/google/uuid"
)

const defaultProgression = "ii-v-i"

// generated is one lick along with everything the CLI and the API show
// about it.
type generated struct {
	progression model.Progression
	segments    []lick.Segment
	notes       []model.Note
	response    model.GenerateResponse
}

func dial(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// generateLick runs the whole pipeline for one request. Every error it
// returns is caused by the request itself.
func generateLick(req model.GenerateRequestBody) (generated, error) {
	var g generated

	name := strings.TrimSpace(req.Progression)
	if name == "" {
		name = defaultProgression
	}
	prog, err := progression.Resolve(name, req.Measures)
	if err != nil {
		return g, fmt.Errorf("invalid progression: %w", err)
	}

	tempo := req.Tempo
	if tempo == 0 {
		tempo = constants.GetDefaultTempo()
	}
	if tempo < 0 {
		return g, fmt.Errorf("%w, got %d", playback.ErrInvalidTempo, tempo)
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	weights := model.StyleWeights{
		Bebop:   dial(req.Bebop),
		Blues:   dial(req.Blues),
		Altered: dial(req.Altered),
	}
	generator := lick.New(fragment.Default(), rand.New(rand.NewSource(seed)))
	segments, err := generator.Segments(prog, weights)
	if err != nil {
		return g, err
	}

	notes := []model.Note{}
	for _, seg := range segments {
		notes = append(notes, seg.Notes...)
	}

	events, err := playback.Schedule(notes, float64(tempo))
	if err != nil {
		return g, err
	}
	entries := notation.Render(notes, prog.Key)

	results := make([]model.NoteResult, len(notes))
	for i, n := range notes {
		results[i] = model.NoteResult{
			Pitch:      entries[i].Spelling.String(),
			Letter:     entries[i].Letter,
			Accidental: entries[i].Accidental,
			Octave:     entries[i].Octave,
			Duration:   string(n.Duration),
			Triplet:    entries[i].Triplet,
			Chord:      n.Chord.Symbol,
			NewChord:   entries[i].ChordSymbol != "",
			Frequency:  events[i].Frequency,
			Seconds:    events[i].Length,
		}
	}

	g.progression = prog
	g.segments = segments
	g.notes = notes
	g.response = model.GenerateResponse{
		Id:          uuid.NewString(),
		Progression: name,
		Weights:     weights,
		Tempo:       tempo,
		Seed:        seed,
		Score:       notation.EasyScore(entries),
		TotalBeats:  prog.TotalBeats,
		Notes:       results,
	}
	return g, nil
}
