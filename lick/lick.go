package lick

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/caltim3/Beboptionary/fragment"
	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/selector"
	"github.com/caltim3/Beboptionary/translate"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidWeights is returned, wrapped, for dials outside [0, 100].
var ErrInvalidWeights = model.ErrWeightOutOfRange

const beatEpsilon = 1e-9

// Generator assembles licks from a fragment library. It keeps no state
// between calls other than its random source; give each goroutine its own
// Generator unless the source is safe for concurrent use.
type Generator struct {
	library    *fragment.Library
	selector   *selector.Selector
	translator *translate.Translator
	logger     log.FieldLogger
}

type Option func(*Generator)

// WithLogger routes translator discrepancies and generation traces to logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New builds a Generator. A nil rnd gets a time-seeded source.
func New(lib *fragment.Library, rnd selector.RandomSource, opts ...Option) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Generator{
		library:  lib,
		selector: selector.New(rnd),
		logger:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.translator = translate.New(g.logger)
	return g
}

// Generate builds a lick over p from the built-in catalog.
func Generate(p model.Progression, w model.StyleWeights, rnd selector.RandomSource) ([]model.Note, error) {
	return New(fragment.Default(), rnd).Generate(p, w)
}

type state uint8

const (
	generating state = iota
	done
)

// Segment is one fragment rendered over one chord, starting at Start beats.
type Segment struct {
	Fragment model.Fragment
	Chord    model.Chord
	Start    float64
	Notes    []model.Note
}

// Generate returns the lick as a flat note sequence.
func (g *Generator) Generate(p model.Progression, w model.StyleWeights) ([]model.Note, error) {
	segments, err := g.Segments(p, w)
	if err != nil {
		return nil, err
	}
	notes := []model.Note{}
	for _, s := range segments {
		notes = append(notes, s.Notes...)
	}
	return notes, nil
}

// Segments walks the progression picking and rendering one fragment at a
// time until TotalBeats is filled or nothing fits the remaining space. It
// only fails on invalid weights; a short or empty lick is a normal result.
func (g *Generator) Segments(p model.Progression, w model.StyleWeights) ([]Segment, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style weights: %w", err)
	}

	logger := g.logger.WithFields(log.Fields{
		"function":    "Generator.Segments",
		"progression": p.Name,
	})

	var segments []Segment
	if len(p.Chords) == 0 || p.TotalBeats <= 0 {
		return segments, nil
	}

	var cursor float64
	chordIndex := 0
	boundary := p.BeatsFor(0)

	st := generating
	for st == generating {
		if cursor >= p.TotalBeats-beatEpsilon {
			st = done
			continue
		}
		current := p.Chords[chordIndex%len(p.Chords)]

		if !current.Known() {
			logger.WithField("chord", current.Symbol).Debug("skipping unknown chord")
			cursor = boundary
		} else {
			candidates := g.library.FittingAtMost(p.TotalBeats - cursor)
			frag, err := g.selector.Choose(candidates, w, current)
			if err != nil {
				logger.WithField("cursor", cursor).Debugf("stopping early: %v", err)
				st = done
				continue
			}
			segments = append(segments, Segment{
				Fragment: frag,
				Chord:    current,
				Start:    cursor,
				Notes:    g.translator.Fragment(frag, current),
			})
			cursor += frag.DurationBeats
		}

		for cursor >= boundary-beatEpsilon {
			chordIndex++
			boundary += p.BeatsFor(chordIndex)
		}
	}

	logger.WithField("segments", len(segments)).Debug("generated lick")
	return segments, nil
}
