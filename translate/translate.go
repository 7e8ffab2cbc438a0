package translate

import (
	"fmt"

	"github.com/caltim3/Beboptionary/chord"
	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/theory"
	log "github.com/sirupsen/logrus"
)

// Translator renders fragment patterns against chords. A pattern element
// that cannot be resolved is replaced by the chord root and logged, so a
// bad fragment never aborts a lick.
type Translator struct {
	logger log.FieldLogger
}

// New uses the standard logrus logger when logger is nil.
func New(logger log.FieldLogger) *Translator {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Translator{logger: logger}
}

// Fragment turns f into notes over c. Durations are taken positionally
// from the rhythm; scale expansions cycle through it and everything else
// falls back to eighth notes once it runs out.
func (t *Translator) Fragment(f model.Fragment, c model.Chord) []model.Note {
	var notes []model.Note
	for _, e := range f.Pattern {
		cycle := e.Kind == model.ExpansionElement
		for _, p := range t.Element(e, c) {
			notes = append(notes, model.Note{
				Pitch:    p,
				Duration: t.durationAt(f, len(notes), cycle),
				Chord:    c,
			})
		}
	}
	return notes
}

func (t *Translator) durationAt(f model.Fragment, i int, cycle bool) model.Duration {
	var d model.Duration
	switch {
	case i < len(f.Rhythm):
		d = f.Rhythm[i]
	case cycle && len(f.Rhythm) > 0:
		d = f.Rhythm[i%len(f.Rhythm)]
	default:
		return model.Eighth
	}
	if !d.Valid() {
		t.logger.WithFields(log.Fields{
			"function": "Translator.Fragment",
			"fragment": f.ID,
			"duration": string(d),
		}).Warn("unrecognized duration, using an eighth note")
		return model.Eighth
	}
	return d
}

// Element resolves one pattern element to one or more pitches.
func (t *Translator) Element(e model.PatternElement, c model.Chord) []model.Pitch {
	var pitches []model.Pitch
	var err error
	switch e.Kind {
	case model.ScaleDegreeElement:
		pitches, err = scaleDegree(e.Degree, c)
	case model.IntervalElement:
		pitches, err = interval(e.Interval, c)
	case model.EnclosureElement:
		pitches, err = enclosure(e.Enclosure, c)
	case model.ExpansionElement:
		pitches, err = expansion(e.Expansion, c)
	default:
		err = fmt.Errorf("unknown pattern element kind %v", e.Kind)
	}
	if err != nil {
		t.logger.WithFields(log.Fields{
			"function": "Translator.Element",
			"chord":    c.Symbol,
			"element":  e.String(),
		}).Warnf("falling back to the chord root: %v", err)
		return []model.Pitch{theory.PitchAbove(c.Root, 0)}
	}
	return pitches
}

func scaleDegree(n int, c model.Chord) ([]model.Pitch, error) {
	scale, err := theory.ScaleFor(c)
	if err != nil {
		return nil, err
	}
	return []model.Pitch{theory.PitchAbove(c.Root, degreeSemitones(scale, n))}, nil
}

// degreeSemitones wraps n into the scale, so 7 is the root again and -1 is
// the seventh above it. Degrees of 8 or more either way sound one octave up.
func degreeSemitones(scale theory.Scale, n int) int {
	st := scale.Step(theory.Mod(n, 7))
	if n >= 8 || n <= -8 {
		st += 12
	}
	return st
}

func interval(name string, c model.Chord) ([]model.Pitch, error) {
	st, err := theory.IntervalSemitones(name)
	if err != nil {
		return nil, err
	}
	return []model.Pitch{theory.PitchAbove(c.Root, st)}, nil
}

func enclosure(enc model.Enclosure, c model.Chord) ([]model.Pitch, error) {
	if len(enc.Steps) == 0 {
		return nil, fmt.Errorf("enclosure of %d has no steps", enc.Target)
	}
	target, err := chord.ToneSemitones(c, enc.Target)
	if err != nil {
		return nil, err
	}
	scale, err := theory.ScaleFor(c)
	if err != nil {
		return nil, err
	}

	pitches := make([]model.Pitch, 0, len(enc.Steps))
	for _, step := range enc.Steps {
		var st int
		switch step.Kind {
		case model.StepTarget:
			st = target
		case model.StepChromatic:
			st = target + step.Offset
		case model.StepDiatonic:
			idx := scale.IndexOf(target)
			if idx < 0 {
				return nil, fmt.Errorf("target %d is outside the %v scale", enc.Target, scale.Mode)
			}
			st = scale.Step(idx+step.Offset) + 12*theory.FloorDiv(target, 12)
		default:
			return nil, fmt.Errorf("unknown enclosure step kind %d", step.Kind)
		}
		pitches = append(pitches, theory.PitchAbove(c.Root, st))
	}
	return pitches, nil
}

func expansion(keyword string, c model.Chord) ([]model.Pitch, error) {
	run, err := theory.BebopRun(keyword, c.Quality)
	if err != nil {
		return nil, err
	}
	pitches := make([]model.Pitch, len(run))
	for i, st := range run {
		pitches[i] = theory.PitchAbove(c.Root, st)
	}
	return pitches, nil
}
