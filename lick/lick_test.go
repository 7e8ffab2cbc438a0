package lick

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/caltim3/Beboptionary/chord"
	"github.com/caltim3/Beboptionary/fragment"
	"github.com/caltim3/Beboptionary/model"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	values []int
	calls  int
}

func (f *fixedSource) Intn(n int) int {
	v := f.values[f.calls%len(f.values)]
	f.calls++
	return v % n
}

func progression(totalBeats float64, symbols ...string) model.Progression {
	p := model.Progression{Name: "test", TotalBeats: totalBeats}
	for _, s := range symbols {
		p.Chords = append(p.Chords, chord.Lookup(s))
	}
	return p
}

func newGenerator(lib *fragment.Library, seed int64) *Generator {
	logger, _ := test.NewNullLogger()
	return New(lib, rand.New(rand.NewSource(seed)), WithLogger(logger))
}

func totalBeats(notes []model.Note) float64 {
	var total float64
	for _, n := range notes {
		total += n.Beats()
	}
	return total
}

func TestIIVIWithDialsAtZeroOnlyPlaysDiatonicFragments(t *testing.T) {
	p := progression(8, "Dm7", "G7", "Cmaj7")
	for seed := int64(0); seed < 50; seed++ {
		segments, err := newGenerator(fragment.Default(), seed).Segments(p, model.StyleWeights{})

		assert := assert.New(t)
		assert.Nil(err)
		assert.NotEmpty(segments)
		var notes []model.Note
		for _, s := range segments {
			assert.True(s.Fragment.HasTag(model.TagDiatonic), s.Fragment.ID)
			notes = append(notes, s.Notes...)
		}
		assert.NotEmpty(notes)
		assert.LessOrEqual(totalBeats(notes), 8+1e-9)
	}
}

func TestAlteredDialOnDominantVampFillsWithAlteredFragments(t *testing.T) {
	p := progression(48, "F7")
	for seed := int64(0); seed < 20; seed++ {
		segments, err := newGenerator(fragment.Default(), seed).Segments(p, model.StyleWeights{Altered: 100})

		assert := assert.New(t)
		assert.Nil(err)
		var beats float64
		for _, s := range segments {
			assert.True(s.Fragment.HasTag(model.TagAltered), s.Fragment.ID)
			beats += s.Fragment.DurationBeats
		}
		// no early stop
		assert.InDelta(48, beats, 1e-9)
	}
}

func TestStopsExactlyAtTheEndOfTheBar(t *testing.T) {
	lib := fragment.New(
		model.Fragment{ID: "one", Pattern: []model.PatternElement{model.Degree(0)}, Rhythm: []model.Duration{model.Quarter}, Tags: []model.Tag{model.TagDiatonic}, DurationBeats: 1},
		model.Fragment{ID: "two", Pattern: []model.PatternElement{model.Degree(0)}, Rhythm: []model.Duration{model.Half}, Tags: []model.Tag{model.TagDiatonic}, DurationBeats: 2},
		model.Fragment{ID: "three", Pattern: []model.PatternElement{model.Degree(0), model.Degree(2)}, Rhythm: []model.Duration{model.Half, model.Quarter}, Tags: []model.Tag{model.TagDiatonic}, DurationBeats: 3},
		model.Fragment{ID: "four", Pattern: []model.PatternElement{model.Degree(0), model.Degree(4)}, Rhythm: []model.Duration{model.Half, model.Half}, Tags: []model.Tag{model.TagDiatonic}, DurationBeats: 4},
	)
	p := progression(4, "Cmaj7")
	for seed := int64(0); seed < 50; seed++ {
		notes, err := newGenerator(lib, seed).Generate(p, model.StyleWeights{})
		assert.Nil(t, err)
		assert.InDelta(t, 4, totalBeats(notes), 1e-9)
	}
}

func TestUnknownChordYieldsNothing(t *testing.T) {
	notes, err := newGenerator(fragment.Default(), 1).Generate(progression(8, "Xmaj99"), model.StyleWeights{Bebop: 50})

	assert := assert.New(t)
	assert.Nil(err)
	assert.NotNil(notes)
	assert.Empty(notes)
}

func TestUnknownChordIsSkippedButGenerationContinues(t *testing.T) {
	lib := fragment.New(model.Fragment{
		ID: "root", Pattern: []model.PatternElement{model.Degree(0)}, Rhythm: []model.Duration{model.Quarter},
		Tags: []model.Tag{model.TagDiatonic}, DurationBeats: 1,
	})
	notes, err := newGenerator(lib, 1).Generate(progression(6, "Dm7", "Xmaj99", "Cmaj7"), model.StyleWeights{})

	assert := assert.New(t)
	assert.Nil(err)
	var symbols []string
	for _, n := range notes {
		symbols = append(symbols, n.Chord.Symbol)
	}
	assert.Equal([]string{"Dm7", "Dm7", "Cmaj7", "Cmaj7"}, symbols)
}

func TestEmptyInputsReturnEmptyLicks(t *testing.T) {
	g := newGenerator(fragment.Default(), 1)

	assert := assert.New(t)
	notes, err := g.Generate(progression(0, "Dm7", "G7"), model.StyleWeights{})
	assert.Nil(err)
	assert.Equal([]model.Note{}, notes)

	notes, err = g.Generate(progression(8), model.StyleWeights{})
	assert.Nil(err)
	assert.Equal([]model.Note{}, notes)
}

func TestNoFitStopsEarlyWithPartialOutput(t *testing.T) {
	lib := fragment.New(model.Fragment{
		ID: "three", Pattern: []model.PatternElement{model.Degree(0)}, Rhythm: []model.Duration{model.Quarter},
		Tags: []model.Tag{model.TagDiatonic}, DurationBeats: 3,
	})
	notes, err := newGenerator(lib, 1).Generate(progression(8, "Cmaj7"), model.StyleWeights{})

	assert := assert.New(t)
	assert.Nil(err)
	// two fragments fit in 8 beats, the third would not
	assert.Len(notes, 2)
}

func TestInvalidWeightsAreRejected(t *testing.T) {
	cases := []model.StyleWeights{
		{Bebop: -1}, {Blues: 101}, {Altered: 250},
	}
	for _, w := range cases {
		t.Run(fmt.Sprintf("%+v", w), func(t *testing.T) {
			notes, err := newGenerator(fragment.Default(), 1).Generate(progression(8, "G7"), w)

			assert := assert.New(t)
			assert.Nil(notes)
			assert.True(errors.Is(err, ErrInvalidWeights))
			assert.True(errors.Is(err, model.ErrWeightOutOfRange))
		})
	}
}

func TestFixedRandomSourceIsDeterministic(t *testing.T) {
	p := progression(16, "Bm7b5", "E7", "Am7")
	w := model.StyleWeights{Bebop: 70, Blues: 40, Altered: 60}

	first, err := New(fragment.Default(), &fixedSource{values: []int{3, 1, 4, 1, 5, 9, 2, 6}}).Generate(p, w)
	assert.Nil(t, err)
	second, err := New(fragment.Default(), &fixedSource{values: []int{3, 1, 4, 1, 5, 9, 2, 6}}).Generate(p, w)
	assert.Nil(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestChordChangesFollowTheSchedule(t *testing.T) {
	lib := fragment.New(model.Fragment{
		ID: "root", Pattern: []model.PatternElement{model.Degree(0)}, Rhythm: []model.Duration{model.Quarter},
		Tags: []model.Tag{model.TagDiatonic}, DurationBeats: 1,
	})
	symbolsOf := func(notes []model.Note) []string {
		var res []string
		for _, n := range notes {
			res = append(res, n.Chord.Symbol)
		}
		return res
	}

	assert := assert.New(t)

	// two beats per chord unless told otherwise, cycling the progression
	notes, err := newGenerator(lib, 1).Generate(progression(8, "Dm7", "G7", "Cmaj7"), model.StyleWeights{})
	assert.Nil(err)
	assert.Equal([]string{"Dm7", "Dm7", "G7", "G7", "Cmaj7", "Cmaj7", "Dm7", "Dm7"}, symbolsOf(notes))

	mixed := progression(8, "Dm7", "G7", "Cmaj7")
	mixed.ChordBeats = []float64{4, 2, 2}
	notes, err = newGenerator(lib, 1).Generate(mixed, model.StyleWeights{})
	assert.Nil(err)
	assert.Equal([]string{"Dm7", "Dm7", "Dm7", "Dm7", "G7", "G7", "Cmaj7", "Cmaj7"}, symbolsOf(notes))
}

func TestGeneratedLicksHoldTheirInvariants(t *testing.T) {
	progressions := []model.Progression{
		progression(8, "Dm7", "G7", "Cmaj7"),
		progression(16, "Bm7b5", "E7", "Am7"),
		progression(48, "F7", "Bb7", "F7", "C7"),
		progression(7, "Ebmaj7", "Xmaj99", "Ab7"),
		progression(3.5, "G7"),
	}
	rnd := rand.New(rand.NewSource(42))
	valid := map[model.Duration]bool{}
	for _, d := range model.Durations() {
		valid[d] = true
	}

	for i := 0; i < 200; i++ {
		p := progressions[i%len(progressions)]
		w := model.StyleWeights{Bebop: rnd.Intn(101), Blues: rnd.Intn(101), Altered: rnd.Intn(101)}
		if i%3 == 0 {
			w.Altered = 0
		}
		segments, err := newGenerator(fragment.Default(), int64(i)).Segments(p, w)
		assert.Nil(t, err)

		var notes []model.Note
		for _, s := range segments {
			if s.Fragment.HasTag(model.TagAltered) {
				assert.Equal(t, model.Dominant, s.Chord.Quality, "altered fragment over %v", s.Chord.Symbol)
			}
			notes = append(notes, s.Notes...)
		}
		assert.LessOrEqual(t, totalBeats(notes), p.TotalBeats+1e-9)

		chords := map[string]bool{}
		for _, c := range p.Chords {
			chords[c.Symbol] = true
		}
		for _, n := range notes {
			assert.True(t, n.Pitch.Class.Valid())
			assert.True(t, valid[n.Duration], string(n.Duration))
			assert.True(t, chords[n.Chord.Symbol])
		}
	}
}

func TestPackageGenerateUsesTheDefaultCatalog(t *testing.T) {
	notes, err := Generate(progression(8, "Dm7", "G7", "Cmaj7"), model.StyleWeights{Bebop: 50}, rand.New(rand.NewSource(9)))
	assert.Nil(t, err)
	assert.NotEmpty(t, notes)
}
