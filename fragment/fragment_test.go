package fragment_test

import (
	"math"
	"testing"

	"github.com/caltim3/Beboptionary/chord"
	"github.com/caltim3/Beboptionary/fragment"
	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/translate"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestCatalogFragmentsMatchTheirDeclaredLength(t *testing.T) {
	logger, hook := test.NewNullLogger()
	tr := translate.New(logger)

	for _, f := range fragment.Default().All() {
		for _, symbol := range []string{"Cmaj7", "Dm7", "G7", "Bm7b5"} {
			notes := tr.Fragment(f, chord.Lookup(symbol))
			var beats float64
			for _, n := range notes {
				beats += n.Beats()
			}
			assert.InDelta(t, f.DurationBeats, beats, 1e-9, "%v over %v", f.ID, symbol)
		}
	}
	assert.Empty(t, hook.Entries)
}

func TestCatalogPitchesOverF7(t *testing.T) {
	logger, hook := test.NewNullLogger()
	tr := translate.New(logger)
	f7 := chord.Lookup("F7")

	cases := map[string][]int{
		"diatonic-run-down":       {65, 75, 74, 72, 70, 69, 67, 65},
		"chromatic-approach-root": {75, 67, 65},
		"blues-pentatonic":        {65, 68, 72, 74, 75},
	}
	for id, expected := range cases {
		t.Run(id, func(t *testing.T) {
			f, ok := fragment.Default().Get(id)
			assert.True(t, ok)

			var midis []int
			for _, n := range tr.Fragment(f, f7) {
				midis = append(midis, n.Pitch.MIDI())
			}
			assert.Equal(t, expected, midis)
		})
	}
	assert.Empty(t, hook.Entries)
}

func TestCatalogCoversEveryLengthUpToABar(t *testing.T) {
	lengths := map[float64]bool{}
	ids := map[string]bool{}
	for _, f := range fragment.Default().All() {
		lengths[f.DurationBeats] = true
		assert.False(t, ids[f.ID], "duplicate id %v", f.ID)
		ids[f.ID] = true
	}
	for _, beats := range []float64{1, 2, 3, 4} {
		assert.True(t, lengths[beats], "no %v beat fragment", beats)
	}
}

func TestFittingAtMost(t *testing.T) {
	lib := fragment.New(
		model.Fragment{ID: "one", DurationBeats: 1},
		model.Fragment{ID: "two", DurationBeats: 2},
		model.Fragment{ID: "three", DurationBeats: 3},
		model.Fragment{ID: "four", DurationBeats: 4},
	)

	ids := func(frags []model.Fragment) []string {
		var res []string
		for _, f := range frags {
			res = append(res, f.ID)
		}
		return res
	}

	assert := assert.New(t)
	assert.Equal(4, lib.Len())
	assert.Empty(lib.FittingAtMost(0))
	assert.Empty(lib.FittingAtMost(0.5))
	assert.ElementsMatch([]string{"one", "two"}, ids(lib.FittingAtMost(2)))
	assert.ElementsMatch([]string{"one", "two", "three", "four"}, ids(lib.FittingAtMost(math.Inf(1))))
}

func TestLibraryIsNotMutatedThroughAll(t *testing.T) {
	lib := fragment.New(model.Fragment{ID: "one", DurationBeats: 1})
	all := lib.All()
	all[0].ID = "changed"

	f, ok := lib.Get("one")
	assert.True(t, ok)
	assert.Equal(t, "one", f.ID)
}

func TestDefaultIsBuiltOnce(t *testing.T) {
	assert.Same(t, fragment.Default(), fragment.Default())
}
