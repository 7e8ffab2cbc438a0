package selector

import (
	"errors"
	"sort"

	"github.com/caltim3/Beboptionary/model"
)

// ErrNoFit means no candidate earned a place in the pool.
var ErrNoFit = errors.New("no fragment fits")

// Each full 20 points of weight buys one entry in the selection pool, so a
// weight of 19 is never drawn while 20 is.
const WeightPerCopy = 20

// RandomSource draws uniformly from [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

type Selector struct {
	rnd RandomSource
}

func New(rnd RandomSource) *Selector {
	return &Selector{rnd: rnd}
}

// Eligible reports whether f may be played over c at all. Altered
// vocabulary only belongs on dominant chords.
func Eligible(f model.Fragment, c model.Chord) bool {
	return !f.HasTag(model.TagAltered) || c.Quality == model.Dominant
}

// Weight scores a fragment for the given dials and chord.
func Weight(f model.Fragment, w model.StyleWeights, c model.Chord) int {
	weight := 1
	if f.HasTag(model.TagBebop) {
		weight += w.Bebop
	}
	if f.HasTag(model.TagBlues) {
		weight += w.Blues
	}
	if f.HasTag(model.TagAltered) && c.Quality == model.Dominant {
		weight += w.Altered
	}
	if f.HasTag(model.TagDiatonic) {
		weight += model.MaxStyleWeight - w.Altered
	}
	return weight
}

// Copies is how many pool entries a weight is worth.
func Copies(weight int) int {
	if weight < WeightPerCopy {
		return 0
	}
	return weight / WeightPerCopy
}

// Pool pairs candidates with their running total of copies; drawing r in
// [0, Total) and taking the first entry whose total exceeds r is the same as
// drawing from a pool holding each fragment Copies times.
type Pool struct {
	Fragments  []model.Fragment
	cumulative []int
}

func (p Pool) Total() int {
	if len(p.cumulative) == 0 {
		return 0
	}
	return p.cumulative[len(p.cumulative)-1]
}

func (p Pool) pick(r int) model.Fragment {
	i := sort.Search(len(p.cumulative), func(i int) bool {
		return p.cumulative[i] > r
	})
	return p.Fragments[i]
}

// BuildPool keeps the eligible candidates with at least one copy.
func BuildPool(candidates []model.Fragment, w model.StyleWeights, c model.Chord) Pool {
	var p Pool
	total := 0
	for _, f := range candidates {
		if !Eligible(f, c) {
			continue
		}
		copies := Copies(Weight(f, w, c))
		if copies == 0 {
			continue
		}
		total += copies
		p.Fragments = append(p.Fragments, f)
		p.cumulative = append(p.cumulative, total)
	}
	return p
}

// Choose draws one fragment from the weighted pool, or ErrNoFit when the
// pool is empty.
func (s *Selector) Choose(candidates []model.Fragment, w model.StyleWeights, c model.Chord) (model.Fragment, error) {
	pool := BuildPool(candidates, w, c)
	if pool.Total() == 0 {
		return model.Fragment{}, ErrNoFit
	}
	r := s.rnd.Intn(pool.Total())
	if r < 0 || r >= pool.Total() {
		r = ((r % pool.Total()) + pool.Total()) % pool.Total()
	}
	return pool.pick(r), nil
}
