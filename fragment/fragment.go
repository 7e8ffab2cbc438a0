package fragment

import (
	"sort"
	"sync"

	"github.com/caltim3/Beboptionary/model"
)

// tolerance for comparing beat totals that involve triplets
const beatEpsilon = 1e-9

// Library is an immutable catalog of fragments. Build one with New and pass
// it to whatever needs it; Default returns the built-in catalog.
type Library struct {
	fragments []model.Fragment
}

// New copies frags into a Library ordered by ID.
func New(frags ...model.Fragment) *Library {
	l := &Library{fragments: make([]model.Fragment, len(frags))}
	copy(l.fragments, frags)
	sort.SliceStable(l.fragments, func(i, j int) bool {
		return l.fragments[i].ID < l.fragments[j].ID
	})
	return l
}

func (l *Library) Len() int {
	return len(l.fragments)
}

// All returns a copy of the catalog.
func (l *Library) All() []model.Fragment {
	res := make([]model.Fragment, len(l.fragments))
	copy(res, l.fragments)
	return res
}

// FittingAtMost returns the fragments no longer than beats.
func (l *Library) FittingAtMost(beats float64) []model.Fragment {
	var res []model.Fragment
	for _, f := range l.fragments {
		if f.DurationBeats > 0 && f.DurationBeats <= beats+beatEpsilon {
			res = append(res, f)
		}
	}
	return res
}

// Get finds a fragment by ID.
func (l *Library) Get(id string) (model.Fragment, bool) {
	for _, f := range l.fragments {
		if f.ID == id {
			return f, true
		}
	}
	return model.Fragment{}, false
}

var (
	defaultOnce    sync.Once
	defaultLibrary *Library
)

// Default is the built-in catalog. It is built on first use and never
// modified afterwards, so it is safe to share between goroutines.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLibrary = New(catalog()...)
	})
	return defaultLibrary
}
