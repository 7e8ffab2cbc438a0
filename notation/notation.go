// Package notation prepares licks for a staff/tab renderer: spelled pitches,
// display durations and chord-change markers. It never touches the notes it
// is given.
package notation

import (
	"fmt"
	"strings"

	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/theory"
)

type Spelling struct {
	Letter     string
	Accidental string
	Octave     int
}

func (s Spelling) String() string {
	return fmt.Sprintf("%s%s%d", s.Letter, s.Accidental, s.Octave)
}

// Spell names a pitch as letter, accidental ("#", "b" or "") and octave.
func Spell(p model.Pitch, preferFlats bool) Spelling {
	name := theory.PitchClassName(p.Class, preferFlats)
	return Spelling{Letter: name[:1], Accidental: name[1:], Octave: p.Octave}
}

// Entry is one note as the renderer wants it. ChordSymbol is only set on the
// first note played over each new chord.
type Entry struct {
	Spelling
	Duration    model.Duration
	Triplet     bool
	ChordSymbol string
}

// Render spells notes in key, marking each chord change.
func Render(notes []model.Note, key model.PitchClass) []Entry {
	flats := theory.PrefersFlats(key)
	entries := make([]Entry, len(notes))
	for i, n := range notes {
		entries[i] = Entry{
			Spelling: Spell(n.Pitch, flats),
			Duration: n.Duration.Base(),
			Triplet:  n.Duration.Triplet(),
		}
		if i == 0 || notes[i-1].Chord != n.Chord {
			entries[i].ChordSymbol = n.Chord.Symbol
		}
	}
	return entries
}

// ChordChanges returns the indexes of notes that start a new chord.
func ChordChanges(notes []model.Note) []int {
	var res []int
	for i, n := range notes {
		if i == 0 || notes[i-1].Chord != n.Chord {
			res = append(res, i)
		}
	}
	return res
}

// EasyScore writes entries in the "C#5/8, Bb4/8/t" shorthand understood by
// the score renderer's text parser. Triplets carry a trailing "/t".
func EasyScore(entries []Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		part := fmt.Sprintf("%s/%s", e.Spelling, e.Duration)
		if e.Triplet {
			part += "/t"
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}
