package progression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caltim3/Beboptionary/chord"
	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/theory"
	"github.com/caltim3/Beboptionary/util"
	log "github.com/sirupsen/logrus"
)

const (
	chordSeparator    = "-"
	durationSeparator = ":"
)

type Preset struct {
	Name       string
	Title      string
	Chords     string
	Key        string
	Measures   int
	ChordBeats []float64
}

var presets = map[string]Preset{
	"ii-v-i": {
		Name:     "ii-v-i",
		Title:    "ii-V-I in C",
		Key:      "C",
		Chords:   "Dm7-G7-Cmaj7",
		Measures: 2,
	},
	"minor-ii-v-i": {
		Name:     "minor-ii-v-i",
		Title:    "Minor ii-V-i in A",
		Key:      "C",
		Chords:   "Bm7b5-E7-Am7",
		Measures: 2,
	},
	"blues": {
		Name:       "blues",
		Title:      "12-Bar Blues in F",
		Key:        "F",
		Chords:     "F7-Bb7-F7-Bb7-F7-C7-Bb7-F7-C7",
		Measures:   12,
		ChordBeats: []float64{4, 4, 8, 8, 8, 4, 4, 4, 4},
	},
	"f7-vamp": {
		Name:     "f7-vamp",
		Title:    "F7 Vamp",
		Key:      "F",
		Chords:   "F7",
		Measures: 12,
	},
	"turnaround": {
		Name:     "turnaround",
		Title:    "I-VI-ii-V in Bb",
		Key:      "Bb",
		Chords:   "Bbmaj7-G7-Cm7-F7",
		Measures: 2,
	},
}

// Presets lists the built-in progressions by name.
func Presets() []Preset {
	res := make([]Preset, 0, len(presets))
	for _, name := range util.GetKeys(presets) {
		res = append(res, presets[name])
	}
	return res
}

func GetPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Progression builds the preset, optionally stretched or cut to measures.
func (p Preset) Progression(measures int) (model.Progression, error) {
	if measures <= 0 {
		measures = p.Measures
	}
	prog, err := Parse(p.Chords, measures)
	if err != nil {
		return prog, err
	}
	prog.Name = p.Name
	if p.Key != "" {
		key, _, err := theory.ParsePitchClass(p.Key)
		if err != nil {
			return prog, fmt.Errorf("preset %v: %w", p.Name, err)
		}
		prog.Key = key
	}
	if len(p.ChordBeats) > 0 {
		prog.ChordBeats = append([]float64(nil), p.ChordBeats...)
	}
	return prog, nil
}

// Parse reads a dash separated progression such as "Dm7-G7-Cmaj7". A chord
// may carry its length in beats, "F7:8-Bb7:4". Unrecognized chord symbols
// are kept so the lick simply rests over them. measures sets the total
// length; when it is 0 the length is the sum of the chord lengths.
func Parse(s string, measures int) (model.Progression, error) {
	var prog model.Progression
	if strings.TrimSpace(s) == "" {
		return prog, fmt.Errorf("empty progression")
	}
	if measures < 0 {
		return prog, fmt.Errorf("measures must not be negative, got %d", measures)
	}
	prog.Name = s

	var scheduled bool
	for _, token := range strings.Split(s, chordSeparator) {
		symbol := strings.TrimSpace(token)
		beats := model.DefaultChordBeats
		if i := strings.Index(symbol, durationSeparator); i >= 0 {
			parsed, err := strconv.ParseFloat(symbol[i+1:], 64)
			if err != nil || parsed <= 0 {
				return prog, fmt.Errorf("invalid chord length in %q", token)
			}
			beats = parsed
			symbol = symbol[:i]
			scheduled = true
		}
		if symbol == "" {
			return prog, fmt.Errorf("empty chord in progression %q", s)
		}

		c, err := chord.Parse(symbol)
		if err != nil {
			log.WithFields(log.Fields{
				"function": "progression.Parse",
				"chord":    symbol,
			}).Warn("unknown chord, the lick will rest over it")
			c = chord.Lookup(symbol)
		} else {
			prog.Key = c.Root
		}
		prog.Chords = append(prog.Chords, c)
		prog.ChordBeats = append(prog.ChordBeats, beats)
	}
	if measures > 0 {
		prog.TotalBeats = float64(measures) * model.BeatsPerMeasure
	} else {
		prog.TotalBeats = util.Sum(prog.ChordBeats)
	}
	if !scheduled {
		prog.ChordBeats = nil
	}
	return prog, nil
}

// Resolve accepts either a preset name or a progression string.
func Resolve(nameOrChords string, measures int) (model.Progression, error) {
	if p, ok := GetPreset(nameOrChords); ok {
		return p.Progression(measures)
	}
	return Parse(nameOrChords, measures)
}
