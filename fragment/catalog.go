package fragment

import "github.com/caltim3/Beboptionary/model"

func rhythm(durations ...model.Duration) []model.Duration {
	return durations
}

func eighths(n int) []model.Duration {
	res := make([]model.Duration, n)
	for i := range res {
		res[i] = model.Eighth
	}
	return res
}

// Scale degrees are 0-indexed and wrap, so Degree(0) and Degree(7) are both
// the root and Degree(-1) is the seventh above it. Degree(8) and beyond sound
// an octave up. Interval names are measured from the chord root.
func catalog() []model.Fragment {
	return []model.Fragment{
		{
			ID:            "diatonic-run-down",
			Description:   "Diatonic Scale Run Down",
			Pattern:       []model.PatternElement{model.Degree(7), model.Degree(6), model.Degree(5), model.Degree(4), model.Degree(3), model.Degree(2), model.Degree(1), model.Degree(0)},
			Rhythm:        eighths(8),
			Tags:          []model.Tag{model.TagDiatonic, model.TagScale},
			DurationBeats: 4,
		},
		{
			ID:            "arpeggio-1357",
			Description:   "Arpeggio 1-3-5-7",
			Pattern:       []model.PatternElement{model.Degree(0), model.Degree(2), model.Degree(4), model.Degree(6)},
			Rhythm:        eighths(4),
			Tags:          []model.Tag{model.TagDiatonic, model.TagArpeggio},
			DurationBeats: 2,
		},
		{
			ID:          "bebop-enclosure-third",
			Description: "Bebop Enclosure on the 3rd",
			Pattern: []model.PatternElement{
				model.Enclose(3, model.Diatonic(1), model.Chromatic(-1), model.Target(), model.Diatonic(-1)),
			},
			Rhythm:        rhythm(model.Sixteenth, model.Sixteenth, model.Sixteenth, model.Sixteenth),
			Tags:          []model.Tag{model.TagBebop, model.TagChromatic, model.TagEnclosure},
			DurationBeats: 1,
		},
		{
			ID:            "bebop-scale-fragment",
			Description:   "Bebop Scale Fragment (Dominant)",
			Pattern:       []model.PatternElement{model.Degree(8), model.Degree(7), model.Degree(6), model.Degree(5), model.Degree(4), model.Degree(3), model.Degree(2), model.Degree(1)},
			Rhythm:        eighths(8),
			Tags:          []model.Tag{model.TagBebop, model.TagDiatonic, model.TagScale},
			DurationBeats: 4,
		},
		{
			ID:            "blues-pentatonic",
			Description:   "Blues Pentatonic Lick",
			Pattern:       []model.PatternElement{model.Degree(0), model.Interval("b3"), model.Degree(4), model.Degree(5), model.Interval("b7")},
			Rhythm:        rhythm(model.Eighth, model.EighthTriplet, model.EighthTriplet, model.EighthTriplet, model.Eighth),
			Tags:          []model.Tag{model.TagBlues, model.TagPentatonic},
			DurationBeats: 2,
		},
		{
			ID:            "altered-b9-sharp9",
			Description:   "Altered Dominant Lick (b9, #9)",
			Pattern:       []model.PatternElement{model.Interval("b9"), model.Interval("#9"), model.Degree(6), model.Degree(4)},
			Rhythm:        eighths(4),
			Tags:          []model.Tag{model.TagAltered, model.TagBebop},
			DurationBeats: 2,
		},
		{
			ID:            "chromatic-approach-root",
			Description:   "Chromatic Approach to Root",
			Pattern:       []model.PatternElement{model.Degree(-1), model.Degree(1), model.Degree(0)},
			Rhythm:        rhythm(model.Sixteenth, model.Sixteenth, model.Eighth),
			Tags:          []model.Tag{model.TagBebop, model.TagChromatic},
			DurationBeats: 1,
		},
		{
			ID:            "bebop-scale-expansion",
			Description:   "Descending Bebop Scale From the Octave",
			Pattern:       []model.PatternElement{model.Expand("bebop-chord")},
			Rhythm:        eighths(8),
			Tags:          []model.Tag{model.TagBebop, model.TagScale},
			DurationBeats: 4,
		},
		{
			ID:            "bebop-enclosure-fifth",
			Description:   "Triplet Enclosure on the 5th",
			Pattern:       []model.PatternElement{model.Enclose(5, model.Diatonic(1), model.Chromatic(-1), model.Target())},
			Rhythm:        rhythm(model.EighthTriplet, model.EighthTriplet, model.EighthTriplet),
			Tags:          []model.Tag{model.TagBebop, model.TagChromatic, model.TagEnclosure},
			DurationBeats: 1,
		},
		{
			ID:            "altered-resolution",
			Description:   "Altered Tensions Falling to the b9",
			Pattern:       []model.PatternElement{model.Interval("b13"), model.Interval("#9"), model.Interval("b9")},
			Rhythm:        rhythm(model.Sixteenth, model.Sixteenth, model.Eighth),
			Tags:          []model.Tag{model.TagAltered},
			DurationBeats: 1,
		},
		{
			ID:            "altered-diminished",
			Description:   "Half-Whole Diminished Cell",
			Pattern:       []model.PatternElement{model.Interval("b9"), model.Interval("3"), model.Interval("#11"), model.Interval("13")},
			Rhythm:        eighths(4),
			Tags:          []model.Tag{model.TagAltered},
			DurationBeats: 2,
		},
		{
			ID:          "blues-triplet-turn",
			Description: "Blues Triplet Turn",
			Pattern: []model.PatternElement{
				model.Interval("5"), model.Interval("b5"), model.Interval("4"), model.Interval("b3"), model.Interval("4"), model.Interval("b3"), model.Interval("1P"),
			},
			Rhythm:        rhythm(model.EighthTriplet, model.EighthTriplet, model.EighthTriplet, model.EighthTriplet, model.EighthTriplet, model.EighthTriplet, model.Quarter),
			Tags:          []model.Tag{model.TagBlues},
			DurationBeats: 3,
		},
		{
			ID:            "guide-tone-neighbor",
			Description:   "Guide Tone Neighbor",
			Pattern:       []model.PatternElement{model.Degree(2), model.Degree(3), model.Degree(4), model.Degree(2)},
			Rhythm:        rhythm(model.Quarter, model.Eighth, model.Eighth, model.Quarter),
			Tags:          []model.Tag{model.TagDiatonic},
			DurationBeats: 3,
		},
		{
			ID:            "arpeggio-7531",
			Description:   "Descending Arpeggio in Quarters",
			Pattern:       []model.PatternElement{model.Degree(6), model.Degree(4), model.Degree(2), model.Degree(0)},
			Rhythm:        rhythm(model.Quarter, model.Quarter, model.Quarter, model.Quarter),
			Tags:          []model.Tag{model.TagDiatonic, model.TagArpeggio},
			DurationBeats: 4,
		},
		{
			ID:            "diatonic-pickup",
			Description:   "Fifth to Third Pickup",
			Pattern:       []model.PatternElement{model.Degree(4), model.Degree(2)},
			Rhythm:        eighths(2),
			Tags:          []model.Tag{model.TagDiatonic},
			DurationBeats: 1,
		},
	}
}
