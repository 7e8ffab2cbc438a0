package midi

import "github.com/caltim3/Beboptionary/util"

// Excerpt returns up to max notes starting at or after fromBeat. A max of 0
// keeps everything from fromBeat on. notes must be ordered by start.
func Excerpt(notes []DecodedNote, fromBeat float64, max int) []DecodedNote {
	start := len(notes)
	for i, n := range notes {
		if n.Start >= fromBeat-1e-9 {
			start = i
			break
		}
	}
	res := notes[start:]
	if max > 0 {
		res = res[:util.Min(len(res), max)]
	}
	return res
}
