package theory

import (
	"fmt"
	"strings"
)

// interval names, shorthand and spelled out, to semitones above the root
var intervals = map[string]int{
	"1p": 0, "p1": 0, "1": 0, "unison": 0, "root": 0,
	"b2": 1, "m2": 1, "minor-second": 1,
	"2": 2, "M2": 2, "major-second": 2,
	"b3": 3, "m3": 3, "#2": 3, "minor-third": 3,
	"3": 4, "M3": 4, "major-third": 4,
	"4": 5, "p4": 5, "perfect-fourth": 5,
	"#4": 6, "b5": 6, "tritone": 6,
	"5": 7, "p5": 7, "perfect-fifth": 7,
	"#5": 8, "b6": 8, "m6": 8, "minor-sixth": 8,
	"6": 9, "M6": 9, "major-sixth": 9,
	"b7": 10, "m7": 10, "minor-seventh": 10,
	"7": 11, "M7": 11, "major-seventh": 11,
	"8": 12, "p8": 12, "octave": 12,
	"b9": 13, "m9": 13, "minor-ninth": 13, "flat-ninth": 13,
	"9": 14, "M9": 14, "major-ninth": 14,
	"#9": 15, "a9": 15, "sharp-ninth": 15,
	"11": 17, "p11": 17, "eleventh": 17,
	"#11": 18, "a11": 18, "sharp-eleventh": 18,
	"b13": 20, "m13": 20, "flat-thirteenth": 20,
	"13": 21, "M13": 21, "thirteenth": 21,
}

// IntervalSemitones resolves an interval name. Quality prefixes follow the
// usual convention: "M3" is a major third and "m3" a minor one; other
// names are matched case-insensitively ("1P", "p5", "Minor-Ninth").
func IntervalSemitones(name string) (int, error) {
	trimmed := strings.TrimSpace(name)
	if st, ok := intervals[trimmed]; ok {
		return st, nil
	}
	if st, ok := intervals[strings.ToLower(trimmed)]; ok {
		return st, nil
	}
	return 0, fmt.Errorf("unknown interval: %q", name)
}
