package model

import "fmt"

type ElementKind uint8

const (
	ScaleDegreeElement ElementKind = iota
	IntervalElement
	EnclosureElement
	ExpansionElement
)

func (k ElementKind) String() string {
	switch k {
	case ScaleDegreeElement:
		return "degree"
	case IntervalElement:
		return "interval"
	case EnclosureElement:
		return "enclosure"
	case ExpansionElement:
		return "expansion"
	}
	return fmt.Sprintf("element(%d)", uint8(k))
}

type StepKind uint8

const (
	// StepTarget lands on the enclosure target itself.
	StepTarget StepKind = iota
	// StepChromatic moves Offset semitones from the target.
	StepChromatic
	// StepDiatonic moves Offset scale steps from the target.
	StepDiatonic
)

// RelativeStep is one note of an enclosure, expressed relative to its target.
type RelativeStep struct {
	Kind   StepKind
	Offset int
}

func Target() RelativeStep {
	return RelativeStep{Kind: StepTarget}
}

func Chromatic(semitones int) RelativeStep {
	return RelativeStep{Kind: StepChromatic, Offset: semitones}
}

func Diatonic(steps int) RelativeStep {
	return RelativeStep{Kind: StepDiatonic, Offset: steps}
}

// Enclosure approaches a chord tone (1, 3, 5 or 7) from neighboring tones.
type Enclosure struct {
	Target int
	Steps  []RelativeStep
}

// PatternElement is a closed variant; Kind decides which of the remaining
// fields is meaningful.
type PatternElement struct {
	Kind      ElementKind
	Degree    int
	Interval  string
	Enclosure Enclosure
	Expansion string
}

// Degree is a 0-indexed scale degree. Values past the octave (or below the
// root) select the same degree in a neighboring octave.
func Degree(n int) PatternElement {
	return PatternElement{Kind: ScaleDegreeElement, Degree: n}
}

// Interval is a named interval above the chord root, e.g. "b9" or "major-third".
func Interval(name string) PatternElement {
	return PatternElement{Kind: IntervalElement, Interval: name}
}

func Enclose(target int, steps ...RelativeStep) PatternElement {
	return PatternElement{Kind: EnclosureElement, Enclosure: Enclosure{Target: target, Steps: steps}}
}

// Expand names a scale run such as "bebop-dominant".
func Expand(keyword string) PatternElement {
	return PatternElement{Kind: ExpansionElement, Expansion: keyword}
}

func (e PatternElement) String() string {
	switch e.Kind {
	case ScaleDegreeElement:
		return fmt.Sprintf("%d", e.Degree)
	case IntervalElement:
		return e.Interval
	case EnclosureElement:
		return fmt.Sprintf("enclose(%d, %d steps)", e.Enclosure.Target, len(e.Enclosure.Steps))
	case ExpansionElement:
		return e.Expansion
	}
	return e.Kind.String()
}

type Tag = string

const (
	TagBebop      Tag = "bebop"
	TagBlues      Tag = "blues"
	TagAltered    Tag = "altered"
	TagDiatonic   Tag = "diatonic"
	TagScale      Tag = "scale"
	TagArpeggio   Tag = "arpeggio"
	TagChromatic  Tag = "chromatic"
	TagEnclosure  Tag = "enclosure"
	TagPentatonic Tag = "pentatonic"
)

// Fragment is a reusable melodic cell from the catalog.
type Fragment struct {
	ID            string
	Description   string
	Pattern       []PatternElement
	Rhythm        []Duration
	Tags          []Tag
	DurationBeats float64
}

func (f Fragment) HasTag(tag Tag) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
