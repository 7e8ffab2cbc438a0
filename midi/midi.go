package midi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/notation"
	"github.com/caltim3/Beboptionary/playback"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 960
	channel         = 0
	velocity        = 100
	trackName       = "Beboptionary lick"
)

func ticks(clock smf.MetricTicks, beats float64) uint32 {
	return uint32(math.Round(float64(clock) * beats))
}

// Encode writes a lick as a single track SMF at tempo, with a marker naming
// the chord wherever it changes.
func Encode(notes []model.Note, tempo float64) (*smf.SMF, error) {
	if tempo <= 0 {
		return nil, fmt.Errorf("%w, got %v", playback.ErrInvalidTempo, tempo)
	}
	clock := smf.MetricTicks(TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(trackName))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(tempo))

	changes := map[int]bool{}
	for _, i := range notation.ChordChanges(notes) {
		changes[i] = true
	}
	for i, n := range notes {
		key := n.Pitch.MIDI()
		if key < 0 || key > 127 {
			return nil, fmt.Errorf("note %d is outside the MIDI range: %d", i, key)
		}
		if changes[i] {
			tr.Add(0, smf.MetaMarker(n.Chord.Symbol))
		}
		tr.Add(0, gomidi.NoteOn(channel, uint8(key), velocity))
		tr.Add(ticks(clock, n.Beats()), gomidi.NoteOff(channel, uint8(key)))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s, nil
}

func WriteLick(w io.Writer, notes []model.Note, tempo float64) error {
	s, err := Encode(notes, tempo)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteLickFile(path string, notes []model.Note, tempo float64) error {
	buf := new(bytes.Buffer)
	if err := WriteLick(buf, notes, tempo); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write lick file: %w", err)
	}
	return nil
}

// ReadMidiFile loads an exported lick. Malformed files can make smf panic
// (https://github.com/gomidi/midi/issues/20); that is reported as an error.
func ReadMidiFile(path string) (s *smf.SMF, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("could not parse %v: %v", path, r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read lick file: %w", err)
	}
	s, err = smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("could not parse %v: %w", path, err)
	}
	return s, nil
}

// DecodedNote is a note read back from a file. Duration is empty when the
// length matches no duration token.
type DecodedNote struct {
	Pitch    model.Pitch
	Duration model.Duration
	Start    float64
	Beats    float64
}

func durationFor(beats float64) model.Duration {
	for _, d := range model.Durations() {
		if math.Abs(d.Beats()-beats) < 1e-3 {
			return d
		}
	}
	return ""
}

// Decode pairs note on/off events back into notes, ordered by start time.
// The tempo is 0 when the file carries no tempo event.
func Decode(s *smf.SMF) ([]DecodedNote, float64, error) {
	clock, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, 0, fmt.Errorf("unsupported time format: %v", s.TimeFormat)
	}

	var res []DecodedNote
	var tempo float64
	for _, track := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]int64)
		for _, event := range track {
			absTicks += int64(event.Delta)
			var ch, key, vel uint8
			var bpm float64
			switch {
			case event.Message.GetMetaTempo(&bpm):
				if tempo == 0 {
					tempo = bpm
				}
			case event.Message.GetNoteOn(&ch, &key, &vel) && vel > 0:
				pressed[key] = absTicks
			case event.Message.GetNoteOff(&ch, &key, &vel), event.Message.GetNoteOn(&ch, &key, &vel):
				start, ok := pressed[key]
				if !ok {
					continue
				}
				delete(pressed, key)
				beats := float64(absTicks-start) / float64(clock)
				res = append(res, DecodedNote{
					Pitch:    model.PitchFromMIDI(int(key)),
					Duration: durationFor(beats),
					Start:    float64(start) / float64(clock),
					Beats:    beats,
				})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Start < res[j].Start
	})
	return res, tempo, nil
}
