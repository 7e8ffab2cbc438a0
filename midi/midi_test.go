package midi

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/caltim3/Beboptionary/chord"
	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/playback"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func lick() []model.Note {
	g7 := chord.Lookup("G7")
	cmaj7 := chord.Lookup("Cmaj7")
	return []model.Note{
		{Pitch: model.PitchFromMIDI(80), Duration: model.Eighth, Chord: g7},
		{Pitch: model.PitchFromMIDI(82), Duration: model.EighthTriplet, Chord: g7},
		{Pitch: model.PitchFromMIDI(82), Duration: model.EighthTriplet, Chord: g7},
		{Pitch: model.PitchFromMIDI(77), Duration: model.EighthTriplet, Chord: g7},
		{Pitch: model.PitchFromMIDI(64), Duration: model.Quarter, Chord: cmaj7},
		{Pitch: model.PitchFromMIDI(60), Duration: model.Sixteenth, Chord: cmaj7},
	}
}

func TestExportedLickReadsBack(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteLick(buf, lick(), 140)
	assert.Nil(t, err)

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.Nil(t, err)

	decoded, tempo, err := Decode(s)

	assert := assert.New(t)
	assert.Nil(err)
	assert.InDelta(140, tempo, 0.01)
	assert.Len(decoded, len(lick()))
	var at float64
	for i, n := range lick() {
		assert.Equal(n.Pitch, decoded[i].Pitch)
		assert.Equal(n.Duration, decoded[i].Duration)
		assert.InDelta(at, decoded[i].Start, 1e-3)
		at += n.Beats()
	}
}

func TestWriteLickFileAndReadMidiFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lick.mid")
	err := WriteLickFile(path, lick(), 120)
	assert.Nil(t, err)

	s, err := ReadMidiFile(path)
	assert.Nil(t, err)

	decoded, _, err := Decode(s)
	assert.Nil(t, err)
	assert.Len(t, decoded, len(lick()))
}

func TestEncodeRejectsBadInput(t *testing.T) {
	_, err := Encode(lick(), 0)
	assert.True(t, errors.Is(err, playback.ErrInvalidTempo))

	_, err = Encode([]model.Note{{Pitch: model.Pitch{Class: 0, Octave: 10}, Duration: model.Eighth}}, 120)
	assert.NotNil(t, err)
}

func TestReadMidiFileErrors(t *testing.T) {
	dir := t.TempDir()

	s, err := ReadMidiFile(filepath.Join(dir, "nope.mid"))
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	garbage := filepath.Join(dir, "garbage.mid")
	assert.Nil(t, os.WriteFile(garbage, []byte("not a midi file"), 0644))
	s, err = ReadMidiFile(garbage)
	assert.Nil(t, s)
	assert.NotNil(t, err)
}

func TestExcerpt(t *testing.T) {
	buf := new(bytes.Buffer)
	assert.Nil(t, WriteLick(buf, lick(), 120))
	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.Nil(t, err)
	decoded, _, err := Decode(s)
	assert.Nil(t, err)

	assert := assert.New(t)
	assert.Len(Excerpt(decoded, 0, 0), 6)
	assert.Len(Excerpt(decoded, 0, 2), 2)

	// the quarter note on E starts after the eighth and the triplet run
	fromBeat := Excerpt(decoded, 1.5, 0)
	assert.Len(fromBeat, 2)
	assert.Equal(64, fromBeat[0].Pitch.MIDI())
	assert.Len(Excerpt(decoded, 1.5, 10), 2)
	assert.Empty(Excerpt(decoded, 10, 0))
}
