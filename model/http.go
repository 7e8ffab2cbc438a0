package model

type GenerateRequestBody struct {
	Progression string `json:"progression"`
	Measures    int    `json:"measures"`
	// pointers so a missing dial can be told apart from 0
	Bebop   *int  `json:"bebop"`
	Blues   *int  `json:"blues"`
	Altered *int  `json:"altered"`
	Seed    int64 `json:"seed"`
	Tempo   int   `json:"tempo"`
}

type NoteResult struct {
	Pitch      string  `json:"pitch"`
	Letter     string  `json:"letter"`
	Accidental string  `json:"accidental"`
	Octave     int     `json:"octave"`
	Duration   string  `json:"duration"`
	Triplet    bool    `json:"triplet"`
	Chord      string  `json:"chord"`
	NewChord   bool    `json:"new_chord"`
	Frequency  float64 `json:"frequency"`
	Seconds    float64 `json:"seconds"`
}

type GenerateResponse struct {
	Id          string       `json:"id"`
	Progression string       `json:"progression"`
	Weights     StyleWeights `json:"weights"`
	Tempo       int          `json:"tempo"`
	Seed        int64        `json:"seed"`
	Score       string       `json:"score"`
	TotalBeats  float64      `json:"total_beats"`
	Notes       []NoteResult `json:"notes"`
}

type PresetResult struct {
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Chords     []string  `json:"chords"`
	ChordBeats []float64 `json:"chord_beats"`
	TotalBeats float64   `json:"total_beats"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
