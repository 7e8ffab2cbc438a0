//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/caltim3/Beboptionary/cmd"
	"github.com/caltim3/Beboptionary/model"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	server = httptest.NewServer(cmd.NewRouter())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func createGenerateReqBody(progression string, bebop, blues, altered int, seed int64) io.Reader {
	req := model.GenerateRequestBody{
		Progression: progression,
		Bebop:       &bebop,
		Blues:       &blues,
		Altered:     &altered,
		Seed:        seed,
		Tempo:       160,
	}
	data, err := json.Marshal(req)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func getPresets(t *testing.T) []model.PresetResult {
	resp, err := http.Get(server.URL + "/presets")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var presets []model.PresetResult
	if err := json.NewDecoder(resp.Body).Decode(&presets); err != nil {
		t.Fatal(err)
	}
	return presets
}

func TestEveryPresetGeneratesE2E(t *testing.T) {
	presets := getPresets(t)
	assert.NotEmpty(t, presets)

	for _, p := range presets {
		t.Run(p.Name, func(t *testing.T) {
			body := createGenerateReqBody(p.Name, 80, 40, 30, 11)
			resp, err := http.Post(server.URL+"/generate", "application/json", body)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			assert := assert.New(t)
			assert.Equal(http.StatusOK, resp.StatusCode)

			var res model.GenerateResponse
			if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}
			assert.Equal(p.TotalBeats, res.TotalBeats)
			assert.NotEmpty(res.Notes)

			var beats float64
			for _, n := range res.Notes {
				d := model.Duration(n.Duration)
				assert.True(d.Valid(), n.Duration)
				assert.Contains(p.Chords, n.Chord)
				beats += d.Beats()
			}
			assert.LessOrEqual(beats, res.TotalBeats+1e-9)
		})
	}
}

func TestSameSeedSameLickE2E(t *testing.T) {
	var scores []string
	for i := 0; i < 2; i++ {
		resp, err := http.Post(server.URL+"/generate", "application/json", createGenerateReqBody("turnaround", 60, 60, 60, 42))
		if err != nil {
			t.Fatal(err)
		}
		var res model.GenerateResponse
		err = json.NewDecoder(resp.Body).Decode(&res)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		scores = append(scores, res.Score)
	}
	assert.Equal(t, scores[0], scores[1])
}

func TestCorsPreflightE2E(t *testing.T) {
	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
