package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/caltim3/Beboptionary/constants"
	"github.com/caltim3/Beboptionary/db"
	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/progression"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type lickArchive interface {
	SaveLick(ctx context.Context, res model.GenerateResponse) (string, error)
	GetLick(ctx context.Context, id string) (model.GenerateResponse, error)
}

// nil when serving without --archive
var archive lickArchive

var serveArchive bool

// Sliders in the browser fire a request per tick, so generated licks are
// logged once per burst.
var bursts = newBurstLogger(750 * time.Millisecond)

func init() {
	serveCmd.Flags().BoolVar(&serveArchive, "archive", false, "archive every generated lick in DynamoDB")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the lick API",
	Long:  `Serves the lick API on PORT`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveArchive {
			a, err := db.NewArchive()
			if err != nil {
				return err
			}
			SetArchive(a)
		}
		return serve()
	},
}

type burstLogger struct {
	count    int64
	debounce func(f func())
}

func newBurstLogger(after time.Duration) *burstLogger {
	return &burstLogger{debounce: debounce.New(after)}
}

func (b *burstLogger) add(progression string) {
	atomic.AddInt64(&b.count, 1)
	b.debounce(func() {
		n := atomic.SwapInt64(&b.count, 0)
		log.WithFields(log.Fields{
			"function":    "serve",
			"licks":       n,
			"progression": progression,
		}).Info("generated licks")
	})
}

// SetArchive enables GET /licks/{id} and saving of generated licks.
func SetArchive(a lickArchive) {
	archive = a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(log.Fields{"function": "writeJSON"}).Error(err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var input model.GenerateRequestBody
	if len(reqBody) > 0 {
		if err := json.Unmarshal(reqBody, &input); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("Could not unmarshal request body: "+err.Error()))
			return
		}
	}

	g, err := generateLick(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if archive != nil {
		if _, err := archive.SaveLick(r.Context(), g.response); err != nil {
			log.WithFields(log.Fields{
				"function": "HandleGenerate",
				"id":       g.response.Id,
			}).Warn("could not archive lick: ", err)
		}
	}
	bursts.add(g.response.Progression)

	writeJSON(w, http.StatusOK, g.response)
}

func HandlePresets(w http.ResponseWriter, r *http.Request) {
	res := make([]model.PresetResult, 0)
	for _, p := range progression.Presets() {
		prog, err := p.Progression(0)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		chords := make([]string, len(prog.Chords))
		beats := make([]float64, len(prog.Chords))
		for i, c := range prog.Chords {
			chords[i] = c.Symbol
			beats[i] = prog.BeatsFor(i)
		}
		res = append(res, model.PresetResult{
			Name:       p.Name,
			Title:      p.Title,
			Chords:     chords,
			ChordBeats: beats,
			TotalBeats: prog.TotalBeats,
		})
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleGetLick(w http.ResponseWriter, r *http.Request) {
	if archive == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("lick archive is disabled"))
		return
	}

	id := mux.Vars(r)["id"]
	res, err := archive.GetLick(r.Context(), id)
	if errors.Is(err, db.ErrLickNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// NewRouter wires the API routes behind a permissive CORS policy for the
// browser front end.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/presets", HandlePresets).Methods("GET")
	router.HandleFunc("/licks/{id}", HandleGetLick).Methods("GET")
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}

func serve() error {
	addr := ":" + constants.GetPort()
	log.WithFields(log.Fields{
		"function": "serve",
		"archive":  archive != nil,
	}).Info("listening on ", addr)
	return http.ListenAndServe(addr, NewRouter())
}
