package cmd

import (
	"context"
	"fmt"

	"github.com/caltim3/Beboptionary/db"
	"github.com/caltim3/Beboptionary/midi"
	"github.com/caltim3/Beboptionary/model"
	"github.com/caltim3/Beboptionary/notation"
	"github.com/caltim3/Beboptionary/util"
	"github.com/spf13/cobra"
)

var (
	genProgression string
	genMeasures    int
	genBebop       int
	genBlues       int
	genAltered     int
	genSeed        int64
	genTempo       int
	genMidiPath    string
	genSave        bool
)

func init() {
	generateCmd.Flags().StringVarP(&genProgression, "progression", "p", defaultProgression, "preset name or chords such as Dm7-G7-Cmaj7")
	generateCmd.Flags().IntVarP(&genMeasures, "measures", "m", 0, "length in 4/4 measures, 0 keeps the preset length")
	generateCmd.Flags().IntVar(&genBebop, "bebop", 0, "bebop weight, 0-100")
	generateCmd.Flags().IntVar(&genBlues, "blues", 0, "blues weight, 0-100")
	generateCmd.Flags().IntVar(&genAltered, "altered", 0, "altered weight, 0-100")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed, 0 picks one")
	generateCmd.Flags().IntVarP(&genTempo, "tempo", "t", 0, "tempo in BPM, 0 uses DEFAULT_TEMPO")
	generateCmd.Flags().StringVar(&genMidiPath, "midi", "", "write the lick to this MIDI file")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "archive the lick in DynamoDB")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a lick",
	Long:  `Generates a lick over a preset or a dash separated chord progression.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(model.GenerateRequestBody{
			Progression: genProgression,
			Measures:    genMeasures,
			Bebop:       &genBebop,
			Blues:       &genBlues,
			Altered:     &genAltered,
			Seed:        genSeed,
			Tempo:       genTempo,
		})
	},
}

func generate(req model.GenerateRequestBody) error {
	g, err := generateLick(req)
	if err != nil {
		return err
	}
	res := g.response

	fmt.Printf("progression: %v (%v beats)\n", res.Progression, res.TotalBeats)
	fmt.Printf("weights: bebop %v, blues %v, altered %v\n", res.Weights.Bebop, res.Weights.Blues, res.Weights.Altered)
	fmt.Printf("seed: %v\n", res.Seed)
	fmt.Printf("score: %v\n", res.Score)
	fmt.Println()
	for _, seg := range g.segments {
		entries := notation.Render(seg.Notes, g.progression.Key)
		fmt.Printf("%6.2f  %-8s %-24s %v\n", seg.Start, seg.Chord.Symbol, seg.Fragment.ID, notation.EasyScore(entries))
	}
	filled := util.SumBy(g.notes, model.Note.Beats)
	fmt.Printf("\n%v notes, %.2f of %v beats\n", len(g.notes), filled, res.TotalBeats)

	if genMidiPath != "" {
		if err := midi.WriteLickFile(genMidiPath, g.notes, float64(res.Tempo)); err != nil {
			return err
		}
		fmt.Printf("wrote %v\n", genMidiPath)
	}

	if genSave {
		archive, err := db.NewArchive()
		if err != nil {
			return err
		}
		id, err := archive.SaveLick(context.Background(), res)
		if err != nil {
			return err
		}
		fmt.Printf("saved lick %v\n", id)
	}
	return nil
}
