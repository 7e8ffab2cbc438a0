package cmd

import (
	"fmt"

	"github.com/caltim3/Beboptionary/midi"
	"github.com/caltim3/Beboptionary/notation"
	"github.com/spf13/cobra"
)

var (
	inspectFrom  float64
	inspectCount int
)

func init() {
	inspectCmd.Flags().Float64Var(&inspectFrom, "from", 0, "first beat to print")
	inspectCmd.Flags().IntVarP(&inspectCount, "count", "n", 0, "number of notes to print, 0 prints all")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE.mid",
	Short: "Inspects an exported lick",
	Long:  `Reads a MIDI file written by generate --midi and prints its notes`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	notes, tempo, err := midi.Decode(s)
	if err != nil {
		return err
	}

	fmt.Printf("tempo: %v\n", tempo)
	fmt.Printf("notes: %v\n", len(notes))
	for _, n := range midi.Excerpt(notes, inspectFrom, inspectCount) {
		duration := string(n.Duration)
		if duration == "" {
			duration = fmt.Sprintf("%.3f beats", n.Beats)
		}
		fmt.Printf("%6.2f  %-4v %v\n", n.Start, notation.Spell(n.Pitch, false), duration)
	}
	return nil
}
