package cmd

import (
	"fmt"

	"github.com/caltim3/Beboptionary/progression"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Lists progression presets",
	Long:  `Lists the built-in progressions accepted by --progression`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range progression.Presets() {
			fmt.Printf("%-14s %-20s %v (%v bars)\n", p.Name, p.Title, p.Chords, p.Measures)
		}
	},
}
