package cmd

import (
	"github.com/caltim3/Beboptionary/constants"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beboptionary",
	Short: "Jazz lick generator",
	Long: `Beboptionary strings together bebop, blues and altered vocabulary
over a chord progression and renders it as notation, playback timing or MIDI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(constants.GetLogLevel())
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
