package main

import (
	"github.com/caltim3/Beboptionary/cmd"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// a .env next to the binary may set PORT, LICK_TABLE and friends
	if err := godotenv.Load(); err != nil {
		log.WithFields(log.Fields{"function": "main"}).Debug("no .env file loaded")
	}
	cmd.Execute()
}
