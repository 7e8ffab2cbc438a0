package constants

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const DefaultLickTable = "beboptionary-licks"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetLogLevel falls back to info when LOG_LEVEL is unset or unparsable.
func GetLogLevel() log.Level {
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func GetLickTable() string {
	table := os.Getenv("LICK_TABLE")
	if table != "" {
		return table
	}
	return DefaultLickTable
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

func GetDefaultTempo() int {
	tempo, err := strconv.Atoi(os.Getenv("DEFAULT_TEMPO"))
	if err != nil || tempo <= 0 {
		return 120
	}
	return tempo
}
