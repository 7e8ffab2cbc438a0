package constants

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LICK_TABLE", "DYNAMODB_ENDPOINT", "AWS_REGION", "DEFAULT_TEMPO"} {
		t.Setenv(key, "")
	}

	assert := assert.New(t)
	assert.Equal("8080", GetPort())
	assert.Equal(log.InfoLevel, GetLogLevel())
	assert.Equal("beboptionary-licks", GetLickTable())
	assert.Equal("http://localhost:8000", GetDynamoEndpoint())
	assert.Equal("localhost", GetRegion())
	assert.Equal(120, GetDefaultTempo())
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LICK_TABLE", "licks-test")
	t.Setenv("DEFAULT_TEMPO", "180")

	assert := assert.New(t)
	assert.Equal("9000", GetPort())
	assert.Equal(log.DebugLevel, GetLogLevel())
	assert.Equal("licks-test", GetLickTable())
	assert.Equal(180, GetDefaultTempo())
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("DEFAULT_TEMPO", "-4")

	assert.Equal(t, log.InfoLevel, GetLogLevel())
	assert.Equal(t, 120, GetDefaultTempo())
}
