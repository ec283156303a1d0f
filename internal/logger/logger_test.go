package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nip24-client/internal/logger"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logger.New("debug", "text").GetLevel())
	assert.Equal(t, logrus.InfoLevel, logger.New("bogus", "text").GetLevel())
}

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("info", "json", &buf)

	log.WithField("operation", "vat").Info("request done")
	log.Debug("dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request done", entry["msg"])
	assert.Equal(t, "vat", entry["operation"])
	assert.Equal(t, "info", entry["level"])
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Discard().Error("nothing")
	})
}
