package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/aegis-c9/aegis-cli/internal/config"
)

func TestInitializeRunsOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	sink := &zaptest.Buffer{}
	Initialize(config.LoggerConfig{Level: "debug", Format: "json", ServiceName: "aegis"}, sink)
	first := GetLogger()
	require.NotNil(t, first)

	// A second Initialize must not replace the stored logger.
	Initialize(config.LoggerConfig{Level: "error", Format: "console", ServiceName: "other"}, sink)
	assert.Same(t, first, GetLogger())

	first.Info("hello", zap.String("k", "v"))
	assert.Contains(t, sink.String(), `"k":"v"`)
	assert.Contains(t, sink.String(), "aegis")
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	sink := &zaptest.Buffer{}
	Initialize(config.LoggerConfig{Level: "chatty", Format: "json", ServiceName: "aegis"}, sink)

	logger := GetLogger()
	logger.Debug("hidden")
	logger.Info("visible")

	assert.NotContains(t, sink.String(), "hidden")
	assert.Contains(t, sink.String(), "visible")
}

func TestGetLoggerBeforeInitializeFallsBack(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	assert.NotNil(t, GetLogger())
}

func TestEncoderSelection(t *testing.T) {
	// Exercised indirectly above; this pins the format switch.
	assert.NotNil(t, getEncoder(config.LoggerConfig{Format: "console"}))
	assert.NotNil(t, getEncoder(config.LoggerConfig{Format: "json"}))
}
