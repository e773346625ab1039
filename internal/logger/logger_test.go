package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(buf, "debug", true), buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	log := New(&bytes.Buffer{}, "chatty", true)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestAuditLoggerEntitySaved(t *testing.T) {
	log, buf := setupTestLogger()
	NewAuditLogger(log).LogEntitySaved("car", "2597f381-5ffe-4d28-9f85-8b181ffa1dd5", true)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "audit", logEntry["component"])
	assert.Equal(t, "car", logEntry["entity"])
	assert.Equal(t, "created", logEntry["action"])
}

func TestAuditLoggerEntityDeleted(t *testing.T) {
	log, buf := setupTestLogger()
	NewAuditLogger(log).LogEntityDeleted("race", "13599db2-b244-4e44-8c27-b87301d41b7f", 0)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, float64(0), logEntry["affected"])
}

func TestAuditLoggerRaceResultsPartial(t *testing.T) {
	log, buf := setupTestLogger()
	NewAuditLogger(log).LogRaceResultsPersisted("13599db2-b244-4e44-8c27-b87301d41b7f", 3, 1)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Equal(t, float64(3), logEntry["persisted"])
}

func TestAuditLoggerTeamDriversResolved(t *testing.T) {
	log, buf := setupTestLogger()
	NewAuditLogger(log).LogTeamDriversResolved("58a54b0a-dfd5-45fd-8752-8702637a0eb9", 2, 2)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "debug", logEntry["level"])
}
