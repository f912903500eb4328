package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleProfile = models.UserProfile{
	ID:                7,
	Username:          "alice",
	RegisteredAt:      "2024-01-01 00:00:00",
	EnemiesEliminated: 12,
	Wins:              3,
	SecondsPlayed:     3725,
}

func TestOutput_TextProfile(t *testing.T) {
	var buf bytes.Buffer
	NewOutput(&buf, "").PrintProfile(sampleProfile)

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "01:02:05")
	assert.Contains(t, out, "Enemies eliminated")
	// пустая дата последней игры показывается прочерком
	assert.Contains(t, out, "-")
}

func TestOutput_JSONOutcome(t *testing.T) {
	var buf bytes.Buffer
	NewOutput(&buf, FormatJSON).PrintOutcome(models.Outcome{
		Operation: models.OperationLogin,
		TraceID:   "trace-1",
		Reason:    "invalid username or password (http 401)",
		Err:       errors.New("ignored"),
	})

	var view map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "login", view["operation"])
	assert.Equal(t, false, view["success"])
	assert.NotContains(t, view, "profile")
}

func TestOutput_TextOutcome(t *testing.T) {
	var buf bytes.Buffer
	NewOutput(&buf, FormatText).PrintOutcome(models.Outcome{
		Operation: models.OperationWins,
		Success:   true,
		Profile:   sampleProfile,
	})

	assert.Contains(t, buf.String(), "increment_wins ok")
	assert.Contains(t, buf.String(), "alice")
}
