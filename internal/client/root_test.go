package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/internal/testserver"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliHarness runs commands the way separate process invocations would: a
// fresh root command each time, sharing the sqlite file and the fake
// account service.
type cliHarness struct {
	t      *testing.T
	server *testserver.Server
	base   []string
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()

	srv := testserver.New(logger.Nop())
	ts := srv.Start()
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	return &cliHarness{
		t:      t,
		server: srv,
		base: []string{
			"--address", ts.URL,
			"--dsn", filepath.Join(dir, "state.db"),
			"--log-file", filepath.Join(dir, "client.log"),
		},
	}
}

func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()

	cmd := NewRootCmd(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(append([]string{}, h.base...), args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion_NeedsNoConfig(t *testing.T) {
	cmd := NewRootCmd(models.NewAppBuildInfo("1.2.3", "", "abc123"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version: 1.2.3")
	assert.Contains(t, out.String(), "Build date: N/A")
}

func TestCLI_SessionSurvivesInvocations(t *testing.T) {
	h := newCLIHarness(t)

	out, err := h.run("register", "-u", "alice", "-p", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "register ok")
	assert.Contains(t, out, "alice")

	_, err = h.run("stats", "win")
	require.NoError(t, err)
	_, err = h.run("stats", "time", "75")
	require.NoError(t, err)

	out, err = h.run("whoami", "-o", "json")
	require.NoError(t, err)
	var profile models.UserProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, int64(1), profile.Wins)
	assert.Equal(t, int64(75), profile.SecondsPlayed)

	out, err = h.run("logout")
	require.NoError(t, err)
	assert.Contains(t, out, "logged out")

	_, err = h.run("whoami")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCLI_LoginWrongPassword(t *testing.T) {
	h := newCLIHarness(t)
	h.server.Seed(models.UserProfile{Username: "bob"}, "right")

	out, err := h.run("login", "-u", "bob", "-p", "wrong")

	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, out, "login failed")
	assert.Contains(t, out, "http 401")
}

func TestCLI_StatsWhileLoggedOut_SendsNothing(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.run("stats", "defeat")

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, h.server.TotalRequests())
}

func TestCLI_StatsTimeRejectsGarbage(t *testing.T) {
	h := newCLIHarness(t)
	h.server.Seed(models.UserProfile{Username: "carol"}, "pw")

	_, err := h.run("login", "-u", "carol", "-p", "pw")
	require.NoError(t, err)

	_, err = h.run("stats", "time", "ten")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	out, err := h.run("stats", "time", "--", "-5")
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Contains(t, out, "must not be negative")
}

func TestCLI_RefreshPicksUpServerChanges(t *testing.T) {
	h := newCLIHarness(t)
	seeded := h.server.Seed(models.UserProfile{Username: "dave", Defeats: 1}, "pw")

	_, err := h.run("login", "-u", "dave", "-p", "pw")
	require.NoError(t, err)

	seeded.Defeats = 9
	h.server.Seed(seeded, "pw")

	out, err := h.run("refresh", "-o", "json")
	require.NoError(t, err)

	var view outcomeView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.True(t, view.Success)
	require.NotNil(t, view.Profile)
	assert.Equal(t, int64(9), view.Profile.Defeats)
}

func TestCLI_PlayStopsAfterDuration(t *testing.T) {
	h := newCLIHarness(t)
	h.server.Seed(models.UserProfile{Username: "erin"}, "pw")

	_, err := h.run("login", "-u", "erin", "-p", "pw")
	require.NoError(t, err)

	out, err := h.run("play", "--duration", "50ms", "--playtime-interval", "10ms")
	require.NoError(t, err)
	assert.Contains(t, out, "tracking play time")
	assert.Contains(t, out, "erin")
}
