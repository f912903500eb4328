package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/adapter"
	"github.com/MKhiriev/go-stats-sync/internal/app"
	"github.com/MKhiriev/go-stats-sync/internal/config"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/internal/metrics"
	"github.com/MKhiriev/go-stats-sync/internal/store"
	"github.com/MKhiriev/go-stats-sync/internal/testserver"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpFixture runs the coordinator end to end: real HTTP adapter against the
// fake account service, last user id kept in miniredis.
type httpFixture struct {
	services *ClientServices
	server   *testserver.Server
	storages *store.ClientStorages
	recorder *metrics.Recorder
	redis    *miniredis.Miniredis
}

func newHTTPFixture(t *testing.T) *httpFixture {
	t.Helper()

	srv := testserver.New(logger.Nop())
	ts := srv.Start()
	t.Cleanup(ts.Close)

	mr := miniredis.RunT(t)
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		Redis: config.ClientRedis{URL: "redis://" + mr.Addr()},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	accounts, err := adapter.NewHTTPAccountAdapter(config.ClientAdapter{
		HTTPAddress:    ts.URL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	recorder := metrics.NewRecorder()
	return &httpFixture{
		services: NewClientServices(accounts, storages.LastUserRepository, recorder, logger.Nop()),
		server:   srv,
		storages: storages,
		recorder: recorder,
		redis:    mr,
	}
}

func TestHTTP_RegisterPlayLogout(t *testing.T) {
	f := newHTTPFixture(t)
	c := f.services.Coordinator
	ctx := context.Background()

	registered := await(t, c.Register(ctx, models.Credentials{Username: "alice", Password: "pw"}))
	require.True(t, registered.Success, registered.Reason)
	id := registered.Profile.ID
	assert.Positive(t, id)

	saved, err := f.storages.LastUserRepository.GetLastUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, saved)

	require.True(t, await(t, c.IncrementEnemiesEliminated(ctx)).Success)
	require.True(t, await(t, c.IncrementWins(ctx)).Success)
	require.True(t, await(t, c.AddPlayedSeconds(ctx, 75)).Success)
	require.True(t, await(t, c.SetLastPlayed(ctx, "2024-05-01 10:00:00")).Success)

	local, ok := c.CurrentUser()
	require.True(t, ok)
	remote, ok := f.server.Profile(id)
	require.True(t, ok)
	assert.Equal(t, remote, local)
	assert.Equal(t, "00:01:15", local.FormattedTimePlayed())

	require.NoError(t, c.Logout(ctx))
	_, err = f.storages.LastUserRepository.GetLastUserID(ctx)
	assert.ErrorIs(t, err, store.ErrLastUserNotFound)

	// register, two increments, played seconds, last played, logout
	series, err := testutil.GatherAndCount(f.recorder.Registry(), "stats_sync_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 6, series)
}

// Scenario C against the fake service.
func TestHTTP_ConcurrentPlayedSeconds(t *testing.T) {
	f := newHTTPFixture(t)
	seeded := f.server.Seed(models.UserProfile{ID: 7, Username: "alice", SecondsPlayed: 100}, "pw")
	c := f.services.Coordinator
	ctx := context.Background()

	require.True(t, await(t, c.Login(ctx, models.Credentials{Username: "alice", Password: "pw"})).Success)

	first := c.AddPlayedSeconds(ctx, 30)
	second := c.AddPlayedSeconds(ctx, 30)
	require.True(t, await(t, first).Success)
	require.True(t, await(t, second).Success)

	local, _ := c.CurrentUser()
	assert.Equal(t, seeded.SecondsPlayed+60, local.SecondsPlayed)
	remote, _ := f.server.Profile(7)
	assert.Equal(t, local.SecondsPlayed, remote.SecondsPlayed)
}

// Scenario B against the fake service.
func TestHTTP_LoginWrongPassword(t *testing.T) {
	f := newHTTPFixture(t)
	f.server.Seed(models.UserProfile{Username: "bob"}, "right")

	outcome := await(t, f.services.Coordinator.Login(context.Background(), models.Credentials{Username: "bob", Password: "wrong"}))

	assert.False(t, outcome.Success)
	assert.ErrorIs(t, outcome.Err, adapter.ErrUnauthorized)
	assert.Contains(t, outcome.Reason, "http 401")
	assert.Zero(t, f.services.Coordinator.ActiveUserID())
}

// Scenario E against the fake service.
func TestHTTP_LoginZeroID(t *testing.T) {
	f := newHTTPFixture(t)
	f.server.Intercept(func(w http.ResponseWriter, r *http.Request) bool {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id_usuario":0}`))
		return true
	})

	outcome := await(t, f.services.Coordinator.Login(context.Background(), models.Credentials{Username: "x", Password: "y"}))

	assert.False(t, outcome.Success)
	assert.ErrorIs(t, outcome.Err, adapter.ErrSchema)
	assert.Equal(t, app.MsgInvalidResponseFormat, outcome.Reason)
	assert.Zero(t, f.services.Coordinator.ActiveUserID())
}

// Scenario D against the fake service.
func TestHTTP_LoggedOutSendsNothing(t *testing.T) {
	f := newHTTPFixture(t)

	outcome := await(t, f.services.Coordinator.IncrementDefeats(context.Background()))

	assert.False(t, outcome.Success)
	assert.Zero(t, f.server.TotalRequests())
}

func TestHTTP_ResumeFromSavedID(t *testing.T) {
	f := newHTTPFixture(t)
	f.server.Seed(models.UserProfile{ID: 3, Username: "carol", Defeats: 4}, "pw")
	ctx := context.Background()
	require.NoError(t, f.storages.LastUserRepository.SaveLastUserID(ctx, 3))

	outcome := await(t, f.services.Coordinator.Resume(ctx))

	require.True(t, outcome.Success, outcome.Reason)
	assert.Equal(t, int64(4), outcome.Profile.Defeats)
	assert.Equal(t, []string{outcome.TraceID}, f.server.TraceIDs())
}

func TestHTTP_ServiceDown(t *testing.T) {
	srv := testserver.New(logger.Nop())
	ts := srv.Start()
	addr := ts.URL
	ts.Close()

	accounts, err := adapter.NewHTTPAccountAdapter(config.ClientAdapter{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	services := NewClientServices(accounts, nil, nil, logger.Nop())

	outcome := await(t, services.Coordinator.Login(context.Background(), models.Credentials{Username: "a", Password: "b"}))

	assert.False(t, outcome.Success)
	assert.ErrorIs(t, outcome.Err, adapter.ErrTransport)
	assert.Contains(t, outcome.Reason, app.MsgServiceUnreachable)
}
