package testserver

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestServer_RegisterThenConflict(t *testing.T) {
	srv := New(logger.Nop())
	ts := srv.Start()
	defer ts.Close()

	resp := post(t, ts.URL+"/registro", `{"nombre_usuario":"alice","contraseńa":"pw"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = post(t, ts.URL+"/registro", `{"nombre_usuario":"alice","contraseńa":"other"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	profile, ok := srv.Profile(1)
	require.True(t, ok)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, RegistrationDate, profile.RegisteredAt)
	assert.Equal(t, 2, srv.Requests("POST /registro"))
}

func TestServer_LoginRejectsWrongPassword(t *testing.T) {
	srv := New(logger.Nop())
	srv.Seed(models.UserProfile{Username: "bob"}, "right")
	ts := srv.Start()
	defer ts.Close()

	resp := post(t, ts.URL+"/login", `{"nombre_usuario":"bob","contraseńa":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = post(t, ts.URL+"/login", `{"nombre_usuario":"bob","contraseńa":"right"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_CountersAndUnknownUser(t *testing.T) {
	srv := New(logger.Nop())
	seeded := srv.Seed(models.UserProfile{ID: 7, Username: "carol", Wins: 2}, "pw")
	ts := srv.Start()
	defer ts.Close()

	post(t, ts.URL+"/usuario/7/incrementar-veces-ganadas", "")
	post(t, ts.URL+"/usuario/7/incrementar-tiempo-jugado", `{"tiempo_jugado":30}`)

	profile, _ := srv.Profile(seeded.ID)
	assert.Equal(t, int64(3), profile.Wins)
	assert.Equal(t, int64(30), profile.SecondsPlayed)

	resp := post(t, ts.URL+"/usuario/99/incrementar-derrotas", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1, srv.Requests("POST /usuario/{id}/incrementar-veces-ganadas"))
}

func TestServer_Intercept(t *testing.T) {
	srv := New(logger.Nop())
	srv.Intercept(func(w http.ResponseWriter, r *http.Request) bool {
		w.WriteHeader(http.StatusBadGateway)
		return true
	})
	ts := srv.Start()
	defer ts.Close()

	resp := post(t, ts.URL+"/login", `{}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, 1, srv.TotalRequests())
}

func TestServer_RecordsTraceIDs(t *testing.T) {
	srv := New(logger.Nop())
	ts := srv.Start()
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/usuario/1", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-1", resp.Header.Get(traceIDHeader))
	assert.Equal(t, []string{"trace-1"}, srv.TraceIDs())
}
