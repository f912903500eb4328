// Package testserver is an in-memory fake of the account service, routed
// with chi, used by tests and local runs of the client.
package testserver

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RegistrationDate is the fecha_registro the fake assigns to new accounts.
const RegistrationDate = "2024-01-01 00:00:00"

type account struct {
	profile  models.UserProfile
	password string
}

// Server holds the fake's accounts. Its zero value is not usable; call New.
type Server struct {
	mu       sync.Mutex
	accounts map[int64]*account
	byName   map[string]int64
	nextID   int64
	requests map[string]int
	traceIDs []string

	interceptor func(w http.ResponseWriter, r *http.Request) bool

	logger *logger.Logger
}

// New returns an empty fake account service.
func New(log *logger.Logger) *Server {
	return &Server{
		accounts: make(map[int64]*account),
		byName:   make(map[string]int64),
		nextID:   1,
		requests: make(map[string]int),
		logger:   log,
	}
}

// Start serves the fake on a local httptest server. The caller must Close it.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s.Router())
}

// Router builds the chi router exposing the account service routes.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID, s.withLogging, s.withInterceptor)

	router.Post("/registro", s.register)
	router.Post("/login", s.login)

	router.Route("/usuario/{id}", func(r chi.Router) {
		r.Use(s.withAccount)
		r.Get("/", s.getUser)
		r.Post("/incrementar-enemigos-eliminados", s.incrementCounter(models.CounterEnemiesEliminated))
		r.Post("/incrementar-derrotas", s.incrementCounter(models.CounterDefeats))
		r.Post("/incrementar-veces-ganadas", s.incrementCounter(models.CounterWins))
		r.Post("/incrementar-tiempo-jugado", s.addPlayedSeconds)
		r.Put("/ultima-conexion", s.setLastPlayed)
	})

	router.MethodNotAllowed(methodNotAllowed)

	return router
}

// Seed inserts an account directly and returns its profile.
func (s *Server) Seed(profile models.UserProfile, password string) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.ID == 0 {
		profile.ID = s.nextID
	}
	if profile.ID >= s.nextID {
		s.nextID = profile.ID + 1
	}
	if profile.RegisteredAt == "" {
		profile.RegisteredAt = RegistrationDate
	}

	s.accounts[profile.ID] = &account{profile: profile, password: password}
	s.byName[profile.Username] = profile.ID
	return profile
}

// Profile returns the server-side profile of id.
func (s *Server) Profile(id int64) (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return models.UserProfile{}, false
	}
	return acc.profile, true
}

// Intercept installs fn in front of every route. When fn returns true the
// request is considered answered. Passing nil removes the interceptor.
func (s *Server) Intercept(fn func(w http.ResponseWriter, r *http.Request) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interceptor = fn
}

// Requests returns how many requests reached the route pattern, e.g.
// "POST /usuario/{id}/incrementar-derrotas".
func (s *Server) Requests(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[route]
}

// TotalRequests returns the number of requests served so far.
func (s *Server) TotalRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.requests {
		total += n
	}
	return total
}

// TraceIDs returns the X-Trace-ID values received, in arrival order.
func (s *Server) TraceIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.traceIDs...)
}
