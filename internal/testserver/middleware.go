package testserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

type accountCtxKey struct{}

func (s *Server) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID != "" {
			s.mu.Lock()
			s.traceIDs = append(s.traceIDs, traceID)
			s.mu.Unlock()
		} else {
			traceID = uuid.NewString()
		}

		l := s.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = r.URL.Path
		}
		route := r.Method + " " + pattern
		s.mu.Lock()
		s.requests[route]++
		s.mu.Unlock()

		log.Debug().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func (s *Server) withInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		fn := s.interceptor
		s.mu.Unlock()

		if fn != nil && fn(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withAccount resolves {id} to an existing account or answers 404.
func (s *Server) withAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		_, ok := s.accounts[id]
		s.mu.Unlock()
		if !ok {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountCtxKey{}, id)))
	})
}

func accountID(r *http.Request) int64 {
	id, _ := r.Context().Value(accountCtxKey{}).(int64)
	return id
}

type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.wroteHeader {
		return
	}
	rw.status = statusCode
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// methodNotAllowed answers a known path requested with an unregistered
// method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "method "+r.Method+" not allowed", http.StatusMethodNotAllowed)
}
