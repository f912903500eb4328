package testserver

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/models"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		log.Err(err).Msg("invalid registration payload")
		http.Error(w, "invalid data provided", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if _, exists := s.byName[creds.Username]; exists {
		s.mu.Unlock()
		http.Error(w, "username already exists", http.StatusConflict)
		return
	}
	id := s.nextID
	s.nextID++
	acc := &account{
		profile:  models.UserProfile{ID: id, Username: creds.Username, RegisteredAt: RegistrationDate},
		password: creds.Password,
	}
	s.accounts[id] = acc
	s.byName[creds.Username] = id
	profile := acc.profile
	s.mu.Unlock()

	writeJSON(w, profile)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid data provided", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	id, ok := s.byName[creds.Username]
	var profile models.UserProfile
	if ok && s.accounts[id].password == creds.Password {
		profile = s.accounts[id].profile
	} else {
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}
	writeJSON(w, profile)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	profile, _ := s.Profile(accountID(r))
	writeJSON(w, profile)
}

func (s *Server) incrementCounter(kind models.CounterKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.patch(accountID(r), func(p *models.UserProfile) {
			switch kind {
			case models.CounterEnemiesEliminated:
				p.EnemiesEliminated++
			case models.CounterDefeats:
				p.Defeats++
			case models.CounterWins:
				p.Wins++
			}
		})
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) addPlayedSeconds(w http.ResponseWriter, r *http.Request) {
	var req models.PlayedTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Seconds < 0 {
		http.Error(w, "invalid data provided", http.StatusBadRequest)
		return
	}

	s.patch(accountID(r), func(p *models.UserProfile) { p.SecondsPlayed += req.Seconds })
	w.WriteHeader(http.StatusOK)
}

func (s *Server) setLastPlayed(w http.ResponseWriter, r *http.Request) {
	var req models.LastPlayedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid data provided", http.StatusBadRequest)
		return
	}

	s.patch(accountID(r), func(p *models.UserProfile) { p.LastPlayed = req.LastPlayed })
	w.WriteHeader(http.StatusOK)
}

func (s *Server) patch(id int64, fn func(p *models.UserProfile)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc, ok := s.accounts[id]; ok {
		fn(&acc.profile)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
