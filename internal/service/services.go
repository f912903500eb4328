package service

import (
	"github.com/MKhiriev/go-stats-sync/internal/adapter"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/internal/metrics"
	"github.com/MKhiriev/go-stats-sync/internal/notify"
	"github.com/MKhiriev/go-stats-sync/internal/session"
	"github.com/MKhiriev/go-stats-sync/internal/store"
	"github.com/MKhiriev/go-stats-sync/internal/utils"
)

// ClientServices groups the client's service layer.
type ClientServices struct {
	Coordinator SyncCoordinator
	PlaytimeJob PlaytimeJob
	Notifier    *notify.Emitter
}

// NewClientServices wires a coordinator over a fresh session store and
// emitter, plus a playtime job driven by the system clock.
func NewClientServices(accounts adapter.AccountAdapter, lastUser store.LastUserRepository, recorder *metrics.Recorder, logger *logger.Logger) *ClientServices {
	emitter := notify.NewEmitter(logger)
	coordinator := NewSyncCoordinator(accounts, session.NewStore(), lastUser, emitter, logger, WithRecorder(recorder))

	return &ClientServices{
		Coordinator: coordinator,
		PlaytimeJob: NewPlaytimeJob(coordinator, utils.NewRealClock(), logger),
		Notifier:    emitter,
	}
}
