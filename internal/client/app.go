package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stats-sync/internal/adapter"
	"github.com/MKhiriev/go-stats-sync/internal/config"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/internal/metrics"
	"github.com/MKhiriev/go-stats-sync/internal/service"
	"github.com/MKhiriev/go-stats-sync/internal/store"
	"github.com/MKhiriev/go-stats-sync/internal/telemetry"
	"github.com/MKhiriev/go-stats-sync/models"
)

// ServiceName identifies the client in traces and logs.
const ServiceName = "stats-sync-client"

// App owns every long-lived component of one client process.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	storages *store.ClientStorages
	recorder *metrics.Recorder
	shutdown telemetry.ShutdownFunc

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the client from cfg: tracing, metrics, local storage, the
// HTTP account adapter and the sync services, in that order.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	tp, shutdown, err := telemetry.InitTelemetry(ctx, ServiceName, info.BuildVersion(), cfg.Telemetry.OTLPEndpoint, log)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	accounts, err := adapter.NewHTTPAccountAdapter(cfg.Adapter, log, adapter.WithTracerProvider(tp))
	if err != nil {
		_ = storages.Close()
		_ = shutdown(ctx)
		return nil, fmt.Errorf("create account adapter: %w", err)
	}

	recorder := metrics.NewRecorder()

	return &App{
		cfg:      cfg,
		services: service.NewClientServices(accounts, storages.LastUserRepository, recorder, log),
		storages: storages,
		recorder: recorder,
		shutdown: shutdown,
		logger:   log,
	}, nil
}

// Coordinator returns the sync coordinator of the app.
func (a *App) Coordinator() service.SyncCoordinator {
	return a.services.Coordinator
}

// ResumeSession restores the persisted session if there is one. A missing
// saved session is not an error; the app simply stays logged out.
func (a *App) ResumeSession(ctx context.Context) error {
	if a.services.Coordinator.ActiveUserID() > 0 {
		return nil
	}

	outcome := <-a.services.Coordinator.Resume(ctx)
	if outcome.Success || errors.Is(outcome.Err, service.ErrNoSavedSession) {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrOperationFailed, outcome.Reason)
}

// Close implements Client.
func (a *App) Close(ctx context.Context) error {
	a.services.PlaytimeJob.Stop()
	a.services.Coordinator.Wait()

	storageErr := a.storages.Close()
	if storageErr != nil {
		a.logger.Err(storageErr).Str("func", "App.Close").Msg("failed to close local storage")
	}

	return errors.Join(storageErr, a.shutdown(ctx))
}
