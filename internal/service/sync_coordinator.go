package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/adapter"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/internal/metrics"
	"github.com/MKhiriev/go-stats-sync/internal/notify"
	"github.com/MKhiriev/go-stats-sync/internal/session"
	"github.com/MKhiriev/go-stats-sync/internal/store"
	"github.com/MKhiriev/go-stats-sync/internal/utils"
	"github.com/MKhiriev/go-stats-sync/models"
)

type syncCoordinator struct {
	accounts adapter.AccountAdapter
	sessions *session.Store
	lastUser store.LastUserRepository
	emitter  *notify.Emitter
	recorder *metrics.Recorder
	traceIDs TraceIDGenerator

	wg sync.WaitGroup

	logger *logger.Logger
}

// CoordinatorOption customises a coordinator built by [NewSyncCoordinator].
type CoordinatorOption func(*syncCoordinator)

// WithRecorder makes the coordinator report operation metrics to r.
func WithRecorder(r *metrics.Recorder) CoordinatorOption {
	return func(c *syncCoordinator) {
		c.recorder = r
	}
}

// WithTraceIDGenerator replaces the default UUIDv7 trace id generator.
func WithTraceIDGenerator(g TraceIDGenerator) CoordinatorOption {
	return func(c *syncCoordinator) {
		c.traceIDs = g
	}
}

// NewSyncCoordinator wires a [SyncCoordinator] around its collaborators.
// sessions and emitter are shared with the caller so that other components
// can read the cache and listen for outcomes.
func NewSyncCoordinator(
	accounts adapter.AccountAdapter,
	sessions *session.Store,
	lastUser store.LastUserRepository,
	emitter *notify.Emitter,
	logger *logger.Logger,
	opts ...CoordinatorOption,
) SyncCoordinator {
	c := &syncCoordinator{
		accounts: accounts,
		sessions: sessions,
		lastUser: lastUser,
		emitter:  emitter,
		traceIDs: uuidTraceIDs{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// operationFunc performs the remote call and the session effect of one
// operation and returns the profile snapshot to report.
type operationFunc func(ctx context.Context, log *logger.Logger) (models.UserProfile, error)

// start runs fn on its own goroutine and resolves the returned channel with
// exactly one outcome.
func (c *syncCoordinator) start(ctx context.Context, op models.Operation, fn operationFunc) <-chan models.Outcome {
	out := make(chan models.Outcome, 1)

	traceID := c.traceIDs.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	log := c.logger.WithTraceID(traceID)
	done := c.recorder.Start(op)
	started := time.Now()

	log.Debug().Str("func", "syncCoordinator.start").Str("operation", string(op)).Msg("operation started")

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		profile, err := c.call(ctx, log, fn)
		outcome := c.newOutcome(op, traceID, profile, err, time.Since(started))
		done(outcome.Success)
		c.resolve(out, outcome, log)
	}()

	return out
}

// call invokes fn, turning a panic into an error.
func (c *syncCoordinator) call(ctx context.Context, log *logger.Logger, fn operationFunc) (profile models.UserProfile, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("func", "syncCoordinator.call").Interface("panic", r).Msg("recovered panic in operation")
			profile, err = models.UserProfile{}, fmt.Errorf("%w: %v", ErrOperationPanicked, r)
		}
	}()

	return fn(ctx, log)
}

// reject resolves op immediately with err, without starting a goroutine or
// sending any request.
func (c *syncCoordinator) reject(op models.Operation, err error) <-chan models.Outcome {
	out := make(chan models.Outcome, 1)

	traceID := c.traceIDs.Generate()
	log := c.logger.WithTraceID(traceID)
	c.recorder.Start(op)(false)

	c.resolve(out, c.newOutcome(op, traceID, models.UserProfile{}, err, 0), log)
	return out
}

func (c *syncCoordinator) newOutcome(op models.Operation, traceID string, profile models.UserProfile, err error, elapsed time.Duration) models.Outcome {
	outcome := models.Outcome{
		Operation: op,
		TraceID:   traceID,
		Success:   err == nil,
		Duration:  elapsed,
	}
	if err != nil {
		outcome.Err = err
		outcome.Reason = failureReason(err)
		return outcome
	}

	outcome.Profile = profile
	return outcome
}

// resolve delivers outcome on out, closes it and publishes the notification.
func (c *syncCoordinator) resolve(out chan<- models.Outcome, outcome models.Outcome, log *logger.Logger) {
	if outcome.Success {
		log.Info().
			Str("func", "syncCoordinator.resolve").
			Str("operation", string(outcome.Operation)).
			Int64("user_id", outcome.Profile.ID).
			Dur("elapsed", outcome.Duration).
			Msg("operation succeeded")
	} else {
		log.Err(outcome.Err).
			Str("func", "syncCoordinator.resolve").
			Str("operation", string(outcome.Operation)).
			Str("reason", outcome.Reason).
			Dur("elapsed", outcome.Duration).
			Msg("operation failed")
	}

	out <- outcome
	close(out)

	c.emitter.Publish(models.Notification{
		Kind:    models.NotificationKindFor(outcome.Operation, outcome.Success),
		Outcome: outcome,
	})
}

func (c *syncCoordinator) CurrentUser() (models.UserProfile, bool) {
	return c.sessions.Current()
}

func (c *syncCoordinator) ActiveUserID() int64 {
	return c.sessions.ActiveUserID()
}

func (c *syncCoordinator) Subscribe(h notify.Handler, kinds ...models.NotificationKind) notify.Subscription {
	return c.emitter.Subscribe(h, kinds...)
}

func (c *syncCoordinator) Wait() {
	c.wg.Wait()
}
