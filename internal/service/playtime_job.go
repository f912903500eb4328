package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/internal/utils"
)

// LastPlayedLayout is the timestamp layout the playtime job sends as the
// last-played value.
const LastPlayedLayout = "2006-01-02 15:04:05"

type playtimeJob struct {
	coordinator SyncCoordinator
	clock       utils.Clock

	mu          sync.Mutex
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	ctx         context.Context
	lastFlushed time.Time
	userID      int64

	logger *logger.Logger
}

// NewPlaytimeJob creates a job that reports play time through coordinator.
// The job is idle until Start is called.
func NewPlaytimeJob(coordinator SyncCoordinator, clock utils.Clock, logger *logger.Logger) PlaytimeJob {
	return &playtimeJob{
		coordinator: coordinator,
		clock:       clock,
		logger:      logger,
	}
}

// Start implements PlaytimeJob. Play time is counted from the moment Start
// is called.
func (j *playtimeJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.ctx = ctx
	j.lastFlushed = j.clock.Now()
	j.userID = j.coordinator.ActiveUserID()
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.Flush(jobCtx)
			}
		}
	}()
}

// Flush implements PlaytimeJob. Seconds that fail to reach the service stay
// pending and are sent with the next flush. Time spent logged out, or under
// another user, is discarded.
func (j *playtimeJob) Flush(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.clock.Now()
	activeID := j.coordinator.ActiveUserID()
	if activeID <= 0 || activeID != j.userID {
		j.lastFlushed = now
		j.userID = activeID
		return nil
	}

	elapsed := int64(now.Sub(j.lastFlushed) / time.Second)
	if elapsed <= 0 {
		return nil
	}

	outcome := <-j.coordinator.AddPlayedSeconds(ctx, elapsed)
	if !outcome.Success {
		j.logger.Err(outcome.Err).
			Str("func", "playtimeJob.Flush").
			Int64("user_id", activeID).
			Int64("seconds", elapsed).
			Msg("failed to report play time, keeping it pending")
		return outcome.Err
	}
	j.lastFlushed = j.lastFlushed.Add(time.Duration(elapsed) * time.Second)

	stamp := <-j.coordinator.SetLastPlayed(ctx, now.Format(LastPlayedLayout))
	if !stamp.Success {
		j.logger.Err(stamp.Err).
			Str("func", "playtimeJob.Flush").
			Int64("user_id", activeID).
			Msg("failed to stamp last played time")
		return stamp.Err
	}

	return nil
}

// Stop implements PlaytimeJob.
func (j *playtimeJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	ctx := j.ctx
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	j.wg.Wait()

	// final flush runs on the parent context, the loop's one is cancelled
	if ctx.Err() == nil {
		_ = j.Flush(ctx)
	}
}
