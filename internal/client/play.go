package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/spf13/cobra"
)

func (c *cli) newPlayCmd() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Track play time until interrupted",
		Long: `play reports elapsed play time to the account service every
--playtime-interval until interrupted (or until --duration elapses), then
flushes the remainder and prints the profile.

With --metrics-address set, Prometheus metrics are served on /metrics while
the session runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(cmd.Context()); err != nil {
				return err
			}
			return c.play(cmd.Context(), duration)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "Stop after this long (0 runs until interrupted)")
	return cmd
}

func (c *cli) play(parent context.Context, duration time.Duration) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	sub := c.app.Coordinator().Subscribe(func(n models.Notification) {
		if n.Outcome.Operation != models.OperationAddPlayedSeconds {
			return
		}
		if n.Outcome.Success {
			c.out.PrintMessage("play time synced: " + n.Outcome.Profile.FormattedTimePlayed())
		} else {
			c.out.PrintMessage("play time sync failed: " + n.Outcome.Reason)
		}
	}, models.NotificationStatsUpdated)
	defer sub.Unsubscribe()

	metricsErr := make(chan error, 1)
	if addr := c.app.cfg.Telemetry.MetricsAddress; addr != "" {
		go func() {
			metricsErr <- c.app.recorder.Serve(ctx, addr, c.app.logger)
		}()
	}

	job := c.app.services.PlaytimeJob
	// the job outlives ctx so Stop can still flush the remainder
	job.Start(context.WithoutCancel(parent), c.app.cfg.Workers.PlaytimeInterval)
	c.out.PrintMessage(fmt.Sprintf("tracking play time every %s, press Ctrl+C to stop", c.app.cfg.Workers.PlaytimeInterval))

	var err error
	select {
	case <-ctx.Done():
	case err = <-metricsErr:
		if err != nil {
			err = fmt.Errorf("metrics server: %w", err)
		}
	}
	job.Stop()
	c.app.Coordinator().Wait()

	profile, ok := c.app.Coordinator().CurrentUser()
	if ok {
		c.out.PrintProfile(profile)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
