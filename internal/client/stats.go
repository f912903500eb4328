package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/service"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/spf13/cobra"
)

func (c *cli) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Update gameplay statistics of the logged-in player",
	}

	cmd.AddCommand(
		c.newStatCmd("kill", "Count one eliminated enemy", func(ctx context.Context, co service.SyncCoordinator, _ []string) (<-chan models.Outcome, error) {
			return co.IncrementEnemiesEliminated(ctx), nil
		}, cobra.NoArgs),
		c.newStatCmd("defeat", "Count one defeat", func(ctx context.Context, co service.SyncCoordinator, _ []string) (<-chan models.Outcome, error) {
			return co.IncrementDefeats(ctx), nil
		}, cobra.NoArgs),
		c.newStatCmd("win", "Count one win", func(ctx context.Context, co service.SyncCoordinator, _ []string) (<-chan models.Outcome, error) {
			return co.IncrementWins(ctx), nil
		}, cobra.NoArgs),
		c.newStatCmd("time <seconds>", "Add seconds of play time", func(ctx context.Context, co service.SyncCoordinator, args []string) (<-chan models.Outcome, error) {
			seconds, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: seconds %q: %w", ErrInvalidArgument, args[0], err)
			}
			return co.AddPlayedSeconds(ctx, seconds), nil
		}, cobra.ExactArgs(1)),
		c.newStatCmd("last-played [timestamp]", "Set the last-played timestamp (default: now)", func(ctx context.Context, co service.SyncCoordinator, args []string) (<-chan models.Outcome, error) {
			ts := time.Now().Format(service.LastPlayedLayout)
			if len(args) == 1 {
				ts = args[0]
			}
			return co.SetLastPlayed(ctx, ts), nil
		}, cobra.MaximumNArgs(1)),
	)

	return cmd
}

type statFunc func(ctx context.Context, co service.SyncCoordinator, args []string) (<-chan models.Outcome, error)

func (c *cli) newStatCmd(use, short string, run statFunc, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(cmd.Context()); err != nil {
				return err
			}

			outcome, err := run(cmd.Context(), c.app.Coordinator(), args)
			if err != nil {
				return err
			}
			return c.report(<-outcome)
		},
	}
}
