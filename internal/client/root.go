package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stats-sync/internal/config"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/spf13/cobra"
)

// skipAppAnnotation marks commands that run without building an App.
const skipAppAnnotation = "stats-sync/skip-app"

// cli holds the state shared by the commands of one invocation.
type cli struct {
	info    models.AppBuildInfo
	flagCfg *config.StructuredConfig
	format  string

	app *App
	out *Output
}

// NewRootCmd creates the root command and every subcommand.
func NewRootCmd(info models.AppBuildInfo) *cobra.Command {
	c := &cli{info: info}

	rootCmd := &cobra.Command{
		Use:   "stats-sync",
		Short: "Player session and statistics sync client",
		Long: `stats-sync keeps a player's session and gameplay statistics in sync
with the account service.

The session survives between invocations: login remembers the user and
every other command resumes it until logout.`,
		PersistentPreRunE: c.setup,
		SilenceUsage:      true,
	}

	c.flagCfg = config.BindFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVarP(&c.format, "output", "o", FormatText, "Output format: text, json")

	rootCmd.AddCommand(
		c.newRegisterCmd(),
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newWhoamiCmd(),
		c.newRefreshCmd(),
		c.newStatsCmd(),
		c.newPlayCmd(),
		c.newVersionCmd(),
	)
	c.closeAfter(rootCmd)

	return rootCmd
}

// closeAfter makes every runnable command release the app when it returns,
// including on error, where cobra skips post-run hooks.
func (c *cli) closeAfter(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		c.closeAfter(sub)
	}
	if cmd.RunE == nil {
		return
	}

	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.Join(err, c.teardown(cmd))
		}()
		return run(cmd, args)
	}
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	c.out = NewOutput(cmd.OutOrStdout(), c.format)
	if cmd.Annotations[skipAppAnnotation] != "" {
		return nil
	}

	cfg, err := config.GetClientConfig(c.flagCfg)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(ServiceName, cfg.App.LogFile)
	app, err := NewApp(cmd.Context(), cfg, c.info, log)
	if err != nil {
		log.Err(err).Str("func", "cli.setup").Msg("init client app error")
		return err
	}
	c.app = app

	return nil
}

func (c *cli) teardown(cmd *cobra.Command) error {
	if c.app == nil {
		return nil
	}
	app := c.app
	c.app = nil
	return app.Close(context.WithoutCancel(cmd.Context()))
}

// requireSession resumes the saved session and fails when there is none.
func (c *cli) requireSession(ctx context.Context) error {
	if err := c.app.ResumeSession(ctx); err != nil {
		return err
	}
	if c.app.Coordinator().ActiveUserID() <= 0 {
		return ErrNotLoggedIn
	}
	return nil
}

// report prints outcome and converts a failure into the command's error.
func (c *cli) report(outcome models.Outcome) error {
	c.out.PrintOutcome(outcome)
	if !outcome.Success {
		return fmt.Errorf("%w: %s", ErrOperationFailed, outcome.Reason)
	}
	return nil
}
