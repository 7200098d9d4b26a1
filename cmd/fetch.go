package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kontigo/kontigo/internal/app"
	"github.com/kontigo/kontigo/internal/ingest"
	"github.com/kontigo/kontigo/internal/notify"
)

type fetchFlags struct {
	DryRun bool
	Debug  bool
}

func NewFetchCmd(application *app.App) *cobra.Command {
	flags := &fetchFlags{}

	cmd := &cobra.Command{
		Use:   "fetch [days]",
		Short: "Fetch recent statements from all configured banks",
		Long: `Fetch recent statements from all configured banks, store the new
transactions and send a notification for each one. The optional days
argument overrides the configured lookback window; 0 only discovers
accounts without fetching.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := application.Config

			days := cfg.Days
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid days argument %q", args[0])
				}
				days = parsed
			}
			if days < 0 {
				return fmt.Errorf("lookback window must be >= 0 days, got %d", days)
			}

			if flags.DryRun {
				cfg.DryRun = true
			}
			if flags.Debug {
				cfg.Debug = true
				pterm.EnableDebugMessages()
			}

			dispatcher := notify.NewDispatcher(cfg.DryRun, application.Channels...)
			runner := ingest.NewRunner(cfg, application.Store, application.Dial, dispatcher)

			res, err := runner.Run(days)
			if err != nil {
				return err
			}

			pterm.Info.Printfln("%d accounts processed: %d new, %d known", res.Accounts, res.Added, res.Duplicates)
			if res.SkippedLogins > 0 || res.SkippedAccounts > 0 {
				pterm.Warning.Printfln("%d logins and %d accounts skipped, see messages above", res.SkippedLogins, res.SkippedAccounts)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Suppress database writes and external notifications")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Print per-line reconciliation details")

	return cmd
}
