package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"newsdigest/internal/scheduler"
	"newsdigest/internal/service"
)

func newGatherCommand(d *deps) *cobra.Command {
	var daemon bool

	cmd := &cobra.Command{
		Use:   "gather <source-selector> [days]",
		Short: "Run the gathering pipeline for selected sources",
		Long: `Run the gathering pipeline. The selector is "` + service.SelectorAll + `", a project
name, or a comma-separated list of source names. The optional days
argument overrides the configured age cutoff.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := args[0]
			days := 0
			if len(args) == 2 {
				parsed, err := strconv.Atoi(args[1])
				if err != nil || parsed <= 0 {
					return fmt.Errorf("days must be a positive integer, got %q", args[1])
				}
				days = parsed
			}

			svc := d.gatherService()

			if daemon {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				sched := scheduler.NewScheduler(svc, selector, days, d.cfg.Gather.Interval, d.logger)
				if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}

			stats, err := svc.Gather(cmd.Context(), selector, days)
			if err != nil {
				return err
			}

			for _, st := range stats {
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s: fetched=%d gathered=%d saved=%d existing=%d backfilled=%d errors=%d (%s)\n",
					st.SourceName, st.Fetched, st.Gathered, st.Saved,
					st.AlreadyExisting, st.DatesBackfilled, st.Errors, st.Duration)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&daemon, "daemon", false, "keep running, gathering on the configured interval")

	return cmd
}
