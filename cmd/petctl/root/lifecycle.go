package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pocketpet/internal/config"
	"pocketpet/internal/ui"
)

func newTickCmd(f *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Advance the pet to now and apply equipped items once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, cleanup, err := openProfile(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := p.Tick(ctx); err != nil {
				return err
			}
			view, err := p.Status(ctx)
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newRunCmd(f *storeFlags) *cobra.Command {
	var (
		interval time.Duration
		duration time.Duration
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Keep the pet alive, ticking on an interval until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval < 0 || duration < 0 {
				return fmt.Errorf("interval and duration must not be negative")
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			if duration > 0 {
				var cancelTimeout context.CancelFunc
				ctx, cancelTimeout = context.WithTimeout(ctx, duration)
				defer cancelTimeout()
			}

			p, cleanup, err := openProfile(ctx, f, func(c *config.Config) {
				if interval > 0 {
					c.TickInterval = interval
				}
			})
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s ticking every %s, ctrl-c to stop", ui.IconClock, p.TickInterval())))
			stop := p.StartLifecycle(ctx)
			<-ctx.Done()
			stop()

			view, err := p.Status(context.WithoutCancel(ctx))
			if err != nil {
				return err
			}
			renderStatus(out, view)
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "tick interval (default from PETSIM_TICK_SECONDS)")
	cmd.Flags().DurationVar(&duration, "for", 0, "stop after this long instead of waiting for an interrupt")
	return cmd
}
