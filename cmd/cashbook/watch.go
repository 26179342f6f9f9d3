package cashbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/ui/views"
)

type watchFlags struct {
	rangeFlags
	Interval time.Duration
}

type watchRunner struct {
	svc   *service.Service
	flags *watchFlags
}

type runResult struct {
	snap *service.Snapshot
	err  error
}

func NewWatchCmd(svc *service.Service) *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the cash book on screen and redraw it when entries change",
		Long: `Keep the cash book on screen and redraw it when entries change.

Useful on the shop's counter machine while others record sales. Press Ctrl+C to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &watchRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	flags.bind(cmd)
	cmd.Flags().DurationVarP(&flags.Interval, "interval", "i", 5*time.Second, "How often to check for new entries")

	return cmd
}

func (r *watchRunner) Run(ctx context.Context) error {
	if r.flags.Interval < time.Second {
		return fmt.Errorf("interval must be at least 1s")
	}

	rng, err := r.flags.resolve(r.svc)
	if err != nil {
		return err
	}

	runner := service.NewRunner(r.svc.Ledger)
	results := make(chan runResult, 4)

	// overlapping runs are fine: the runner only publishes the newest one
	launch := func() {
		go func() {
			snap, err := runner.Run(ctx, rng)
			select {
			case results <- runResult{snap: snap, err: err}:
			case <-ctx.Done():
			}
		}()
	}

	ticker := time.NewTicker(r.flags.Interval)
	defer ticker.Stop()

	launch()
	shown := ""
	view := views.NewCashbookView(r.svc.Config.Defaults.Symbol)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			launch()
		case res := <-results:
			switch {
			case errors.Is(res.err, service.ErrSuperseded):
				continue
			case ctx.Err() != nil:
				return nil
			case res.err != nil:
				pterm.Warning.Printf("Could not refresh the cash book: %v\n", res.err)
				continue
			}

			key := fmt.Sprintf("%d/%d", res.snap.LastTransactionID, res.snap.LastCheckpointID)
			if key == shown {
				continue
			}
			shown = key

			pterm.Println()
			pterm.Info.Printf("Updated %s\n", res.snap.Book.GeneratedAt.Format("15:04:05"))
			if err := view.Render(res.snap.Rows, res.snap.Book); err != nil {
				return err
			}
		}
	}
}
