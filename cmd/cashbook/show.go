package cashbook

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/ledger"
	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/ui/views"
)

type showFlags struct {
	rangeFlags
	ReconciledOnly bool
}

type showRunner struct {
	svc   *service.Service
	flags *showFlags
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cash book",
		Long: `Show the cash book with receipts on the left and payments on the right.

Examples:
  tailorbook cashbook show
  tailorbook cashbook show --from 2026-03-01 --to 2026-03-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&flags.ReconciledOnly, "reconciled-only", false, "Hide entries that are not yet balanced")

	return cmd
}

func (r *showRunner) Run(ctx context.Context) error {
	rng, err := r.flags.resolve(r.svc)
	if err != nil {
		return err
	}

	snap, err := r.svc.Ledger.Build(ctx, rng)
	if err != nil {
		return err
	}

	rows := snap.Rows
	if r.flags.ReconciledOnly {
		rows = reconciledRows(rows)
	}

	return views.NewCashbookView(r.svc.Config.Defaults.Symbol).Render(rows, snap.Book)
}

func reconciledRows(rows []ledger.Row) []ledger.Row {
	out := make([]ledger.Row, 0, len(rows))
	for _, row := range rows {
		if row.Reconciled {
			out = append(out, row)
		}
	}
	return out
}
