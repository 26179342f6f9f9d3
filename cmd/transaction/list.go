package transaction

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/ui/views"
)

type listFlags struct {
	Limit int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List recent transactions, newest first.

This command displays a table of transactions with their date, type,
payment method, description, client and amount.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of transactions to display")

	return cmd
}

func (r *listRunner) Run(ctx context.Context) error {
	if r.flags.Limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}

	transactions, err := r.svc.Transaction.Recent(ctx, r.flags.Limit)
	if err != nil {
		return err
	}

	return views.NewTransactionListView(r.svc.Config.Defaults.Symbol).Render(transactions, r.flags.Limit)
}
