package transaction

import (
	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/service"
)

// NewTransactionCmd represents the transaction command
func NewTransactionCmd(svc *service.Service, session *model.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Record and view transactions",
		Long: `Record and view transactions.

Transactions cannot be edited or deleted once recorded. Record a correcting
entry instead.`,
	}

	cmd.AddCommand(NewAddCmd(svc, session))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))

	return cmd
}
