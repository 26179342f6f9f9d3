package cashbook

import (
	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/ui/views"
)

func NewCheckpointsCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "checkpoints",
		Aliases: []string{"balances"},
		Short:   "List every time the book was balanced",
		RunE: func(cmd *cobra.Command, args []string) error {
			cps, err := svc.Ledger.ListCheckpoints(cmd.Context())
			if err != nil {
				return err
			}
			return views.RenderCheckpointList(cps, svc.Config.Defaults.Symbol)
		},
	}
}
