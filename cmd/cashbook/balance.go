package cashbook

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/ui"
	"github.com/hance08/tailorbook/internal/ui/views"
)

type balanceFlags struct {
	Date string
	Yes  bool
}

type balanceRunner struct {
	svc     *service.Service
	session *model.Session
	flags   *balanceFlags
}

func NewBalanceCmd(svc *service.Service, session *model.Session) *cobra.Command {
	flags := &balanceFlags{}

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance the book up to today",
		Long: `Balance the book: freeze the closing cash and bank figures of every
transaction recorded since the last balance.

The figures are carried down as the next period's opening balance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &balanceRunner{svc: svc, session: session, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flags.Date, "date", "", "Balance date (YYYY-MM-DD), default is today")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func (r *balanceRunner) Run(ctx context.Context) error {
	var balancedOn time.Time
	if r.flags.Date != "" {
		loc, err := r.svc.Config.Location()
		if err != nil {
			return err
		}
		if balancedOn, err = time.ParseInLocation(constants.DateFormat, r.flags.Date, loc); err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
		}
	}

	plan, err := r.svc.Ledger.PlanCheckpoint(ctx)
	if err != nil {
		return err
	}

	symbol := r.svc.Config.Defaults.Symbol
	if err := views.RenderBalancePreview(plan, symbol); err != nil {
		return err
	}

	if !r.flags.Yes {
		ok, err := ui.Confirm("Balance the book with these figures?", true)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Nothing was saved")
			return nil
		}
	}

	cp, err := r.svc.Ledger.CommitCheckpoint(ctx, *r.session, plan, balancedOn)
	if err != nil {
		return err
	}

	views.RenderBalanceSuccess(cp, symbol)
	return nil
}
