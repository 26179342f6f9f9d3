package cashbook

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/ledger"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/service"
)

func NewCashbookCmd(svc *service.Service, session *model.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cashbook",
		Aliases: []string{"cb", "book"},
		Short:   "View and balance the cash book",
		Long: `View and balance the cash book.

The book is rebuilt from every recorded transaction and balance each time it
is shown. Entries after the last balance are unreconciled.`,
	}

	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewBalanceCmd(svc, session))
	cmd.AddCommand(NewCheckpointsCmd(svc))
	cmd.AddCommand(NewExportCmd(svc))
	cmd.AddCommand(NewWatchCmd(svc))

	return cmd
}

type rangeFlags struct {
	From string
	To   string
}

func (f *rangeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.From, "from", "", "First day to show (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.To, "to", "", "Last day to show (YYYY-MM-DD)")
}

// parseRange turns --from/--to into an inclusive DateRange in loc.
func parseRange(from, to string, loc *time.Location) (ledger.DateRange, error) {
	var rng ledger.DateRange

	if from != "" {
		t, err := time.ParseInLocation(constants.DateFormat, from, loc)
		if err != nil {
			return rng, fmt.Errorf("invalid --from date, use YYYY-MM-DD: %w", err)
		}
		rng.Start = &t
	}
	if to != "" {
		t, err := time.ParseInLocation(constants.DateFormat, to, loc)
		if err != nil {
			return rng, fmt.Errorf("invalid --to date, use YYYY-MM-DD: %w", err)
		}
		rng.End = &t
	}

	if rng.Start != nil && rng.End != nil && rng.Start.After(*rng.End) {
		return ledger.DateRange{}, fmt.Errorf("--from %s is after --to %s", from, to)
	}

	return rng, nil
}

func (f *rangeFlags) resolve(svc *service.Service) (ledger.DateRange, error) {
	loc, err := svc.Config.Location()
	if err != nil {
		return ledger.DateRange{}, err
	}
	return parseRange(f.From, f.To, loc)
}
