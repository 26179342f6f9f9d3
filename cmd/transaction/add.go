package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/ui/prompts"
	"github.com/hance08/tailorbook/internal/ui/views"
	"github.com/hance08/tailorbook/internal/utils"
)

type addFlags struct {
	Type    string
	Desc    string
	Amount  string
	Method  string
	Date    string
	Client  string
	Voucher string
}

type addRunner struct {
	svc     *service.Service
	session *model.Session
	flags   *addFlags
	cmd     *cobra.Command
}

func NewAddCmd(svc *service.Service, session *model.Session) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record money received or paid out",
		Long: `Record money received or paid out.

Use flags for quick entry or run without flags for guided input.

Examples:
  # Interactive mode
  tailorbook transaction add

  # Quick mode with flags
  tailorbook transaction add --type income --desc "Agbada" --amount 45000 --method cash --client "Mr Eze"
  tailorbook transaction add --type expense --desc "Thread" --amount 1,200.50 --method bank --date 2026-03-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:     svc,
				session: session,
				flags:   flags,
				cmd:     cmd,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "income or expense")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount (e.g., 150 or 1,500.50)")
	cmd.Flags().StringVarP(&flags.Method, "method", "m", "cash", "Payment method: cash or bank")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVar(&flags.Client, "client", "", "Client name (must already exist)")
	cmd.Flags().StringVar(&flags.Voucher, "voucher", "", "Voucher or receipt number")

	return cmd
}

func (r *addRunner) Run(ctx context.Context) error {
	hasFlags := r.cmd.Flags().Changed("type") || r.cmd.Flags().Changed("desc") ||
		r.cmd.Flags().Changed("amount")

	var (
		input service.TransactionInput
		err   error
	)
	if hasFlags {
		input, err = r.flagsMode()
	} else {
		input, err = r.interactiveMode(ctx)
	}
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.Create(ctx, *r.session, input)
	if err != nil {
		return err
	}

	return views.RenderTransactionSummary(tx, r.svc.Config.Defaults.Symbol)
}

func (r *addRunner) flagsMode() (service.TransactionInput, error) {
	if r.flags.Type == "" || r.flags.Amount == "" || r.flags.Desc == "" {
		return service.TransactionInput{}, fmt.Errorf("when using flags, --type, --desc and --amount are all required")
	}

	txType, err := service.ParseType(r.flags.Type)
	if err != nil {
		return service.TransactionInput{}, err
	}

	method, err := service.ParseMethod(r.flags.Method)
	if err != nil {
		return service.TransactionInput{}, err
	}

	amount, err := utils.ParseToMinor(r.flags.Amount)
	if err != nil {
		return service.TransactionInput{}, err
	}

	input := service.TransactionInput{
		Type:          txType,
		Description:   r.flags.Desc,
		Amount:        amount,
		PaymentMethod: method,
		ClientName:    r.flags.Client,
		VoucherNo:     r.flags.Voucher,
	}

	if r.flags.Date != "" {
		loc, err := r.svc.Config.Location()
		if err != nil {
			return service.TransactionInput{}, err
		}
		input.Date, err = time.ParseInLocation(constants.DateFormat, r.flags.Date, loc)
		if err != nil {
			return service.TransactionInput{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
		}
	}

	return input, nil
}

func (r *addRunner) interactiveMode(ctx context.Context) (service.TransactionInput, error) {
	clients, err := r.svc.Client.List(ctx)
	if err != nil {
		return service.TransactionInput{}, err
	}

	loc, err := r.svc.Config.Location()
	if err != nil {
		return service.TransactionInput{}, err
	}

	return prompts.PromptTransaction(clients, loc, time.Now().In(loc))
}
