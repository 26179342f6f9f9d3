package prompts

import (
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/utils"
)

const noClient = "(walk-in, no client)"

// PromptTransaction collects a transaction interactively. Dates are read in loc.
func PromptTransaction(clients []*model.Client, loc *time.Location, today time.Time) (service.TransactionInput, error) {
	var (
		txType    = constants.TypeIncome
		method    = constants.MethodCash
		desc      string
		amountStr string
		dateStr   string
		client    = noClient
		voucher   string
	)

	clientOpts := []huh.Option[string]{huh.NewOption(noClient, noClient)}
	for _, c := range clients {
		clientOpts = append(clientOpts, huh.NewOption(c.Name, c.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type:").
				Options(
					huh.NewOption("Income (money received)", constants.TypeIncome),
					huh.NewOption("Expense (money paid out)", constants.TypeExpense),
				).
				Value(&txType),
			huh.NewSelect[string]().
				Title("Payment method:").
				Options(
					huh.NewOption(constants.MethodCash, constants.MethodCash),
					huh.NewOption(constants.MethodBank, constants.MethodBank),
				).
				Value(&method),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Description:").
				Value(&desc).
				Validate(validateRequired("description")),
			huh.NewInput().
				Title("Amount:").
				Description("e.g. 15000 or 15,000.50").
				Value(&amountStr).
				Validate(validateAmount),
			huh.NewInput().
				Title("Date (YYYY-MM-DD):").
				Description("Press Enter for today").
				Placeholder(today.Format(constants.DateFormat)).
				Value(&dateStr).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Client:").
				Options(clientOpts...).
				Height(10).
				Value(&client),
			huh.NewInput().
				Title("Voucher / receipt no. (optional):").
				Value(&voucher),
		),
	)

	if err := form.Run(); err != nil {
		return service.TransactionInput{}, err
	}

	amount, err := utils.ParseToMinor(amountStr)
	if err != nil {
		return service.TransactionInput{}, err
	}

	in := service.TransactionInput{
		Type:          txType,
		Description:   desc,
		Amount:        amount,
		PaymentMethod: method,
		VoucherNo:     voucher,
	}
	if client != noClient {
		in.ClientName = client
	}
	if s := strings.TrimSpace(dateStr); s != "" {
		d, err := time.ParseInLocation(constants.DateFormat, s, loc)
		if err != nil {
			return service.TransactionInput{}, err
		}
		in.Date = d
	}

	return in, nil
}
