package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/ui/prompts"
	"github.com/hance08/tailorbook/internal/ui/views"
	"github.com/hance08/tailorbook/internal/validation"
)

func NewClientCmd(svc *service.Service, session *model.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage the shop's clients",
	}

	cmd.AddCommand(NewAddCmd(svc, session))
	cmd.AddCommand(NewListCmd(svc))

	return cmd
}

type addFlags struct {
	Name  string
	Phone string
}

type addRunner struct {
	svc     *service.Service
	session *model.Session
	flags   *addFlags
}

func NewAddCmd(svc *service.Service, session *model.Session) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		Long: `Add a client so transactions can be recorded against them.

Examples:
  tailorbook client add
  tailorbook client add --name "Mrs Bello" --phone 08030000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{svc: svc, session: session, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Client name")
	cmd.Flags().StringVarP(&flags.Phone, "phone", "p", "", "Phone number")

	return cmd
}

func (r *addRunner) Run(ctx context.Context) error {
	name, phone := r.flags.Name, r.flags.Phone
	if name == "" {
		var err error
		validate := validation.NewClientValidator(r.svc.Client).NewClient(ctx)
		if name, phone, err = prompts.PromptClient(validate); err != nil {
			return err
		}
	}

	c, err := r.svc.Client.Create(ctx, *r.session, name, phone)
	if err != nil {
		return err
	}

	return views.RenderClientSuccess(c)
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := svc.Client.List(cmd.Context())
			if err != nil {
				return err
			}
			return views.RenderClientList(clients)
		},
	}
}
