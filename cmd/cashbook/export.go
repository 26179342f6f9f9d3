package cashbook

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/export"
	"github.com/hance08/tailorbook/internal/service"
)

type exportFlags struct {
	rangeFlags
	Format string
	Output string
}

type exportRunner struct {
	svc   *service.Service
	flags *exportFlags
	out   io.Writer
}

func NewExportCmd(svc *service.Service) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export cash book rows as json, yaml or csv",
		Long: `Export cash book rows as json, yaml or csv.

Examples:
  tailorbook cashbook export --format csv --output march.csv --from 2026-03-01 --to 2026-03-31
  tailorbook cashbook export --format json | jq '.[] | select(.kind == "Posting")'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &exportRunner{svc: svc, flags: flags, out: cmd.OutOrStdout()}
			return runner.Run(cmd.Context())
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&flags.Format, "format", "f", export.FormatCSV, "json, yaml or csv")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func (r *exportRunner) Run(ctx context.Context) error {
	format, err := export.ParseFormat(r.flags.Format)
	if err != nil {
		return err
	}

	rng, err := r.flags.resolve(r.svc)
	if err != nil {
		return err
	}

	snap, err := r.svc.Ledger.Build(ctx, rng)
	if err != nil {
		return err
	}

	if r.flags.Output == "" {
		return export.Write(r.out, format, snap.Rows)
	}

	f, err := os.Create(r.flags.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.flags.Output, err)
	}
	if err := export.Write(f, format, snap.Rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	pterm.Success.Printf("Exported %d rows to %s\n", len(snap.Rows), r.flags.Output)
	return nil
}
