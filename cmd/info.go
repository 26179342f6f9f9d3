package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hance08/tailorbook/internal/app"
	"github.com/hance08/tailorbook/internal/ui/views"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		// info must work before an operator is configured
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.Paths.DB); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          r.app.Paths.DB,
		DBExists:        dbExists,
		LogPath:         r.app.Paths.Log,
		DefaultCurrency: cfg.Defaults.Currency,
		Operator:        cfg.Defaults.Operator,
		Timezone:        cfg.Ledger.Timezone,
		AppDataDir:      r.app.Paths.AppDir,
	}

	return views.RenderSystemInfo(items)
}
