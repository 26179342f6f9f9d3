package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/tailorbook/cmd/cashbook"
	"github.com/hance08/tailorbook/cmd/client"
	"github.com/hance08/tailorbook/cmd/transaction"
	"github.com/hance08/tailorbook/internal/app"
	"github.com/hance08/tailorbook/internal/config"
	"github.com/hance08/tailorbook/internal/errhandler"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/ui/prompts"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// --config must be known before the app is built, ahead of cobra's parse
	cfgFile = lookupConfigFlag(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := errhandler.HandleError(newRootCmd(application).ExecuteContext(ctx))
	stop()
	cleanup()
	os.Exit(code)
}

func newRootCmd(application *app.App) *cobra.Command {
	svc := application.Service
	session := &model.Session{}
	var operator string

	rootCmd := &cobra.Command{
		Use:   "tailorbook",
		Short: "tailorbook keeps a tailoring shop's cash book",
		Long: `tailorbook keeps a tailoring shop's cash book.

Record money received and paid out, then "balance the book" to close a period.
The cash book is always rebuilt from the recorded transactions and balances.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(operator)
			if err != nil {
				return err
			}
			*session = s
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&operator, "as", "", "record entries under this operator name")

	rootCmd.AddCommand(transaction.NewTransactionCmd(svc, session))
	rootCmd.AddCommand(client.NewClientCmd(svc, session))
	rootCmd.AddCommand(cashbook.NewCashbookCmd(svc, session))
	rootCmd.AddCommand(NewInfoCmd(application))

	return rootCmd
}

// resolveSession picks the operator from --as, then the config, and runs the
// first-use wizard when neither is set.
func resolveSession(flagOperator string) (model.Session, error) {
	if op := strings.TrimSpace(flagOperator); op != "" {
		return model.Session{Operator: op}, nil
	}
	if op := strings.TrimSpace(cfg.Defaults.Operator); op != "" {
		return model.Session{Operator: op}, nil
	}

	if err := initWizard(); err != nil {
		return model.Session{}, err
	}
	return model.Session{Operator: cfg.Defaults.Operator}, nil
}

func initConfig() error {
	defaults := config.NewDefault()
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("defaults.currency", defaults.Defaults.Currency)
	viper.SetDefault("defaults.symbol", defaults.Defaults.Symbol)
	viper.SetDefault("defaults.operator", defaults.Defaults.Operator)
	viper.SetDefault("ledger.timezone", defaults.Ledger.Timezone)
	viper.SetDefault("ledger.warn_on_drift", defaults.Ledger.WarnOnDrift)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.path", defaults.Log.Path)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("TAILORBOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func initWizard() error {
	pterm.Info.Println("No operator is configured yet.")

	d, err := prompts.PromptInitDefaults(cfg.Defaults)
	if err != nil {
		return err
	}

	viper.Set("defaults.operator", d.Operator)
	viper.Set("defaults.currency", d.Currency)
	viper.Set("defaults.symbol", d.Symbol)
	cfg.Defaults = d

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Keeping the book as %s in %s\n", d.Operator, d.Currency)

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// lookupConfigFlag finds -c/--config in raw arguments.
func lookupConfigFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}
