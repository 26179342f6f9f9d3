package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
	Symbol   string `mapstructure:"symbol"`
	Operator string `mapstructure:"operator"`
}

type LedgerConfig struct {
	// Timezone is an IANA name used for conceptual dates; "Local" uses the host zone.
	Timezone    string `mapstructure:"timezone"`
	WarnOnDrift bool   `mapstructure:"warn_on_drift"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "NGN", Symbol: "₦"},
		Ledger:   LedgerConfig{Timezone: "Local", WarnOnDrift: true},
		Log:      LogConfig{Level: "info", Path: ""},
	}
}
