package config

import (
	"fmt"
	"time"
)

// Location resolves the ledger timezone used for conceptual dates.
func (c *Config) Location() (*time.Location, error) {
	switch c.Ledger.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.Ledger.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger timezone '%s': %w", c.Ledger.Timezone, err)
	}
	return loc, nil
}
