package config

import "github.com/sultanbank/teller/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Terminal   TerminalConfig `mapstructure:"terminal"`
	Accounts   []SeedAccount  `mapstructure:"accounts"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	// Path is a sqlite DSN. The default ":memory:" keeps the ledger for
	// the process lifetime only.
	Path string `mapstructure:"path"`
}

type TerminalConfig struct {
	Currency       string `mapstructure:"currency"`
	MaxPINAttempts int    `mapstructure:"max_pin_attempts"`
}

// SeedAccount is one row of the static account table loaded at startup.
type SeedAccount struct {
	Number  string `mapstructure:"number"`
	PIN     string `mapstructure:"pin"`
	Balance string `mapstructure:"balance"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ":memory:"},
		Terminal: TerminalConfig{
			Currency:       "USD",
			MaxPINAttempts: constants.DefaultMaxPINAttempts,
		},
		Accounts: []SeedAccount{
			{Number: "123456789", PIN: "1234", Balance: "1500.00"},
			{Number: "987654321", PIN: "4321", Balance: "750.00"},
		},
	}
}
