package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigHonorsConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte("terminal:\n  currency: EUR\n  max_pin_attempts: 5\n")
	require.NoError(t, os.WriteFile(path, contents, 0644))

	cfgFile = path
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	require.NoError(t, initConfig())

	assert.Equal(t, "EUR", cfg.Terminal.Currency)
	assert.Equal(t, 5, cfg.Terminal.MaxPINAttempts)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestInitConfigKeepsDefaultsWithoutOverrides(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("database:\n  path: \":memory:\"\n"), 0644))
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	require.NoError(t, initConfig())

	assert.Equal(t, "USD", cfg.Terminal.Currency)
	assert.Equal(t, 3, cfg.Terminal.MaxPINAttempts)
	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, "123456789", cfg.Accounts[0].Number)
}
