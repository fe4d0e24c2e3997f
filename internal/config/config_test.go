package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `
app:
  name: ledger-test
  http_port: 8080
cache:
  driver: memory
  balance_ttl: 90s
account_types:
  cash_account_name: Petty cash
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	t.Setenv("GO_FP_LEDGER_CURRENCY_DEFAULT_CODE", "USD")

	cfg, err := Load(WithConfigFileSearchPaths(dir), WithEnvFiles(filepath.Join(dir, "missing.env")))
	require.NoError(t, err)

	assert.Equal(t, "ledger-test", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.HTTPPort)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 90*time.Second, cfg.Cache.BalanceTTL)
	assert.Equal(t, "USD", cfg.Currency.DefaultCode)
	assert.Equal(t, "Petty cash", cfg.AccountTypes.CashAccountName)

	// matrix falls back to the compiled defaults
	assert.Equal(t, DefaultAccountTypes().ExpectedTypes.Source["withdrawal"], cfg.AccountTypes.ExpectedTypes.Source["withdrawal"])
	assert.Contains(t, cfg.AccountTypes.ByIdentifier, "liabilities")
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(WithConfigFileSearchPaths(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "go-fp-ledger", cfg.App.Name)
	assert.Equal(t, CacheDriverRedis, cfg.Cache.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.BalanceTTL)
	assert.Equal(t, "EUR", cfg.Currency.DefaultCode)
}

func TestStringToEnvironment(t *testing.T) {
	tests := []struct {
		in       string
		want     Environment
		deployed bool
	}{
		{in: "local", want: LOCAL_ENV},
		{in: "DEV", want: DEV_ENV, deployed: true},
		{in: " uat ", want: UAT_ENV, deployed: true},
		{in: "prod", want: PROD_ENV, deployed: true},
		{in: "staging", want: UNDEFINED_ENV},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := StringToEnvironment(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.deployed, got.IsDeployed())
		})
	}
	assert.Equal(t, "UNDEFINED", UNDEFINED_ENV.String())
	assert.Equal(t, "prod", PROD_ENV.String())
}
