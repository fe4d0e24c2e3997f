package config

import (
	"time"
)

type (
	Config struct {
		App                App                      `json:"app" mapstructure:"app"`
		Postgres           Postgres                 `json:"postgres" mapstructure:"postgres"`
		Redis              Redis                    `json:"redis" mapstructure:"redis"`
		Cache              Cache                    `json:"cache" mapstructure:"cache"`
		NewRelicLicenseKey string                   `json:"new_relic_license_key" mapstructure:"new_relic_license_key"`
		Currency           Currency                 `json:"currency" mapstructure:"currency"`
		AccountTypes       AccountTypes             `json:"account_types" mapstructure:"account_types"`
		Recurrence         Recurrence               `json:"recurrence" mapstructure:"recurrence"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"maxIdleConnections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	// Cache selects the backend used for memoized balance computations.
	// Cached values are never invalidated on write, BalanceTTL is the staleness window.
	Cache struct {
		Driver     string        `json:"driver" mapstructure:"driver"`
		BadgerPath string        `json:"badger_path" mapstructure:"badger_path"`
		BalanceTTL time.Duration `json:"balance_ttl" mapstructure:"balance_ttl"`
	}

	Currency struct {
		DefaultCode string `json:"default_code" mapstructure:"default_code"`
	}

	// AccountTypes is the account type compatibility configuration.
	// ExpectedTypes keys are lower case transaction types, e.g. "withdrawal".
	AccountTypes struct {
		ByIdentifier    map[string][]string `json:"by_identifier" mapstructure:"by_identifier"`
		ExpectedTypes   ExpectedTypes       `json:"expected_types" mapstructure:"expected_types"`
		CashAccountName string              `json:"cash_account_name" mapstructure:"cash_account_name"`
	}

	ExpectedTypes struct {
		Source      map[string][]string `json:"source" mapstructure:"source"`
		Destination map[string][]string `json:"destination" mapstructure:"destination"`
	}

	Recurrence struct {
		MaxPerRun int           `json:"max_per_run" mapstructure:"max_per_run"`
		LockTTL   time.Duration `json:"lock_ttl" mapstructure:"lock_ttl"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
	}
)

const (
	CacheDriverRedis  = "redis"
	CacheDriverBadger = "badger"
	CacheDriverMemory = "memory"
)

// DefaultAccountTypes returns the compatibility matrix used when the
// configuration file does not provide one.
func DefaultAccountTypes() AccountTypes {
	var (
		asset          = "Asset account"
		expense        = "Expense account"
		revenue        = "Revenue account"
		cash           = "Cash account"
		initial        = "Initial balance account"
		reconciliation = "Reconciliation account"
		loan           = "Loan"
		debt           = "Debt"
		mortgage       = "Mortgage"
		creditCard     = "Credit card"
		liability      = "Liability credit account"
	)

	return AccountTypes{
		CashAccountName: "Cash account",
		ByIdentifier: map[string][]string{
			"asset":       {asset},
			"expense":     {expense},
			"revenue":     {revenue},
			"cash":        {cash},
			"opening":     {initial},
			"initial":     {initial},
			"reconcile":   {reconciliation},
			"loan":        {loan},
			"debt":        {debt},
			"mortgage":    {mortgage},
			"creditcard":  {creditCard},
			"liability":   {loan, debt, mortgage},
			"liabilities": {loan, debt, mortgage},
			"all":         {asset, expense, revenue, cash, initial, reconciliation, loan, debt, mortgage, creditCard, liability},
		},
		ExpectedTypes: ExpectedTypes{
			Source: map[string][]string{
				"withdrawal":       {asset, loan, debt, mortgage, creditCard},
				"deposit":          {revenue, cash, loan, debt, mortgage},
				"transfer":         {asset, loan, debt, mortgage, creditCard},
				"opening balance":  {initial, asset, loan, debt, mortgage, creditCard},
				"reconciliation":   {reconciliation, asset},
				"liability credit": {liability, loan, debt, mortgage},
			},
			Destination: map[string][]string{
				"withdrawal":       {expense, cash, loan, debt, mortgage},
				"deposit":          {asset, loan, debt, mortgage, creditCard},
				"transfer":         {asset, loan, debt, mortgage, creditCard},
				"opening balance":  {initial, asset, loan, debt, mortgage, creditCard},
				"reconciliation":   {reconciliation, asset},
				"liability credit": {liability, loan, debt, mortgage},
			},
		},
	}
}
