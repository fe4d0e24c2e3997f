package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "GO_FP_LEDGER"

type loaderOptions struct {
	fileName    string
	searchPaths []string
	envFiles    []string
}

type LoaderOption func(*loaderOptions)

func WithConfigFileName(name string) LoaderOption {
	return func(o *loaderOptions) { o.fileName = name }
}

func WithConfigFileSearchPaths(paths ...string) LoaderOption {
	return func(o *loaderOptions) { o.searchPaths = append(o.searchPaths, paths...) }
}

// WithEnvFiles loads dotenv files before reading the environment. Missing files are ignored.
func WithEnvFiles(files ...string) LoaderOption {
	return func(o *loaderOptions) { o.envFiles = append(o.envFiles, files...) }
}

// Load reads the configuration file (when present) and environment overrides
// into a Config, filling unset values with defaults.
func Load(opts ...LoaderOption) (Config, error) {
	o := &loaderOptions{
		fileName: "config",
		envFiles: []string{".env"},
	}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.searchPaths) == 0 {
		o.searchPaths = []string{"/config", "./config", "."}
	}

	for _, f := range o.envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetConfigName(o.fileName)
	for _, p := range o.searchPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return applyAccountTypeDefaults(cfg), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "go-fp-ledger")
	v.SetDefault("app.http_port", 9567)
	v.SetDefault("app.http_timeout", 30*time.Second)
	v.SetDefault("app.graceful_timeout", 10*time.Second)

	v.SetDefault("postgres.write.db_host", "localhost")
	v.SetDefault("postgres.write.db_port", "5432")
	v.SetDefault("postgres.write.db_schema", "public")
	v.SetDefault("postgres.read.db_host", "localhost")
	v.SetDefault("postgres.read.db_port", "5432")
	v.SetDefault("postgres.read.db_schema", "public")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")

	v.SetDefault("cache.driver", CacheDriverRedis)
	v.SetDefault("cache.balance_ttl", 5*time.Minute)

	v.SetDefault("currency.default_code", "EUR")

	v.SetDefault("recurrence.max_per_run", 500)
	v.SetDefault("recurrence.lock_ttl", 10*time.Minute)

	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("exponential_backoff.max_backoff_time", 30*time.Second)
	v.SetDefault("exponential_backoff.backoff_multiplier", 2)
}

func applyAccountTypeDefaults(cfg Config) Config {
	def := DefaultAccountTypes()
	if len(cfg.AccountTypes.ByIdentifier) == 0 {
		cfg.AccountTypes.ByIdentifier = def.ByIdentifier
	}
	if len(cfg.AccountTypes.ExpectedTypes.Source) == 0 {
		cfg.AccountTypes.ExpectedTypes.Source = def.ExpectedTypes.Source
	}
	if len(cfg.AccountTypes.ExpectedTypes.Destination) == 0 {
		cfg.AccountTypes.ExpectedTypes.Destination = def.ExpectedTypes.Destination
	}
	if cfg.AccountTypes.CashAccountName == "" {
		cfg.AccountTypes.CashAccountName = def.CashAccountName
	}

	return cfg
}
