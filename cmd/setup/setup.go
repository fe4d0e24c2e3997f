package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"

	genericCache "github.com/budhip/go-fp-ledger/internal/common/cache"
	"github.com/budhip/go-fp-ledger/internal/common/graceful"
	"github.com/budhip/go-fp-ledger/internal/common/idgenerator"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	cMetrics "github.com/budhip/go-fp-ledger/internal/common/metrics"
	"github.com/budhip/go-fp-ledger/internal/common/retry"
	"github.com/budhip/go-fp-ledger/internal/config"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/repositories"
	"github.com/budhip/go-fp-ledger/internal/services"
)

type Setup struct {
	Config    config.Config
	NewRelic  *newrelic.Application
	WriteDB   *sql.DB
	ReadDB    *sql.DB
	Cache     *redis.Client
	RepoCache repositories.CacheRepository
	Service   *services.Services
	Metrics   cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load(
		config.WithConfigFileName("config"),
		config.WithConfigFileSearchPaths("/config", "./config", "."),
	)
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := log.DebugLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = log.InfoLevel()
	}
	if cfg.App.LogLevel != "" {
		logLevel = log.WithLevel(cfg.App.LogLevel)
	}

	log.Init(cfg.App.Name+"-"+command,
		log.WithEnv(cfg.App.Env),
		log.WithCaller(true),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// register DB stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cMetrics.BuildFQName(cfg.App.Name, command, "write"), cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	err = mtc.RegisterDB(readDB, cMetrics.BuildFQName(cfg.App.Name, command, "read"), cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	var (
		cache        *redis.Client
		cacheRepo    repositories.CacheRepository
		balanceCache genericCache.Client[decimal.Decimal]
		rangeCache   genericCache.Client[models.RangeBalances]
	)

	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		// connect to redis
		cache = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Db,
		})
		if _, err = cache.Ping(ctx).Result(); err != nil {
			err = fmt.Errorf("failed connect to redis: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

		// register redis prometheus metrics
		err = mtc.RegisterRedis(cache, cMetrics.FlattenName(cfg.App.Name), command)
		if err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}

		cacheRepo = repositories.NewCacheRepository(cache)
		balanceCache = genericCache.NewRedisClient[decimal.Decimal](cache)
		rangeCache = genericCache.NewRedisClient[models.RangeBalances](cache)

	case config.CacheDriverBadger:
		var db *badger.DB
		db, err = genericCache.OpenBadger(cfg.Cache.BadgerPath)
		if err != nil {
			err = fmt.Errorf("failed open badger at %q: %w", cfg.Cache.BadgerPath, err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return db.Close() })

		cacheRepo = repositories.NewLocalCacheRepository()
		balanceCache = genericCache.NewBadgerClient[decimal.Decimal](db)
		rangeCache = genericCache.NewBadgerClient[models.RangeBalances](db)

	case config.CacheDriverMemory:
		balanceMem := genericCache.NewInMemoryClient[decimal.Decimal]()
		rangeMem := genericCache.NewInMemoryClient[models.RangeBalances]()
		stopper = append(stopper, func(ctx context.Context) error {
			balanceMem.Close()
			rangeMem.Close()
			return nil
		})

		cacheRepo = repositories.NewLocalCacheRepository()
		balanceCache = balanceMem
		rangeCache = rangeMem

	default:
		err = fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
		return
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		balanceCache,
		rangeCache,
		retry.NewExponentialBackOff(cfg.ExponentialBackoff),
		idgenerator.New(),
		mtc,
	)

	return &Setup{
		Config:    cfg,
		NewRelic:  newRelic,
		WriteDB:   writeDB,
		ReadDB:    readDB,
		Cache:     cache,
		RepoCache: cacheRepo,
		Service:   srv,
		Metrics:   mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env != config.PROD_ENV || cfg.NewRelicLicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(log.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); nil != err {
		log.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
