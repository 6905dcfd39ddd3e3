package setup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/LavaJover/shvark-flashdeal-service/internal/config"
	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/cache"
	publisher "github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/notifier"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/redislock"
)

type Dependencies struct {
	Config   *config.FlashDealConfig
	Logger   *slog.Logger
	DB       *gorm.DB
	Registry *prometheus.Registry
	Metrics  *metrics.DealMetrics

	Repositories *Repositories
	Notifier     *notifier.Notifier
	Locker       domain.SweepLocker
	EventLogger  domain.EventLogger

	closers []func(context.Context) error
}

type Repositories struct {
	DealStore domain.DealStore
	Directory cache.Directory
}

func InitializeDependencies(cfg *config.FlashDealConfig, log *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		Logger:   log,
		Registry: prometheus.NewRegistry(),
	}
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewDealMetrics(deps.Registry)

	if err := deps.initStorage(); err != nil {
		return nil, err
	}

	directory, err := cache.NewDirectoryCache(deps.Repositories.Directory, cfg.Directory.CacheSize, cfg.Directory.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("directory cache: %w", err)
	}
	deps.Repositories.Directory = directory

	deps.Notifier = deps.initNotifier()
	deps.Locker = deps.initLocker()

	return deps, nil
}

func (d *Dependencies) initStorage() error {
	cfg := d.Config
	switch cfg.DealDB.Driver {
	case "memory":
		d.Logger.Warn("using in-memory deal store, data is lost on restart")
		d.Repositories = &Repositories{
			DealStore: memory.NewDealStore(cfg.DealDB.LockTimeout),
			Directory: memory.NewDirectory(),
		}
		return nil
	case "postgres", "":
	default:
		return fmt.Errorf("unknown deal_db driver %q", cfg.DealDB.Driver)
	}

	db := postgres.MustInitDB(cfg)
	if cfg.Migrations.Enabled {
		if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}
	d.DB = db
	d.EventLogger = logger.NewPGDealEventLogger(db)
	d.Repositories = &Repositories{
		DealStore: repository.NewDefaultDealStore(db, cfg.DealDB.LockTimeout),
		Directory: repository.NewDefaultDirectoryRepository(db),
	}
	d.closers = append(d.closers, func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
	return nil
}

func (d *Dependencies) initNotifier() *notifier.Notifier {
	cfg := d.Config.KafkaService
	if cfg.Driver == "log" {
		return notifier.New(notifier.NewLogSink(d.Logger))
	}

	kafkaPublisher := publisher.NewDefaultKafkaPublisher([]string{fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)})
	d.closers = append(d.closers, func(context.Context) error {
		return kafkaPublisher.Close()
	})
	return notifier.New(notifier.NewKafkaSink(kafkaPublisher, cfg.Topic))
}

func (d *Dependencies) initLocker() domain.SweepLocker {
	cfg := d.Config.Redis
	if !cfg.Enabled {
		return memory.NewSweepLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		d.Logger.Warn("redis is unreachable, sweep lock will retry on each run", "addr", cfg.Addr, "error", err.Error())
	}
	d.closers = append(d.closers, func(context.Context) error {
		return client.Close()
	})
	return redislock.NewSweepLocker(client)
}

// Close releases the connections opened by InitializeDependencies in reverse
// order.
func (d *Dependencies) Close(ctx context.Context) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil {
			d.Logger.Error("failed to close dependency", "error", err.Error())
		}
	}
}
