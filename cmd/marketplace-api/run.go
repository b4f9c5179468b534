package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	apiserver "github.com/dentamatch/marketplace/internal/api_server"
	"github.com/dentamatch/marketplace/internal/config"
	"github.com/dentamatch/marketplace/internal/events"
	"github.com/dentamatch/marketplace/internal/service"
	"github.com/dentamatch/marketplace/internal/store"
	"github.com/dentamatch/marketplace/pkg/log"
	"github.com/dentamatch/marketplace/pkg/migrations"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the marketplace api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		logLvl, err := zap.ParseAtomicLevel(cfg.Service.LogLevel)
		if err != nil {
			logLvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}

		logger := log.InitLog(logLvl)
		defer func() { _ = logger.Sync() }()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Starting API service")
		defer zap.S().Info("API service stopped")

		zap.S().Info("Initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Fatalw("initializing data store", "error", err)
		}

		s := newStore(cfg, db)
		defer s.Close()

		if cfg.Service.MigrationFolder != "" {
			if err := migrations.MigrateStore(db, cfg.Service.MigrationFolder); err != nil {
				zap.S().Fatalw("running migrations", "error", err)
			}
		} else if err := s.InitialMigration(); err != nil {
			zap.S().Fatalw("running initial migration", "error", err)
		}

		ep := newEventProducer(cfg)
		defer func() { _ = ep.Close() }()

		sweeper := service.NewOverdueSweeper(s)
		if err := sweeper.Start(cfg.Service.OverdueSweepInterval); err != nil {
			zap.S().Fatalw("starting overdue sweeper", "error", err)
		}
		defer sweeper.Stop()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			server := apiserver.New(cfg, s, listener, ep)
			if err := server.Run(ctx); err != nil {
				zap.S().Fatalw("running api server", "error", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Fatalw("creating metrics listener", "error", err)
			}

			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Fatalw("running metrics server", "error", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func newStore(cfg *config.Config, db *gorm.DB) store.Store {
	if cfg.Service.RedisURL == "" {
		return store.NewStore(db)
	}

	opts, err := redis.ParseURL(cfg.Service.RedisURL)
	if err != nil {
		zap.S().Errorw("invalid redis url, professional cache disabled", "error", err)
		return store.NewStore(db)
	}

	return store.NewStoreWithCache(db, redis.NewClient(opts))
}

func newEventProducer(cfg *config.Config) *events.EventProducer {
	opts := []events.ProducerOptions{}
	if cfg.Service.Kafka.Topic != "" {
		opts = append(opts, events.WithOutputTopic(cfg.Service.Kafka.Topic))
	}

	if len(cfg.Service.Kafka.Brokers) == 0 {
		return events.NewEventProducer(&events.StdoutWriter{}, opts...)
	}

	writer, err := events.NewKafkaWriter(cfg.Service.Kafka.Brokers, cfg.Service.Kafka.ClientID)
	if err != nil {
		zap.S().Errorw("failed to connect kafka, falling back to stdout events", "error", err)
		return events.NewEventProducer(&events.StdoutWriter{}, opts...)
	}

	return events.NewEventProducer(writer, opts...)
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
