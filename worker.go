package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumematch/internal/database"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume analyze and recalculate jobs from the queue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := cfg.ValidateWorker(); err != nil {
			log.Error("worker configuration incomplete", zap.Error(err))
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db, err := sql.Open("postgres", cfg.DBURL)
		if err != nil {
			return fmt.Errorf("error opening db: %w", err)
		}
		defer db.Close()

		objects, err := newR2Fetcher(ctx, cfg.Storage)
		if err != nil {
			return err
		}

		conn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			return fmt.Errorf("error connecting to RabbitMQ: %w", err)
		}
		defer conn.Close()

		updates, err := newAMQPPublisher(conn, cfg.Worker.UpdatesExchange)
		if err != nil {
			return err
		}

		matcher, err := newMatcher(cfg, log)
		if err != nil {
			return err
		}

		workerConfig := WorkerConfig{
			DB:          database.New(db),
			Objects:     objects,
			Updates:     updates,
			Parser:      newParser(cfg, log),
			Matcher:     matcher,
			Logger:      log.Named("worker"),
			RABBITMQUrl: cfg.RabbitMQURL,
			Queue:       cfg.Worker.Queue,
			Concurrency: cfg.Worker.Concurrency,
			Now:         time.Now,
		}

		log.Info("starting consumer pool",
			zap.String("version", version),
			zap.Int("workers", cfg.Worker.Workers),
			zap.String("queue", cfg.Worker.Queue),
		)
		return workerConfig.StartConsumerWorkerPool(ctx, cfg.Worker.Workers)
	},
}

var recalculateCmd = &cobra.Command{
	Use:   "recalculate --job-id ID",
	Short: "Re-score a job's stored profiles with the configured weights",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		id, err := uuid.Parse(recalcJobID)
		if err != nil {
			return fmt.Errorf("invalid --job-id: %w", err)
		}
		if err := cfg.ValidateDatabase(); err != nil {
			return err
		}

		db, err := sql.Open("postgres", cfg.DBURL)
		if err != nil {
			return fmt.Errorf("error opening db: %w", err)
		}
		defer db.Close()

		matcher, err := newMatcher(cfg, log)
		if err != nil {
			return err
		}

		workerConfig := &WorkerConfig{
			DB:          database.New(db),
			Matcher:     matcher,
			Logger:      log.Named("recalculate"),
			Concurrency: cfg.Worker.Concurrency,
			Now:         time.Now,
		}
		results, err := recalculateJob(cmd.Context(), workerConfig, id)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), results)
	},
}

var recalcJobID string

func init() {
	rootCmd.AddCommand(workerCmd, recalculateCmd)

	workerCmd.Flags().IntP("workers", "w", 0, "number of queue consumers (default from config)")
	viper.BindPFlag("worker.workers", workerCmd.Flags().Lookup("workers"))

	recalculateCmd.Flags().StringVar(&recalcJobID, "job-id", "", "job to re-score")
	recalculateCmd.MarkFlagRequired("job-id")
}
