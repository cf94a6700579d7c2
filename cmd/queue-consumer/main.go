package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/acmepay/transactions/internal/pkg/config"
	"github.com/acmepay/transactions/internal/pkg/database"
	"github.com/acmepay/transactions/internal/pkg/logger"
	nsqpkg "github.com/acmepay/transactions/internal/pkg/nsq"
	"github.com/acmepay/transactions/services/ingest"
	ingestHandler "github.com/acmepay/transactions/services/ingest/handler"
	ingestRepo "github.com/acmepay/transactions/services/ingest/repository"
	ingestUsecase "github.com/acmepay/transactions/services/ingest/usecase"
)

func main() {
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ""))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	var redisClient *database.RedisClient
	if rc, err := database.NewRedisClient(configs.Redis); err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, continuing without seen-id cache")
	} else {
		redisClient = rc
		defer redisClient.Close()
	}

	var alerts ingest.AlertPublisher
	if producer, err := nsqpkg.NewProducer(configs.NSQ.Address); err != nil {
		appLogger.WithError(err).Warn("NSQ producer unavailable, suspicious alerts will be log-only")
	} else {
		alerts = producer
		defer producer.Stop()
	}

	db := postgresClient.GetDB()
	ingestUC := ingestUsecase.NewIngestUC(
		configs,
		ingestRepo.NewLedgerRepo(configs, db, redisClient),
		ingestRepo.NewQuarantineRepo(db),
		alerts,
		appLogger,
	)

	queueHandler := ingestHandler.NewQueueHandler(ingestUC, appLogger)
	consumer, err := nsqpkg.NewConsumer(
		configs.NSQ.Topic,
		configs.NSQ.Channel,
		configs.NSQ.Address,
		queueHandler.HandleMessage,
	)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to create NSQ consumer")
	}
	defer consumer.Stop()

	if len(configs.NSQ.LookupAddresses) > 0 {
		if err := consumer.ConnectToLookupd(configs.NSQ.LookupAddresses); err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ lookupd")
		}
	}

	appLogger.WithFields(logrus.Fields{
		"topic":   configs.NSQ.Topic,
		"channel": configs.NSQ.Channel,
	}).Info("Listening for messages")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	appLogger.Info("Shutting down consumer")
}
