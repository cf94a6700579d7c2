package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

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
	configPath := flag.String("config", "", "Path to env-style config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: csv-importer [-config path] <file.csv>")
		os.Exit(2)
	}
	filename := flag.Arg(0)

	configs := config.InitConfig(*configPath)

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

	// Redis and NSQ are optional for a batch run; the importer degrades to
	// plain DB checks and log-only alerts when they are unreachable.
	var redisClient *database.RedisClient
	if rc, err := database.NewRedisClient(configs.Redis); err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, continuing without seen-id cache")
	} else {
		redisClient = rc
		defer redisClient.Close()
	}

	var alerts ingest.AlertPublisher
	if producer, err := nsqpkg.NewProducer(configs.NSQ.Address); err != nil {
		appLogger.WithError(err).Warn("NSQ unavailable, suspicious alerts will be log-only")
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

	importer := ingestHandler.NewCSVImporter(ingestUC, appLogger)
	summary, err := importer.ImportFile(context.Background(), filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during import: %v\n", err)
		os.Exit(1)
	}

	for i, res := range summary.Results {
		fmt.Printf("row %d: %s", i+1, res.Outcome)
		if res.TransactionID != "" {
			fmt.Printf(" id=%s", res.TransactionID)
		}
		if res.Reason != "" {
			fmt.Printf(" reason=%q", res.Reason)
		}
		if res.Suspicious {
			fmt.Printf(" suspicious=true")
		}
		fmt.Println()
	}
	fmt.Printf("accepted=%d quarantined=%d duplicates=%d\n",
		summary.Accepted, summary.Quarantined, summary.Duplicates)
}
