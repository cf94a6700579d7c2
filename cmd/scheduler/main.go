package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/acmepay/transactions/internal/pkg/config"
	"github.com/acmepay/transactions/internal/pkg/database"
	"github.com/acmepay/transactions/internal/pkg/logger"
	accountRepo "github.com/acmepay/transactions/services/account/repository"
	accountUsecase "github.com/acmepay/transactions/services/account/usecase"
	reportRepo "github.com/acmepay/transactions/services/report/repository"
	reportUsecase "github.com/acmepay/transactions/services/report/usecase"
)

func main() {
	configPath := flag.String("config", "", "Path to env-style config file")
	runOnce := flag.Bool("run-once", false, "Generate reports once and exit")
	month := flag.String("month", "", "Target month (YYYY-MM), default current month")
	outputDir := flag.String("output-dir", "", "Directory to save reports (default from config)")
	interval := flag.Duration("interval", 0, "Run every interval instead of daily at midnight")
	flag.Parse()

	configs := config.InitConfig(*configPath)
	dir := *outputDir
	if dir == "" {
		dir = configs.Reports.OutputDir
	}

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
	db := postgresClient.GetDB()

	reportUC := reportUsecase.NewReportUC(reportRepo.NewReportRepo(db))
	accountUC := accountUsecase.NewAccountUC(accountRepo.NewAccountRepo(db))
	writer := reportUsecase.NewReportWriter(reportUC, accountUC, appLogger)

	run := func() {
		if err := writer.WriteMonthlyReports(context.Background(), dir, *month); err != nil {
			appLogger.WithError(err).Error("Failed to generate reports")
		}
	}

	if *runOnce {
		run()
		return
	}

	// Run once at startup, then on schedule.
	run()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if *interval > 0 {
		appLogger.WithFields(logrus.Fields{"interval": interval.String()}).
			Info("Scheduler started")
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				run()
			case <-sigCh:
				appLogger.Info("Scheduler stopped")
				return
			}
		}
	}

	appLogger.Info("Scheduler started, running daily at midnight")
	for {
		select {
		case <-time.After(untilMidnight()):
			run()
		case <-sigCh:
			appLogger.Info("Scheduler stopped")
			return
		}
	}
}

func untilMidnight() time.Duration {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return time.Until(next)
}
