package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/acmepay/transactions/internal/pkg/config"
	"github.com/acmepay/transactions/internal/pkg/database"
	"github.com/acmepay/transactions/internal/pkg/health"
	"github.com/acmepay/transactions/internal/pkg/logger"
	"github.com/acmepay/transactions/internal/pkg/middleware"
	accountHandler "github.com/acmepay/transactions/services/account/handler"
	accountRepo "github.com/acmepay/transactions/services/account/repository"
	accountUsecase "github.com/acmepay/transactions/services/account/usecase"
	reportHandler "github.com/acmepay/transactions/services/report/handler"
	reportRepo "github.com/acmepay/transactions/services/report/repository"
	reportUsecase "github.com/acmepay/transactions/services/report/usecase"
)

func main() {
	appName := "transactions-api"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ""))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	accountUC := accountUsecase.NewAccountUC(accountRepo.NewAccountRepo(db))
	reportUC := reportUsecase.NewReportUC(reportRepo.NewReportRepo(db))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggingMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version)
	accountHandler.NewAccountHandler(accountUC).RegisterRoutes(e)
	reportHandler.NewReportHandler(reportUC).RegisterRoutes(e)

	appLogger.WithFields(logrus.Fields{"app": appName, "port": configs.Server.Port}).
		Info("Starting server")
	if err := e.Start(fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)); err != nil {
		appLogger.WithError(err).Fatal("Failed to start server")
	}
}
