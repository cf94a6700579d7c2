package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/acmepay/transactions/internal/pkg/config"
	"github.com/acmepay/transactions/internal/pkg/database"
	"github.com/acmepay/transactions/internal/pkg/logger"
	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/account"
	accountRepo "github.com/acmepay/transactions/services/account/repository"
)

var users = []models.User{
	{ID: "user1", Name: "Alice"},
	{ID: "user2", Name: "Bob"},
	{ID: "user3", Name: "Charlie"},
}

var currencies = []models.Currency{
	{Code: "USD", Name: "US Dollar"},
	{Code: "EUR", Name: "Euro"},
	{Code: "GBP", Name: "British Pound"},
}

// Seeds sample users and currencies. Idempotent: an existing row is skipped.
func main() {
	configPath := flag.String("config", "", "Path to env-style config file")
	flag.Parse()

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

	repo := accountRepo.NewAccountRepo(postgresClient.GetDB())
	ctx := context.Background()

	for i := range users {
		err := repo.CreateUser(ctx, &users[i])
		if err != nil && !errors.Is(err, account.ErrAlreadyExists) {
			appLogger.WithError(err).Fatal("Failed to seed user")
		}
	}
	for i := range currencies {
		err := repo.CreateCurrency(ctx, &currencies[i])
		if err != nil && !errors.Is(err, account.ErrAlreadyExists) {
			appLogger.WithError(err).Fatal("Failed to seed currency")
		}
	}

	appLogger.Info("Seeded users and currencies")
}
