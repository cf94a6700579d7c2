package main

import (
	"log"
	"time"

	"github.com/acmepay/transactions/internal/pkg/config"
	"github.com/acmepay/transactions/internal/pkg/logger"
	nsqpkg "github.com/acmepay/transactions/internal/pkg/nsq"
)

// Sample messages for exercising the consumer and validation path. The last
// one is deliberately missing receiver_id.
func sampleTransactions() []map[string]interface{} {
	now := time.Now().UTC().Format("2006-01-02T15:04:05") + "Z"
	return []map[string]interface{}{
		{
			"transaction_id": "tx1001",
			"sender_id":      "user1",
			"receiver_id":    "user2",
			"amount":         250.00,
			"currency":       "USD",
			"timestamp":      now,
			"status":         "completed",
		},
		{
			"transaction_id": "tx1002",
			"sender_id":      "user2",
			"receiver_id":    "user3",
			"amount":         500.00,
			"currency":       "EUR",
			"timestamp":      now,
			"status":         "pending",
		},
		{
			"transaction_id": "tx1003",
			"sender_id":      "user1",
			"amount":         100.00,
			"currency":       "GBP",
			"timestamp":      now,
			"status":         "failed",
		},
	}
}

func main() {
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ""))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to create NSQ producer")
	}
	defer producer.Stop()

	for _, tx := range sampleTransactions() {
		if err := producer.Publish(configs.NSQ.Topic, tx); err != nil {
			appLogger.WithError(err).Fatal("Failed to publish message")
		}
		appLogger.WithField("transaction_id", tx["transaction_id"]).Info("Sent message")
	}
}
