package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/acmepay/transactions/internal/pkg/config"
	"github.com/acmepay/transactions/internal/pkg/database"
	"github.com/acmepay/transactions/internal/pkg/logger"
	reportRepo "github.com/acmepay/transactions/services/report/repository"
	reportUsecase "github.com/acmepay/transactions/services/report/usecase"
)

func main() {
	configPath := flag.String("config", "", "Path to env-style config file")
	startDate := flag.String("start-date", "", "Start date (YYYY-MM-DD, inclusive)")
	endDate := flag.String("end-date", "", "End date (YYYY-MM-DD, inclusive)")
	format := flag.String("format", "console", "Output format: console, csv or json")
	output := flag.String("output", "", "Output file (for csv or json)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: report [flags] <payments|daily_totals> <user_id>")
		os.Exit(2)
	}
	reportType, userID := flag.Arg(0), flag.Arg(1)
	if reportType != "payments" && reportType != "daily_totals" {
		fmt.Fprintf(os.Stderr, "Unknown report type: %s\n", reportType)
		os.Exit(2)
	}

	start, err := parseDate(*startDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid start date, use YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}
	end, err := parseDate(*endDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid end date, use YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}

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

	reportUC := reportUsecase.NewReportUC(reportRepo.NewReportRepo(postgresClient.GetDB()))
	ctx := context.Background()

	var data interface{}
	var rows [][]string
	if reportType == "payments" {
		payments, err := reportUC.PaymentsByUser(ctx, userID, start, end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
		data = payments
		rows = reportUsecase.PaymentsCSV(payments)
	} else {
		totals, err := reportUC.DailyTotals(ctx, userID, start, end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
		data = totals
		rows = reportUsecase.DailyTotalsCSV(totals)
	}

	if err := emit(*format, *output, data, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func emit(format, output string, data interface{}, rows [][]string) error {
	out := os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "csv":
		writer := csv.NewWriter(out)
		if err := writer.WriteAll(rows); err != nil {
			return err
		}
		writer.Flush()
		return writer.Error()
	default:
		// Console: the CSV rows double as a readable table.
		for _, row := range rows {
			fmt.Fprintln(out, row)
		}
		return nil
	}
}
