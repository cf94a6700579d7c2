package handler

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/acmepay/transactions/internal/pkg/logger"
	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/ingest"
)

// CSVImporter drives the batch feed: it walks a CSV file row by row and feeds
// each record through the shared ingestion pipeline. A bad row never aborts
// the batch; only a store or source failure does, and rows already processed
// stay committed.
type CSVImporter struct {
	uc  ingest.IngestUseCase
	log *logger.AppLogger
}

// NewCSVImporter creates a new CSV importer.
func NewCSVImporter(uc ingest.IngestUseCase, log *logger.AppLogger) *CSVImporter {
	return &CSVImporter{uc: uc, log: log}
}

// ImportSummary is the multiset of per-record outcomes of one batch run.
type ImportSummary struct {
	Results     []models.IngestResult
	Accepted    int
	Quarantined int
	Duplicates  int
}

func (s *ImportSummary) add(res models.IngestResult) {
	s.Results = append(s.Results, res)
	switch res.Outcome {
	case models.OutcomeAccepted:
		s.Accepted++
	case models.OutcomeQuarantined:
		s.Quarantined++
	case models.OutcomeDuplicate:
		s.Duplicates++
	}
}

// ImportFile imports transactions from the CSV file at path.
func (i *CSVImporter) ImportFile(ctx context.Context, path string) (*ImportSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer file.Close()

	return i.Import(ctx, file)
}

// Import imports transactions from CSV data. The first row is the header;
// every following row becomes one raw record keyed by the header columns.
func (i *CSVImporter) Import(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	summary := &ImportSummary{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// Row-level CSV malformation: the reader has advanced past the
			// bad line, so quarantine and keep going, the same way an
			// unparseable queue payload is handled.
			payload := strings.Join(record, ",")
			if payload == "" {
				// Quote errors yield no fields; the parse error's line and
				// column context is the best form of the row left.
				payload = parseErr.Error()
			}
			res, qErr := i.uc.Quarantine(ctx, err.Error(), payload, models.SourceCSV)
			if qErr != nil {
				return summary, qErr
			}
			summary.add(res)
			continue
		}
		if err != nil {
			// Not a malformed row but a failing source; the reader would
			// keep returning this forever. Abort like a store failure.
			return summary, fmt.Errorf("failed to read CSV row: %w", err)
		}

		raw := models.RawRecord{}
		for col, name := range header {
			if col < len(record) {
				raw[name] = record[col]
			}
		}

		res, err := i.uc.Ingest(ctx, raw, raw.Encode(), models.SourceCSV)
		if err != nil {
			// Store failure: the record was never judged invalid, so this is
			// not a quarantine. Abort the rest of the batch.
			return summary, err
		}
		summary.add(res)
	}

	i.log.WithFields(logrus.Fields{
		"accepted":    summary.Accepted,
		"quarantined": summary.Quarantined,
		"duplicates":  summary.Duplicates,
	}).Info("CSV import complete")
	return summary, nil
}
