package common

import (
	"fmt"
	"os"

	"dmadriz/bac-csv/internal/encoding"
	"dmadriz/bac-csv/internal/models"
	"dmadriz/bac-csv/internal/statement"
	"dmadriz/bac-csv/internal/store"
	"dmadriz/bac-csv/internal/transfers"
	"dmadriz/bac-csv/internal/transformer"

	"github.com/sirupsen/logrus"
)

// Convert runs the full pipeline for one statement file: read, decode, parse,
// load mappings, transform and write. importID is embedded into the Notes
// field of every output row. mappings may be nil, in which case transfer
// references are passed through untouched. No partial output is produced on
// failure.
func Convert(inputFile, outputFile string, importID int64, mappings *store.Store, opts transformer.Options) error {
	log.WithFields(logrus.Fields{
		"input":  inputFile,
		"output": outputFile,
	}).Info("Converting BAC statement to Monarch CSV")

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	text, err := encoding.Decode(raw)
	if err != nil {
		return fmt.Errorf("error decoding input file: %w", err)
	}

	st, err := statement.Parse(text)
	if err != nil {
		return fmt.Errorf("error parsing statement: %w", err)
	}

	internal, interbank, err := loadMappings(mappings)
	if err != nil {
		return err
	}

	rows, err := transformer.TransformWithOptions(st, importID, internal, interbank, opts)
	if err != nil {
		return fmt.Errorf("error transforming statement: %w", err)
	}

	if err := WriteOutputToCSV(rows, outputFile); err != nil {
		return fmt.Errorf("error writing output CSV: %w", err)
	}

	touchMatched(st, mappings, internal, interbank)

	log.WithFields(logrus.Fields{
		"input":  inputFile,
		"output": outputFile,
		"rows":   len(rows),
	}).Info("Successfully converted statement")
	return nil
}

func loadMappings(mappings *store.Store) (internal, interbank map[string]string, err error) {
	if mappings == nil {
		return map[string]string{}, map[string]string{}, nil
	}

	internal, err = mappings.Mappings(store.SchemeInternal)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading internal transfer mappings: %w", err)
	}
	interbank, err = mappings.Mappings(store.SchemeInterbank)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading interbank transfer mappings: %w", err)
	}
	return internal, interbank, nil
}

// touchMatched refreshes last_used for every mapping that matched a reference
// in this statement. Failures here never fail the conversion.
func touchMatched(st *models.Statement, mappings *store.Store, internal, interbank map[string]string) {
	if mappings == nil {
		return
	}

	if matched := intersect(transfers.DetectInternal(st), internal); len(matched) > 0 {
		if err := mappings.Touch(store.SchemeInternal, matched...); err != nil {
			log.WithError(err).Warn("Failed to update last_used for internal mappings")
		}
	}
	if matched := intersect(transfers.DetectInterbank(st), interbank); len(matched) > 0 {
		if err := mappings.Touch(store.SchemeInterbank, matched...); err != nil {
			log.WithError(err).Warn("Failed to update last_used for interbank mappings")
		}
	}
}

func intersect(refs []string, mappings map[string]string) []string {
	var matched []string
	for _, ref := range refs {
		if _, ok := mappings[ref]; ok {
			matched = append(matched, ref)
		}
	}
	return matched
}
