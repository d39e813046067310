// Package transformer converts a parsed BAC statement table into Monarch
// Money import rows: canonical column names, ISO dates, a signed amount from
// the separate debit/credit fields, and transfer references rewritten to
// friendly names.
package transformer

import (
	"strconv"
	"strings"

	"dmadriz/bac-csv/internal/currencyutils"
	"dmadriz/bac-csv/internal/dateutils"
	"dmadriz/bac-csv/internal/models"
	"dmadriz/bac-csv/internal/parsererror"
	"dmadriz/bac-csv/internal/transfers"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Options adjusts non-core output fields.
type Options struct {
	// AccountLabel overrides the Account column value; empty means "BAC".
	AccountLabel string
	// EchoOriginal fills Original Statement with the untouched description.
	EchoOriginal bool
}

// Transform converts statement rows into output rows. importID is embedded
// verbatim into the Notes field as "id=<importID>". Transfer references in
// the description column are rewritten using the supplied mappings before the
// columns are normalized.
//
// Returns *parsererror.SchemaError when the date or description column cannot
// be located after alias resolution. Row-level issues never abort the run:
// unparseable debit/credit values default to zero and rows whose date fails
// to parse are dropped.
func Transform(st *models.Statement, importID int64, internal, interbank map[string]string) ([]models.OutputRow, error) {
	return TransformWithOptions(st, importID, internal, interbank, Options{})
}

// TransformWithOptions is Transform with explicit output options.
func TransformWithOptions(st *models.Statement, importID int64, internal, interbank map[string]string, opts Options) ([]models.OutputRow, error) {
	rewritten := transfers.ApplyMappings(st, internal, interbank)

	dateCol := rewritten.Column(models.DateColumns)
	descCol := rewritten.Column(models.DescriptionColumns)
	if dateCol == "" || descCol == "" {
		var missing []string
		if dateCol == "" {
			missing = append(missing, models.ColumnDate)
		}
		if descCol == "" {
			missing = append(missing, models.ColumnMerchant)
		}
		log.WithField("columns", rewritten.Columns).Warn("Statement columns do not match the expected schema")
		return nil, &parsererror.SchemaError{Missing: missing, Present: rewritten.Columns}
	}

	// Debit and credit columns are optional; a variant that lacks them
	// produces zero amounts rather than failing.
	debitCol := rewritten.Column(models.DebitColumns)
	creditCol := rewritten.Column(models.CreditColumns)

	account := opts.AccountLabel
	if account == "" {
		account = models.DefaultAccountLabel
	}
	notes := "id=" + strconv.FormatInt(importID, 10)

	var out []models.OutputRow
	dropped := 0
	for i, row := range rewritten.Rows {
		date, err := dateutils.ParseStatementDate(row[dateCol])
		if err != nil {
			log.WithError(err).WithField("row", i).Debug("Dropping row with unparseable date")
			dropped++
			continue
		}

		merchant := strings.TrimSpace(row[descCol])
		if merchant == "" {
			log.WithField("row", i).Debug("Dropping row with empty description")
			dropped++
			continue
		}

		debit := parseAmountOrZero(debitCol, row, i)
		credit := parseAmountOrZero(creditCol, row, i)
		amount := credit.Sub(debit).Round(2)

		outRow := models.OutputRow{
			Date:     dateutils.ToISODate(date),
			Merchant: merchant,
			Account:  account,
			Notes:    notes,
			Amount:   models.NewAmount(amount),
		}
		if opts.EchoOriginal {
			outRow.OriginalStatement = strings.TrimSpace(st.Rows[i][descCol])
		}
		out = append(out, outRow)
	}

	log.WithFields(logrus.Fields{
		"rows":    len(out),
		"dropped": dropped,
	}).Info("Transformed statement rows")
	return out, nil
}

func parseAmountOrZero(column string, row models.Row, rowIdx int) decimal.Decimal {
	if column == "" {
		return decimal.Zero
	}
	amount, err := currencyutils.ParseAmount(row[column])
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"row":    rowIdx,
			"column": column,
		}).Debug("Unparseable amount, defaulting to zero")
		return decimal.Zero
	}
	return amount
}
