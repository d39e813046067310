// Package statement provides functionality to parse BAC statement exports.
// The export is not a clean rectangular CSV: a variable number of preamble
// lines precede an inline transaction header, the transaction block has
// unknown length, and a trailing summary block follows it. The transaction
// section is located by content, never by fixed offsets.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"dmadriz/bac-csv/internal/models"
	"dmadriz/bac-csv/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// headerMarker identifies the transaction header line. It is a prefix of the
// date column in every observed spelling (accented, mojibake and plain), so a
// single containment check accepts them all.
const headerMarker = "Fecha de Transacci"

// summaryMarkers identify the start of the trailing summary block.
var summaryMarkers = []string{
	"Resumen de Estado",
	"Detalle de Comisiones",
}

// minDataLinesBeforeBlank guards against truncating the block on an
// incidental blank line near the top of the transaction section.
const minDataLinesBeforeBlank = 10

// Parse extracts the transaction table from decoded BAC statement text.
// It returns the parsed rows together with the number of data lines observed
// inside the transaction block, or *parsererror.FormatError when no
// transaction header can be located.
//
// The first line containing the header marker wins. A description that
// happens to contain the marker text could in principle shadow the real
// header; the header candidate is at least required to split into multiple
// comma-separated fields so a bare marker inside prose is not accepted.
func Parse(rawText string) (*models.Statement, error) {
	lines := splitLines(rawText)

	headerIdx := findHeader(lines)
	if headerIdx < 0 {
		log.Warn("No transaction header located in statement text")
		return nil, &parsererror.FormatError{Msg: "no transaction header located"}
	}

	columns := splitHeader(lines[headerIdx])
	log.WithFields(logrus.Fields{
		"headerLine": headerIdx,
		"columns":    len(columns),
	}).Debug("Located transaction header")

	end := findBlockEnd(lines, headerIdx)
	dataLines := filterDataLines(lines[headerIdx+1 : end])

	rows, err := parseBlock(lines[headerIdx], dataLines, columns)
	if err != nil {
		return nil, fmt.Errorf("error parsing transaction block: %w", err)
	}

	log.WithField("count", len(dataLines)).Info("Parsed statement transaction block")
	return &models.Statement{
		Columns: columns,
		Rows:    rows,
		Count:   len(dataLines),
	}, nil
}

func splitLines(rawText string) []string {
	normalized := strings.ReplaceAll(rawText, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

// findHeader scans from the top for the first line containing the transaction
// header marker and returns its index, or -1 if none is found.
func findHeader(lines []string) int {
	for i, line := range lines {
		if !strings.Contains(line, headerMarker) {
			continue
		}
		if len(strings.Split(line, ",")) < 2 {
			continue
		}
		return i
	}
	return -1
}

func splitHeader(headerLine string) []string {
	fields := strings.Split(headerLine, ",")
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = strings.TrimSpace(field)
	}
	return columns
}

// findBlockEnd scans forward from the line after the header and returns the
// exclusive end index of the transaction block. The block ends at the first
// summary marker, or at the first blank line once enough data lines have been
// seen. If neither terminator is found the block extends to end of input.
func findBlockEnd(lines []string, headerIdx int) int {
	dataSeen := 0
	for i := headerIdx + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if containsSummaryMarker(lines[i]) {
			return i
		}
		if trimmed == "" {
			if dataSeen >= minDataLinesBeforeBlank {
				return i
			}
			continue
		}
		dataSeen++
	}
	return len(lines)
}

// filterDataLines keeps non-blank lines that do not begin with a summary
// marker. Summary lines that slip past the boundary scan are dropped here.
func filterDataLines(lines []string) []string {
	var kept []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if hasSummaryPrefix(trimmed) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

func containsSummaryMarker(line string) bool {
	for _, marker := range summaryMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func hasSummaryPrefix(line string) bool {
	for _, marker := range summaryMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// parseBlock reassembles the header and data lines into a comma-separated
// blob and parses it as standard CSV. Whitespace after delimiters is trimmed;
// cell values otherwise keep standard CSV semantics.
func parseBlock(headerLine string, dataLines []string, columns []string) ([]models.Row, error) {
	blob := headerLine
	if len(dataLines) > 0 {
		blob += "\n" + strings.Join(dataLines, "\n")
	}

	reader := csv.NewReader(strings.NewReader(blob))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Skip the header record; columns were already split and trimmed.
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header record: %w", err)
	}

	var rows []models.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		row := make(models.Row, len(columns))
		for i, value := range record {
			if i < len(columns) {
				row[columns[i]] = value
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
