// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants for the layouts this bank emits
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutBAC      = "02/01/2006"
	DateLayoutBACShort = "2/1/2006"
)

// StatementFormats is the list of layouts tried when parsing a statement date
var StatementFormats = []string{
	DateLayoutBAC,
	DateLayoutBACShort,
	"02/01/06",
}

// ParseStatementDate parses a day/month/year statement date string
func ParseStatementDate(dateStr string) (time.Time, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range StatementFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	// Replace multiple spaces with a single space
	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}
