// Package transfers recognizes the two free-text transfer notations BAC
// embeds in transaction descriptions and rewrites them using persisted
// friendly-name mappings. Internal (BAC-to-BAC) transfers are written as
// "TEF A: <number>"; interbank transfers go through SINPE and are written as
// "CD SINPE A <number>" or "PIN-SINPE A:<number>".
package transfers

import (
	"regexp"
	"sort"
	"strings"

	"dmadriz/bac-csv/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// internalRefPattern matches an internal transfer reference anywhere in a
// description. Case-sensitive; the digit run is the account number.
var internalRefPattern = regexp.MustCompile(`TEF\s+A\s*:\s*(\d+)`)

// interbankPrefixes are the literal prefixes an interbank description starts
// with. The reference is the token immediately following the prefix,
// delimited by the next space or end of string.
var interbankPrefixes = []string{"CD SINPE A ", "PIN-SINPE A:"}

// Rewrite patterns require a space or end-of-string after the account number
// so that one account number being a prefix of another cannot corrupt the
// longer one.
var (
	cdSinpePattern  = regexp.MustCompile(`CD SINPE A (\d+)(\s|$)`)
	pinSinpePattern = regexp.MustCompile(`PIN-SINPE A:(\d+)(\s|$)`)
)

// DetectInternal returns the set of internal transfer account numbers found
// in the statement's descriptions. Multiple references per description are
// all collected. Returns an empty set when no description column exists.
func DetectInternal(st *models.Statement) []string {
	descCol := st.Column(models.DescriptionColumns)
	if descCol == "" {
		log.Debug("No description column found, skipping internal transfer detection")
		return nil
	}

	seen := make(map[string]bool)
	for _, row := range st.Rows {
		for _, match := range internalRefPattern.FindAllStringSubmatch(row[descCol], -1) {
			seen[match[1]] = true
		}
	}
	return sortedKeys(seen)
}

// DetectInterbank returns the set of interbank (SINPE) account references
// found in the statement's descriptions. Only descriptions starting with one
// of the known prefixes are considered. Returns an empty set when no
// description column exists.
func DetectInterbank(st *models.Statement) []string {
	descCol := st.Column(models.DescriptionColumns)
	if descCol == "" {
		log.Debug("No description column found, skipping interbank transfer detection")
		return nil
	}

	seen := make(map[string]bool)
	for _, row := range st.Rows {
		desc := row[descCol]
		for _, prefix := range interbankPrefixes {
			if !strings.HasPrefix(desc, prefix) {
				continue
			}
			ref := desc[len(prefix):]
			if i := strings.IndexByte(ref, ' '); i >= 0 {
				ref = ref[:i]
			}
			if ref != "" {
				seen[ref] = true
			}
		}
	}
	return sortedKeys(seen)
}

// ApplyMappings returns a copy of the statement with transfer references in
// the description column rewritten to friendly names. The input statement is
// not mutated. Internal references are rewritten first, then interbank
// references, independently per row. Unmapped references are left untouched.
func ApplyMappings(st *models.Statement, internal, interbank map[string]string) *models.Statement {
	out := st.Clone()

	descCol := out.Column(models.DescriptionColumns)
	if descCol == "" {
		return out
	}
	if len(internal) == 0 && len(interbank) == 0 {
		return out
	}

	rewritten := 0
	for _, row := range out.Rows {
		desc := row[descCol]
		updated := rewriteInternal(desc, internal)
		updated = rewritePattern(updated, cdSinpePattern, interbank)
		updated = rewritePattern(updated, pinSinpePattern, interbank)
		if updated != desc {
			row[descCol] = updated
			rewritten++
		}
	}

	if rewritten > 0 {
		log.WithField("count", rewritten).Debug("Rewrote transfer references")
	}
	return out
}

func rewriteInternal(desc string, mappings map[string]string) string {
	return internalRefPattern.ReplaceAllStringFunc(desc, func(match string) string {
		account := internalRefPattern.FindStringSubmatch(match)[1]
		name, ok := mappings[account]
		if !ok {
			return match
		}
		return name + " - BAC:" + account
	})
}

func rewritePattern(desc string, pattern *regexp.Regexp, mappings map[string]string) string {
	return pattern.ReplaceAllStringFunc(desc, func(match string) string {
		sub := pattern.FindStringSubmatch(match)
		account := sub[1]
		name, ok := mappings[account]
		if !ok {
			return match
		}
		return name + " - SINPE:" + account + sub[2]
	})
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
