// Package encoding decodes raw BAC export bytes into text. The bank's export
// encoding is inconsistent across files, so a fixed priority list of encodings
// is attempted and the first clean decode wins.
package encoding

import (
	"unicode/utf8"

	"dmadriz/bac-csv/internal/parsererror"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// attempt is one entry in the decode priority list.
type attempt struct {
	name    string
	charmap *charmap.Charmap // nil means plain UTF-8 validation
}

// Priority order follows the encodings BAC has been observed to emit.
// cp1252 is a superset of latin-1 on the printable range, so it is tried
// first; UTF-8 is the last resort.
var attempts = []attempt{
	{name: "windows-1252", charmap: charmap.Windows1252},
	{name: "iso-8859-1", charmap: charmap.ISO8859_1},
	{name: "utf-8"},
}

// Decode converts raw statement bytes to text using the encoding priority
// list. A charmap decode that produces a replacement character is treated as
// a failed attempt and the next encoding is tried. Returns *DecodeError when
// every attempt fails.
func Decode(raw []byte) (string, error) {
	var attempted []string
	for _, a := range attempts {
		attempted = append(attempted, a.name)

		if a.charmap == nil {
			if utf8.Valid(raw) {
				log.WithField("encoding", a.name).Debug("Decoded statement text")
				return string(raw), nil
			}
			continue
		}

		decoded, err := a.charmap.NewDecoder().Bytes(raw)
		if err != nil {
			log.WithError(err).WithField("encoding", a.name).Debug("Decode attempt failed")
			continue
		}
		text := string(decoded)
		if containsReplacement(text) {
			log.WithField("encoding", a.name).Debug("Decode produced replacement characters, trying next encoding")
			continue
		}
		log.WithField("encoding", a.name).Debug("Decoded statement text")
		return text, nil
	}

	return "", &parsererror.DecodeError{Attempted: attempted}
}

func containsReplacement(text string) bool {
	for _, r := range text {
		if r == utf8.RuneError {
			return true
		}
	}
	return false
}
