// Package i18n resolves user-facing message keys against a small CSV
// catalog (Key,English,German). Lookup falls back from the selected
// language to English and finally to the key itself, so a missing
// translation is obvious but never fatal.
package i18n

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed locales.csv
var defaultCatalog []byte

// Translator looks up localized message texts
type Translator struct {
	language     string
	translations map[string]map[string]string
}

// New creates a translator for the given language ("en" or "de")
func New(language string, translations map[string]map[string]string) *Translator {
	return &Translator{language: language, translations: translations}
}

// T resolves a message key and substitutes {name} placeholders. Args are
// alternating name/value pairs, e.g. T("STREAK", "s", "3", "m", "5").
func (t *Translator) T(key string, args ...string) string {
	text := key
	if entry, ok := t.translations[key]; ok {
		if localized := entry[t.language]; localized != "" {
			text = localized
		} else if english := entry["en"]; english != "" {
			text = english
		}
	}

	if len(args) == 0 {
		return text
	}

	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Language returns the translator's language code
func (t *Translator) Language() string {
	return t.language
}

// LoadCatalog reads a translation catalog. An empty path loads the catalog
// embedded in the binary; a missing override file is an error.
func LoadCatalog(path string) (map[string]map[string]string, error) {
	if path == "" {
		return parseCatalog(bytes.NewReader(defaultCatalog))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation file: %w", err)
	}
	defer f.Close()

	return parseCatalog(f)
}

// parseCatalog reads rows of Key,English,German. Rows without a key are
// skipped. The first row is the header.
func parseCatalog(r io.Reader) (map[string]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse translation catalog: %w", err)
	}

	out := make(map[string]map[string]string)
	for i, record := range records {
		if i == 0 {
			continue
		}
		if len(record) == 0 {
			continue
		}
		key := strings.TrimSpace(record[0])
		if key == "" {
			continue
		}

		entry := map[string]string{}
		if len(record) > 1 {
			entry["en"] = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			entry["de"] = strings.TrimSpace(record[2])
		}
		out[key] = entry
	}

	return out, nil
}
