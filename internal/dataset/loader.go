// Package dataset reads the country indicator CSV files into lookup tables
// keyed by ISO-3 code.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column names shared by every indicator file.
const (
	KeyColumn   = "isoA3"
	ValueColumn = "value"
)

// missingValue is stored when a row has a key but no value column.
const missingValue = "0"

// Table maps an upper-cased ISO-3 code to the raw cell value.  A country
// without a row has no key.
type Table map[string]string

// Get returns the raw value for iso.
func (t Table) Get(iso string) (string, bool) {
	v, ok := t[iso]
	return v, ok
}

// GetOr returns the raw value for iso, or def when absent.
func (t Table) GetOr(iso, def string) string {
	if v, ok := t[iso]; ok {
		return v
	}
	return def
}

// Float returns the value for iso parsed as a finite number.  ok is false
// when the key is absent or the cell is not a finite number.
func (t Table) Float(iso string) (float64, bool) {
	v, ok := t[iso]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Loader reads indicator files.  It never fails: problems are logged and
// whatever could be read is returned.
type Loader struct {
	logger *slog.Logger
}

// NewLoader returns a Loader logging to logger, or to slog.Default when nil.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load parses the file at path and maps the trimmed, upper-cased keyColumn
// of every row to its raw valueColumn.  Rows with an empty key are skipped
// and later rows overwrite earlier ones.  A missing file yields an empty
// table.
func (l *Loader) Load(path, keyColumn, valueColumn string) Table {
	data := Table{}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("indicator file not found", "path", path)
		} else {
			l.logger.Error("failed to open indicator file", "path", path, "error", err)
		}
		return data
	}
	defer f.Close()

	if err := readInto(data, f, keyColumn, valueColumn); err != nil {
		l.logger.Error("failed to load indicator file", "path", path, "rows", len(data), "error", err)
	}
	return data
}

// Exists reports whether path names an existing file or directory.
func (l *Loader) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readInto fills data from r.  On a parse error the rows read so far stay
// in data.
func readInto(data Table, r io.Reader, keyColumn, valueColumn string) error {
	// strip a leading UTF-8 byte-order mark, as written by spreadsheet exports
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	keyIdx, valIdx := -1, -1
	for i, name := range header {
		// last occurrence wins for duplicated header names
		if name == keyColumn {
			keyIdx = i
		}
		if name == valueColumn {
			valIdx = i
		}
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if keyIdx < 0 || keyIdx >= len(row) {
			continue
		}
		iso := strings.ToUpper(strings.TrimSpace(row[keyIdx]))
		if iso == "" {
			continue
		}
		val := missingValue
		if valIdx >= 0 && valIdx < len(row) {
			val = row[valIdx]
		}
		data[iso] = val
	}
}
