package dataset

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(buf *bytes.Buffer) *Loader {
	return NewLoader(slog.New(slog.NewTextHandler(buf, nil)))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNormalizesKeys(t *testing.T) {
	path := writeFile(t, "co2.csv", "isoA3,value,year\n usa ,15.2,2020\nbra,2.1,2020\n,9,2020\n")

	got := NewLoader(nil).Load(path, KeyColumn, ValueColumn)
	assert.Equal(t, Table{"USA": "15.2", "BRA": "2.1"}, got)
}

func TestLoadStripsByteOrderMark(t *testing.T) {
	path := writeFile(t, "hdi.csv", "\ufeffisoA3,value\nNOR,0.966\n")

	got := NewLoader(nil).Load(path, KeyColumn, ValueColumn)
	assert.Equal(t, Table{"NOR": "0.966"}, got)
}

func TestLoadLastRowWins(t *testing.T) {
	path := writeFile(t, "gdp.csv", "isoA3,value\nFRA,1\nfra,2\n")

	got := NewLoader(nil).Load(path, KeyColumn, ValueColumn)
	assert.Equal(t, Table{"FRA": "2"}, got)
}

func TestLoadMissingValueColumn(t *testing.T) {
	path := writeFile(t, "gini.csv", "isoA3,other\nCHL,44.9\n")

	got := NewLoader(nil).Load(path, KeyColumn, ValueColumn)
	assert.Equal(t, Table{"CHL": "0"}, got)
}

func TestLoadShortRow(t *testing.T) {
	path := writeFile(t, "gini.csv", "isoA3,year,value\nCHL,2020\nURY,2020,40.2\n")

	got := NewLoader(nil).Load(path, KeyColumn, ValueColumn)
	assert.Equal(t, Table{"CHL": "0", "URY": "40.2"}, got)
}

func TestLoadMissingKeyColumn(t *testing.T) {
	path := writeFile(t, "epi.csv", "country,value\nUSA,51.1\n")

	got := NewLoader(nil).Load(path, KeyColumn, ValueColumn)
	assert.Empty(t, got)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	got := NewLoader(nil).Load(path, KeyColumn, ValueColumn)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadNonexistentFile(t *testing.T) {
	var logs bytes.Buffer
	l := newTestLoader(&logs)

	got := l.Load(filepath.Join(t.TempDir(), "nope.csv"), KeyColumn, ValueColumn)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "nope.csv")
}

func TestLoadIsIdempotent(t *testing.T) {
	path := writeFile(t, "forest_area.csv", "isoA3,value\nBRA,59.4\nCAN,38.7\nJPN,68.4\n")
	l := NewLoader(nil)

	first := l.Load(path, KeyColumn, ValueColumn)
	second := l.Load(path, KeyColumn, ValueColumn)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestReadIntoKeepsRowsBeforeError(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("isoA3,value\nUSA,1\n"),
		iotest.ErrReader(errors.New("disk gone")),
	)
	data := Table{}

	err := readInto(data, r, KeyColumn, ValueColumn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Equal(t, Table{"USA": "1"}, data)
}

func TestLoadDirectoryLogsError(t *testing.T) {
	var logs bytes.Buffer
	l := newTestLoader(&logs)

	got := l.Load(t.TempDir(), KeyColumn, ValueColumn)
	assert.Empty(t, got)
	assert.Contains(t, logs.String(), "level=ERROR")
}

func TestExists(t *testing.T) {
	l := NewLoader(nil)
	path := writeFile(t, "co2.csv", "isoA3,value\n")

	assert.True(t, l.Exists(path))
	assert.False(t, l.Exists(path+".missing"))
}

func TestTableFloat(t *testing.T) {
	tbl := Table{"A": " 1.5 ", "B": "n/a", "C": "NaN", "D": "Inf", "E": "-2e1"}

	v, ok := tbl.Float("A")
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	_, ok = tbl.Float("B")
	assert.False(t, ok)
	_, ok = tbl.Float("C")
	assert.False(t, ok)
	_, ok = tbl.Float("D")
	assert.False(t, ok)
	_, ok = tbl.Float("Z")
	assert.False(t, ok)

	v, ok = tbl.Float("E")
	assert.True(t, ok)
	assert.Equal(t, -20.0, v)
}

func TestTableGetOr(t *testing.T) {
	tbl := Table{"ISL": "80"}
	assert.Equal(t, "80", tbl.GetOr("ISL", "N/A"))
	assert.Equal(t, "N/A", tbl.GetOr("PER", "N/A"))
}
