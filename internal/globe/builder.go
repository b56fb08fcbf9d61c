// Package globe joins the indicator tables into scored country records for
// the globe front-end.
package globe

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"earthly-globe/internal/dataset"
)

// Indicator file names inside the data directory.
const (
	FileAirPollution   = "air_pollution.csv"
	FileCO2            = "co2.csv"
	FileRenewables     = "wdi_renewables.csv"
	FileEPI            = "epi.csv"
	FileHDI            = "hdi.csv"
	FileForest         = "forest_area.csv"
	FileNames          = "iso_names.csv"
	FileLifeExpectancy = "life_expectancy.csv"
	FileSafeWater      = "safe_water.csv"
	FileGDP            = "gdp.csv"
	FileGini           = "gini.csv"
	FileGovernance     = "governance.csv"
)

// ExpectedFiles is every file the data directory is supposed to hold,
// including those not used for scoring.
var ExpectedFiles = []string{
	"air_pollution.csv", "co2.csv", "energy.csv", "epi.csv",
	"forest_area.csv", "gdp.csv", "gini.csv", "governance.csv",
	"hdi.csv", "iso_names.csv", "life_expectancy.csv", "safe_water.csv",
	"wdi_protected_marine.csv", "wdi_protected_terrestrial.csv",
	"wdi_protected.csv", "wdi_rail.csv", "wdi_renewables.csv",
}

// Loader is the subset of dataset.Loader the builder needs.
type Loader interface {
	Load(path, keyColumn, valueColumn string) dataset.Table
	Exists(path string) bool
}

// Builder produces the globe records from the files in a data directory.
// It keeps no state between calls; every Build re-reads the files.
type Builder struct {
	dataDir string
	loader  Loader
}

// NewBuilder returns a Builder reading from dataDir.
func NewBuilder(dataDir string, loader Loader) *Builder {
	if loader == nil {
		panic("nil loader passed to NewBuilder")
	}
	return &Builder{dataDir: dataDir, loader: loader}
}

// tables holds one load of every indicator file.
type tables struct {
	pollution, co2, renewables, epi, hdi, forest dataset.Table
	names, life, water, gdp, gini, governance    dataset.Table
}

func (b *Builder) load(name string) dataset.Table {
	return b.loader.Load(filepath.Join(b.dataDir, name), dataset.KeyColumn, dataset.ValueColumn)
}

func (b *Builder) loadAll() tables {
	return tables{
		pollution:  b.load(FileAirPollution),
		co2:        b.load(FileCO2),
		renewables: b.load(FileRenewables),
		epi:        b.load(FileEPI),
		hdi:        b.load(FileHDI),
		forest:     b.load(FileForest),
		names:      b.load(FileNames),
		life:       b.load(FileLifeExpectancy),
		water:      b.load(FileSafeWater),
		gdp:        b.load(FileGDP),
		gini:       b.load(FileGini),
		governance: b.load(FileGovernance),
	}
}

// Build loads every indicator file and returns one record per country in
// coordinate table order.  Missing files only blank out their fields.
func (b *Builder) Build() []CountryRecord {
	t := b.loadAll()

	out := make([]CountryRecord, 0, len(coordinates))
	for _, c := range coordinates {
		out = append(out, t.record(len(out), c))
	}
	return out
}

func (t tables) record(id int, c Coordinate) CountryRecord {
	iso := c.ISO

	name := t.names.GetOr(iso, iso)

	score, clamped := scoreOf(Inputs{
		Renewables: optional(t.renewables, iso),
		HDI:        optional(t.hdi, iso),
		EPI:        optional(t.epi, iso),
		CO2:        optional(t.co2, iso),
	})
	life := t.life.GetOr(iso, NotAvailable)

	return CountryRecord{
		ID:         id,
		ISO:        iso,
		Name:       name,
		Lat:        c.Lat,
		Lon:        c.Lon,
		Score:      score,
		CO2:        t.co2.GetOr(iso, NotAvailable),
		Renewables: percent(t.renewables, iso),
		HDI:        t.hdi.GetOr(iso, NotAvailable),
		EPI:        t.epi.GetOr(iso, NotAvailable),
		Pollution:  t.pollution.GetOr(iso, NotAvailable),
		Forest:     t.forest.GetOr(iso, NotAvailable),
		Life:       life,
		Water:      t.water.GetOr(iso, NotAvailable),
		GDP:        t.gdp.GetOr(iso, NotAvailable),
		Gini:       t.gini.GetOr(iso, NotAvailable),
		Governance: t.governance.GetOr(iso, NotAvailable),
		Trivia:     trivia(FormatScore(score, clamped), life),
		Color:      TierColor(score),
	}
}

func optional(t dataset.Table, iso string) *float64 {
	v, ok := t.Float(iso)
	if !ok {
		return nil
	}
	return &v
}

// percent renders a 0-1 fraction as "12.3%".
func percent(t dataset.Table, iso string) string {
	v, ok := t.Float(iso)
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}

func trivia(score, life string) string {
	return fmt.Sprintf("Este país presenta un índice de sostenibilidad del %s%% y una esperanza de vida de %s años.", score, life)
}

// File status labels reported by Diagnose.
const (
	FileFound   = "Encontrado"
	FileMissing = "¡FALTA!"
)

// Diagnostic reports which expected files are present.
type Diagnostic struct {
	WorkingDirectory string            `json:"working_directory"`
	Files            map[string]string `json:"files_diagnostic"`
	TotalExpected    int               `json:"total_files_expected"`
}

// Missing returns the names of the expected files that were not found, in
// ExpectedFiles order.
func (d Diagnostic) Missing() []string {
	var out []string
	for _, f := range ExpectedFiles {
		if d.Files[f] != FileFound {
			out = append(out, f)
		}
	}
	return out
}

// Diagnose checks every expected file in the data directory.
func (b *Builder) Diagnose() Diagnostic {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	files := make(map[string]string, len(ExpectedFiles))
	for _, f := range ExpectedFiles {
		status := FileMissing
		if b.loader.Exists(filepath.Join(b.dataDir, f)) {
			status = FileFound
		}
		files[f] = status
	}
	return Diagnostic{
		WorkingDirectory: wd,
		Files:            files,
		TotalExpected:    len(ExpectedFiles),
	}
}
