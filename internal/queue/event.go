// Package queue defines message payloads exchanged over the message broker
// and the publisher that sends them.
package queue

import (
	"time"

	"earthly-globe/internal/globe"
)

// DatasetBuiltEvent is published after /api/data assembled the globe
// records.  Downstream consumers can track data coverage without reading
// the CSV files themselves.
type DatasetBuiltEvent struct {
	Countries    int      `json:"countries"`
	Red          int      `json:"red"`
	Amber        int      `json:"amber"`
	Green        int      `json:"green"`
	AverageScore float64  `json:"average_score"`
	MissingFiles []string `json:"missing_files"`
	BuiltAt      string   `json:"built_at"`
}

// NewDatasetBuiltEvent stamps a build summary with its build time in UTC.
func NewDatasetBuiltEvent(s globe.Summary, at time.Time) DatasetBuiltEvent {
	return DatasetBuiltEvent{
		Countries:    s.Countries,
		Red:          s.Red,
		Amber:        s.Amber,
		Green:        s.Green,
		AverageScore: s.AverageScore,
		MissingFiles: s.MissingFiles,
		BuiltAt:      at.UTC().Format(time.RFC3339),
	}
}
