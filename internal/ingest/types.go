// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package ingest

import (
	"errors"
	"time"

	"github.com/tomtom215/skyroute/internal/models"
)

// OpenFlights data file names.
const (
	AirportsFile = "airports.dat"
	AirlinesFile = "airlines.dat"
	RoutesFile   = "routes.dat"
)

// DataFiles lists the files an ingest reads, in load order.
var DataFiles = []string{AirportsFile, AirlinesFile, RoutesFile}

// ErrAlreadyRunning is returned when an ingest is requested while another
// one is still in progress.
var ErrAlreadyRunning = errors.New("ingest already in progress")

// Dataset is a parsed OpenFlights snapshot ready to be stored.
type Dataset struct {
	Airports []models.Airport
	Airlines []models.Airline
	Routes   []models.Route
}

// ParseStats counts the rows read from one file.
type ParseStats struct {
	// Rows is the number of CSV records read.
	Rows int

	// Kept is the number of records that produced a row.
	Kept int

	// Dropped is the number of records rejected for missing or malformed
	// required columns.
	Dropped int
}

// Stats holds statistics about one ingest run.
type Stats struct {
	JobID string `json:"job_id"`

	Airports int `json:"airports"`
	Airlines int `json:"airlines"`
	Routes   int `json:"routes"`

	// Dropped is the number of source rows rejected across all files.
	Dropped int `json:"dropped"`

	// Downloaded lists files fetched because they were missing locally.
	Downloaded []string `json:"downloaded,omitempty"`

	// VocabularySize is the fitted fingerprint dimension.
	VocabularySize int `json:"vocabulary_size"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Error is the failure message of the run, if any.
	Error string `json:"error,omitempty"`
}

// Duration returns the duration of the ingest run.
func (s *Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Counts returns rows written per table, keyed the way metrics label them.
func (s *Stats) Counts() map[string]int {
	return map[string]int{
		"airports": s.Airports,
		"airlines": s.Airlines,
		"routes":   s.Routes,
	}
}

// Ingest run statuses.
const (
	StatusIdle      = "idle"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ProgressSummary is the externally visible state of the latest ingest.
type ProgressSummary struct {
	Status         string     `json:"status"`
	JobID          string     `json:"job_id,omitempty"`
	Airports       int        `json:"airports"`
	Airlines       int        `json:"airlines"`
	Routes         int        `json:"routes"`
	Dropped        int        `json:"dropped"`
	Downloaded     []string   `json:"downloaded,omitempty"`
	VocabularySize int        `json:"vocabulary_size"`
	ElapsedSeconds float64    `json:"elapsed_seconds"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Error          string     `json:"error,omitempty"`
}

// ToSummary converts Stats to a ProgressSummary with calculated fields.
// A nil receiver yields the idle summary.
func (s *Stats) ToSummary(running bool) *ProgressSummary {
	if s == nil {
		return &ProgressSummary{Status: StatusIdle}
	}

	start := s.StartTime
	summary := &ProgressSummary{
		JobID:          s.JobID,
		Airports:       s.Airports,
		Airlines:       s.Airlines,
		Routes:         s.Routes,
		Dropped:        s.Dropped,
		Downloaded:     s.Downloaded,
		VocabularySize: s.VocabularySize,
		ElapsedSeconds: s.Duration().Seconds(),
		StartTime:      &start,
		Error:          s.Error,
	}

	switch {
	case running:
		summary.Status = StatusRunning
	case s.Error != "":
		summary.Status = StatusFailed
	case s.EndTime.IsZero():
		// Persisted by a process that stopped mid-run
		summary.Status = StatusFailed
		summary.Error = "ingest did not finish"
	default:
		summary.Status = StatusCompleted
	}

	if !s.EndTime.IsZero() {
		end := s.EndTime
		summary.EndTime = &end
	}

	return summary
}
