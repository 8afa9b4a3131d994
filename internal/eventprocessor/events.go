// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package eventprocessor

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Topics published by the importer.
const (
	TopicDatasetCleared  = "dataset.cleared"
	TopicDatasetIngested = "dataset.ingested"
)

// EventSchemaVersion is bumped when DatasetEvent changes incompatibly.
const EventSchemaVersion = 1

// Validation errors for DatasetEvent.
var (
	ErrMissingEventID   = errors.New("event_id is required")
	ErrMissingEventType = errors.New("event type is required")
	ErrMissingJobID     = errors.New("job_id is required")
)

// DatasetEvent describes a change to the stored OpenFlights dataset.
// Counts are zero on dataset.cleared.
type DatasetEvent struct {
	SchemaVersion  int       `json:"schema_version"`
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	JobID          string    `json:"job_id"`
	Airports       int       `json:"airports"`
	Airlines       int       `json:"airlines"`
	Routes         int       `json:"routes"`
	VocabularySize int       `json:"vocabulary_size,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NewDatasetEvent returns an event of the given topic with a fresh ID.
func NewDatasetEvent(topic, jobID string) *DatasetEvent {
	return &DatasetEvent{
		SchemaVersion: EventSchemaVersion,
		EventID:       uuid.New().String(),
		Type:          topic,
		JobID:         jobID,
		OccurredAt:    time.Now().UTC(),
	}
}

// Validate checks required fields.
func (e *DatasetEvent) Validate() error {
	switch {
	case e.EventID == "":
		return ErrMissingEventID
	case e.Type == "":
		return ErrMissingEventType
	case e.JobID == "":
		return ErrMissingJobID
	}
	return nil
}

// MarshalEvent validates and encodes an event to JSON.
func MarshalEvent(event *DatasetEvent) ([]byte, error) {
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// UnmarshalEvent decodes a JSON payload into an event.
func UnmarshalEvent(data []byte) (*DatasetEvent, error) {
	var event DatasetEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	return &event, nil
}
