// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package fingerprint

import (
	"errors"
	"fmt"
)

// ErrEmptyCorpus is matched by EmptyCorpusError.
var ErrEmptyCorpus = errors.New("fingerprint: empty corpus")

// ErrDeserialization is matched by DeserializationError.
var ErrDeserialization = errors.New("fingerprint: malformed vector")

// EmptyCorpusError is returned when a space is fit over zero documents.
type EmptyCorpusError struct{}

func (e *EmptyCorpusError) Error() string {
	return ErrEmptyCorpus.Error()
}

// Is reports whether target is ErrEmptyCorpus.
func (e *EmptyCorpusError) Is(target error) bool {
	return target == ErrEmptyCorpus
}

// DeserializationError describes a stored vector that could not be decoded.
type DeserializationError struct {
	Reason string
	Size   int
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("%s: %s (%d bytes)", ErrDeserialization.Error(), e.Reason, e.Size)
}

// Is reports whether target is ErrDeserialization.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}
