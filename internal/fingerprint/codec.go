// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package fingerprint

import (
	"encoding/binary"
	"math"
)

const (
	headerSize  = 4
	elementSize = 8

	// MaxVectorLen bounds the declared length accepted by DecodeVector.
	MaxVectorLen = 1 << 20
)

// EncodeVector serializes v as a uint32 little-endian length followed by the
// little-endian float64 elements.
func EncodeVector(v []float64) []byte {
	buf := make([]byte, headerSize+elementSize*len(v))
	binary.LittleEndian.PutUint32(buf, uint32(len(v)))
	for i, x := range v {
		binary.LittleEndian.PutUint64(buf[headerSize+elementSize*i:], math.Float64bits(x))
	}
	return buf
}

// DecodeVector parses a buffer written by EncodeVector. Truncated buffers,
// trailing bytes, oversized length prefixes and non-finite elements return
// *DeserializationError.
func DecodeVector(b []byte) ([]float64, error) {
	if len(b) < headerSize {
		return nil, &DeserializationError{Reason: "missing length prefix", Size: len(b)}
	}

	n := binary.LittleEndian.Uint32(b)
	if n > MaxVectorLen {
		return nil, &DeserializationError{Reason: "length prefix too large", Size: len(b)}
	}

	want := headerSize + elementSize*int(n)
	switch {
	case len(b) < want:
		return nil, &DeserializationError{Reason: "truncated body", Size: len(b)}
	case len(b) > want:
		return nil, &DeserializationError{Reason: "trailing bytes", Size: len(b)}
	}

	v := make([]float64, n)
	for i := range v {
		x := math.Float64frombits(binary.LittleEndian.Uint64(b[headerSize+elementSize*i:]))
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &DeserializationError{Reason: "non-finite element", Size: len(b)}
		}
		v[i] = x
	}
	return v, nil
}
