// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package fingerprint

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVector_Layout(t *testing.T) {
	t.Parallel()

	got := EncodeVector([]float64{1})
	want := []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xF0, 0x3F}
	assert.Equal(t, want, got)

	assert.Equal(t, []byte{0, 0, 0, 0}, EncodeVector(nil))
}

func TestDecodeVector_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []float64{0, 0.25, 1e-300, 0.5773502691896258}
	out, err := DecodeVector(EncodeVector(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeVector_Malformed(t *testing.T) {
	t.Parallel()

	valid := EncodeVector([]float64{0.1, 0.2})

	huge := make([]byte, 4)
	binary.LittleEndian.PutUint32(huge, MaxVectorLen+1)

	nan := EncodeVector([]float64{0.1})
	binary.LittleEndian.PutUint64(nan[4:], math.Float64bits(math.NaN()))

	tests := []struct {
		name string
		in   []byte
	}{
		{"nil", nil},
		{"short prefix", []byte{1, 0}},
		{"truncated", valid[:len(valid)-1]},
		{"trailing", append(append([]byte{}, valid...), 0)},
		{"oversized prefix", huge},
		{"non-finite", nan},
		{"pickle bytes", []byte("\x80\x04\x95\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := DecodeVector(tt.in)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, errors.Is(err, ErrDeserialization))

			var de *DeserializationError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, len(tt.in), de.Size)
		})
	}
}
