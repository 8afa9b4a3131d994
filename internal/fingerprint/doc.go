// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

// Package fingerprint builds TF-IDF fingerprints over route identifiers.
//
// # Analyzer
//
// Route identifiers ("JFK-LAX") are split on whitespace into words. Each word
// is lowercased and padded with a single space on both sides, then every
// character n-gram of length 2 through 5 is extracted from the padded word.
// Padding lets n-grams at the edges of a word (" jf", "ax ") be told apart
// from interior ones. The '-' separator is not whitespace, so grams spanning
// it ("k-l") are kept.
//
// # Space
//
// Fit selects at most 128 features with the highest corpus-wide count (ties
// go to the feature seen first), weights them with smooth IDF and returns a
// reusable Space plus one L2-normalized row per corpus entry:
//
//	space, matrix, err := fingerprint.Fit([]string{"JFK-LAX", "LAX-JFK"})
//	if err != nil {
//	    return err
//	}
//	query := space.Encode("JFK-SFO")
//
// Columns are ordered lexically by feature. Fitting the same corpus twice
// yields an identical space.
//
// # Wire Format
//
// EncodeVector and DecodeVector store vectors as a uint32 little-endian
// element count followed by that many little-endian IEEE-754 float64 values.
package fingerprint
