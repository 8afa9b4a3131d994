// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package logging

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

const (
	maxErrorLen = 200
	maxParamLen = 64
)

// SanitizeError prepares an error message for logs and API responses.
// Credentials embedded in URLs are redacted and long messages are
// truncated.
func SanitizeError(err string) string {
	if err == "" {
		return ""
	}
	fields := strings.Fields(err)
	changed := false
	for i, f := range fields {
		if !strings.Contains(f, "://") {
			continue
		}
		trimmed := strings.Trim(f, `"'(),;`)
		u, parseErr := url.Parse(trimmed)
		if parseErr != nil || u.User == nil {
			continue
		}
		u.User = url.User("redacted")
		fields[i] = strings.Replace(f, trimmed, u.String(), 1)
		changed = true
	}
	if changed {
		err = strings.Join(fields, " ")
	}
	return truncateString(err, maxErrorLen)
}

// SanitizeParam makes a client-supplied value safe to log: control
// characters are dropped so a value cannot forge log lines, and the
// result is truncated.
func SanitizeParam(value string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
	return truncateString(clean, maxParamLen)
}

// addFieldPairs adds key-value pairs to a zerolog event.
func addFieldPairs(e *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			key, ok := fields[i].(string)
			if !ok {
				continue
			}
			e = e.Interface(key, fields[i+1])
		}
	}
	return e
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
