// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package database

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

// mockCloser implements io.Closer for testing
type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}

func TestCloseWithLog(t *testing.T) {
	t.Run("nil closer does not panic", func(t *testing.T) {
		closeWithLog(nil, "test")
	})

	t.Run("error during close still closes", func(t *testing.T) {
		closer := &mockCloser{err: errors.New("close failed")}
		closeWithLog(closer, "test resource")
		if !closer.closed {
			t.Error("Expected closer to be closed")
		}
	})
}

func TestCloseQuietly(t *testing.T) {
	t.Run("nil closer does not panic", func(t *testing.T) {
		closeQuietly(nil)
	})

	t.Run("error during close is ignored", func(t *testing.T) {
		closer := &mockCloser{err: errors.New("close failed")}
		closeQuietly(closer)
		if !closer.closed {
			t.Error("Expected closer to be closed even with error")
		}
	})

	t.Run("works with various io.Closer implementations", func(t *testing.T) {
		closeQuietly(io.NopCloser(strings.NewReader("test data")))
	})
}

func TestWrapQueryError(t *testing.T) {
	if wrapQueryError("op", nil) != nil {
		t.Error("wrapQueryError(nil) should be nil")
	}

	plain := wrapQueryError("query routes", errors.New("syntax error"))
	if errors.Is(plain, ErrUnavailable) {
		t.Error("syntax error should not be marked unavailable")
	}
	if !strings.HasPrefix(plain.Error(), "query routes: ") {
		t.Errorf("wrapQueryError() = %q, want op prefix", plain)
	}

	base := fmt.Errorf("sql: database is closed")
	closed := wrapQueryError("query routes", base)
	if !errors.Is(closed, ErrUnavailable) {
		t.Error("closed database should be marked unavailable")
	}
	if !errors.Is(closed, base) {
		t.Error("original error should stay in the chain")
	}
}

func TestNormalizeLimit(t *testing.T) {
	if n, err := normalizeLimit(5); err != nil || n != 5 {
		t.Errorf("normalizeLimit(5) = %d, %v", n, err)
	}
	for _, bad := range []int{0, -3} {
		if _, err := normalizeLimit(bad); !errors.Is(err, ErrInvalidLimit) {
			t.Errorf("normalizeLimit(%d) error = %v, want ErrInvalidLimit", bad, err)
		}
	}
}
