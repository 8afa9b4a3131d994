// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/skyroute/internal/config"
	"github.com/tomtom215/skyroute/internal/models"
)

// =====================================================
// ChiMiddleware Configuration Tests
// =====================================================

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	m := NewChiMiddleware(nil)

	if m.config == nil {
		t.Fatal("config is nil")
	}
	// Default should be empty (requires explicit configuration)
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	tests := []struct {
		name       string
		sec        config.SecurityConfig
		wantOrigin int
		wantReqs   int
		wantWindow time.Duration
	}{
		{
			name:       "overrides",
			sec:        config.SecurityConfig{CORSOrigins: []string{"https://a.example", "https://b.example"}, RateLimitReqs: 20, RateLimitWindow: 30 * time.Second},
			wantOrigin: 2,
			wantReqs:   20,
			wantWindow: 30 * time.Second,
		},
		{
			name:       "zero values keep defaults",
			sec:        config.SecurityConfig{},
			wantOrigin: 0,
			wantReqs:   100,
			wantWindow: time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ChiMiddlewareConfigFromSecurity(tt.sec)
			if len(cfg.CORSAllowedOrigins) != tt.wantOrigin {
				t.Errorf("origins = %v", cfg.CORSAllowedOrigins)
			}
			if cfg.RateLimitRequests != tt.wantReqs {
				t.Errorf("RateLimitRequests = %d, want %d", cfg.RateLimitRequests, tt.wantReqs)
			}
			if cfg.RateLimitWindow != tt.wantWindow {
				t.Errorf("RateLimitWindow = %v, want %v", cfg.RateLimitWindow, tt.wantWindow)
			}
		})
	}
}

// =====================================================
// CORS Middleware Tests
// =====================================================

func TestChiMiddleware_CORSPreflight(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://maps.example"}
	cfg.RateLimitDisabled = true
	env := newTestEnv(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analytics/stats", nil)
	req.Header.Set("Origin", "https://maps.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://maps.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestChiMiddleware_CORSRejectsUnknownOrigin(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://maps.example"}
	cfg.RateLimitDisabled = true
	env := newTestEnv(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

// =====================================================
// Rate Limiting Tests
// =====================================================

func TestChiMiddleware_RateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	env := newTestEnv(t, cfg)

	for i := 0; i < 2; i++ {
		if w := env.do(t, http.MethodGet, "/api/v1/health/live"); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := env.do(t, http.MethodGet, "/api/v1/health/live")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Error == nil || resp.Error.Code != models.ErrCodeRateLimited {
		t.Errorf("error = %+v, want RATE_LIMIT_EXCEEDED", resp.Error)
	}
}

func TestChiMiddleware_RateLimitDisabled(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	env := newTestEnv(t, cfg)

	for i := 0; i < 5; i++ {
		if w := env.do(t, http.MethodGet, "/api/v1/health/live"); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}
}
