// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"context"
	"net/http"
	"reflect"
	"time"

	"github.com/tomtom215/skyroute/internal/cache"
	"github.com/tomtom215/skyroute/internal/models"
)

// AnalyticsQueryFunc runs one analytics query against the store.
type AnalyticsQueryFunc func(ctx context.Context) (interface{}, error)

// AnalyticsQueryExecutor runs analytics queries cache-first.
//
// A hit is served with Metadata.Cached set and no query time. A miss runs
// the query, stores the result and reports how long it took. Failed
// queries are never cached.
type AnalyticsQueryExecutor struct {
	handler *Handler
}

// NewAnalyticsQueryExecutor creates an executor bound to h's store and cache.
func NewAnalyticsQueryExecutor(h *Handler) *AnalyticsQueryExecutor {
	return &AnalyticsQueryExecutor{handler: h}
}

// Execute answers r from the cache when possible, otherwise from queryFunc.
// cacheKeyPrefix names the query and params distinguishes its variants.
func (e *AnalyticsQueryExecutor) Execute(
	w http.ResponseWriter,
	r *http.Request,
	cacheKeyPrefix string,
	params interface{},
	queryFunc AnalyticsQueryFunc,
) {
	if e.handler.db == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeDatabase, "Database not available", nil)
		return
	}

	start := time.Now()
	c := e.handler.cache
	cacheKey := cache.GenerateKey(cacheKeyPrefix, params)

	if c != nil {
		if cached, ok := c.Get(cacheKey); ok {
			respondSuccess(w, http.StatusOK, cached, models.Metadata{
				Cached: true,
				Count:  sliceCount(cached),
			})
			return
		}
	}

	data, err := queryFunc(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabase,
			"Failed to execute query: "+cacheKeyPrefix, err)
		return
	}

	if c != nil {
		c.Set(cacheKey, data)
	}

	respondSuccess(w, http.StatusOK, data, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       sliceCount(data),
	})
}

// sliceCount returns the length of list results and nil for anything else.
func sliceCount(data interface{}) *int {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil
	}
	return countOf(v.Len())
}
