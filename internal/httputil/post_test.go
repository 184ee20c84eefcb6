// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON_SendsBodyAndHeaders(t *testing.T) {
	var gotBody map[string]any
	var gotMethod, gotContentType, gotCustom string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("X-Custom")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer ts.Close()

	headers := http.Header{}
	headers.Set("X-Custom", "yes")

	var out map[string]any
	err := PostJSON(context.Background(), ts.Client(), ts.URL, headers, map[string]any{"page": 2}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "yes", gotCustom)
	assert.Equal(t, float64(2), gotBody["page"])
	assert.Equal(t, true, out["ok"])
}

func TestPostJSON_SingleAttempt(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"rate limited"}`)
	}))
	defer ts.Close()

	var out map[string]any
	err := PostJSON(context.Background(), ts.Client(), ts.URL, nil, struct{}{}, &out)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "rate limited", out["error"])
}

func TestPostJSON_NonJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>bad gateway</html>")
	}))
	defer ts.Close()

	var out map[string]any
	err := PostJSON(context.Background(), ts.Client(), ts.URL, nil, struct{}{}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestPostJSON_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	var out map[string]any
	err := PostJSON(context.Background(), &http.Client{}, url, nil, struct{}{}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request")
}

func TestPostJSON_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out map[string]any
	err := PostJSON(ctx, ts.Client(), ts.URL, nil, struct{}{}, &out)
	assert.ErrorIs(t, err, context.Canceled)
}
