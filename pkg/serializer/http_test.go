/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRespondJSONEncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]any{"bad": func() {}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHttpReaderRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, HttpReaderUserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	r := NewHttpReader()
	data, err := r.Read(srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
}

func TestHttpReaderNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewHttpReader()
	_, err := r.Read(srv.URL)
	assert.Error(t, err)
}

func TestHttpReaderEmptyURL(t *testing.T) {
	r := NewHttpReader()
	_, err := r.Read("")
	assert.Error(t, err)
}

func TestHttpReaderOptions(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("custom-agent"),
		WithTotalTimeout(5*time.Second),
		WithMaxIdleConnsPerHost(3),
	)

	assert.Equal(t, "custom-agent", r.UserAgent)
	assert.Equal(t, 5*time.Second, r.Client.Timeout)
}
