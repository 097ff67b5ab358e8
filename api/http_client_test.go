package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-endpoint", r.URL.Path)
		assert.Equal(t, "SGR01", r.URL.Query().Get("zone"))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, time.Second)
	var response map[string]string

	err := client.Request(context.Background(), http.MethodGet, "/test-endpoint", url.Values{"zone": {"SGR01"}}, nil, nil, &response)

	require.NoError(t, err)
	assert.Equal(t, "success", response["message"])
}

func TestHTTPClient_Request_FormBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2026-10-19", r.PostForm.Get("datestart"))
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, time.Second)
	err := client.Request(context.Background(), http.MethodPost, "", nil, nil, url.Values{"datestart": {"2026-10-19"}}, nil)
	require.NoError(t, err)
}

func TestHTTPClient_Request_JSONBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "value", got["key"])
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, time.Second)
	err := client.Request(context.Background(), http.MethodPost, "/x", nil, map[string]string{"X-Test": "yes"}, map[string]string{"key": "value"}, nil)
	require.NoError(t, err)
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, time.Second)
	var response map[string]string

	err := client.Request(context.Background(), http.MethodPost, "/test-endpoint", nil, nil, map[string]string{"key": "value"}, &response)

	require.Error(t, err)
	assert.Equal(t, "unexpected status code: 400 Bad Request", err.Error())
}

func TestHTTPClient_Request_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, time.Second)
	var response map[string]string
	err := client.Request(context.Background(), http.MethodGet, "/", nil, nil, nil, &response)
	assert.ErrorContains(t, err, "decode response")
}

func TestHTTPClient_Request_ContextCancelled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer mockServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewHTTPClient(mockServer.URL, time.Second)
	err := client.Request(ctx, http.MethodGet, "/", nil, nil, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
