package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/pkg/config"
	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

func newClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 2 * time.Second
	return New(cfg, StaticTokenSource("session-token"), zap.NewNop(), nil)
}

func TestGetSetsAuthAndRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	_, err := client.Get(context.Background(), "roles", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetEncodesQueryParameters(t *testing.T) {
	var gotQuery url.Values
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	values := url.Values{}
	values.Set("status", "ACTIVE")
	values.Set("page", "2")
	_, err := client.Get(context.Background(), "roles", values)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", gotQuery.Get("status"))
	assert.Equal(t, "2", gotQuery.Get("page"))
}

func TestHTTPErrorKeepsServerMessage(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"error":"code already in use"}`))
	}))

	_, err := client.Post(context.Background(), "org-units", map[string]string{"code": "FIT"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrServer))
	typed := appErrors.FromError(err)
	assert.Equal(t, "code already in use", typed.Message)
	assert.Equal(t, http.StatusConflict, typed.Status)
}

func TestHTTPErrorWithoutEnvelopeGetsGenericMessage(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))

	_, err := client.Get(context.Background(), "roles", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrServer))
	assert.NotEmpty(t, appErrors.FromError(err).Message)
}

func TestTransportFailureMapsToNetworkError(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://127.0.0.1:1"
	cfg.API.Timeout = 200 * time.Millisecond
	client := New(cfg, nil, zap.NewNop(), nil)

	_, err := client.Get(context.Background(), "roles", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNetwork))
}

func TestCancelledContextMapsToCancelled(t *testing.T) {
	started := make(chan struct{})
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Get(ctx, "roles", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrCancelled))
}

func TestUploadSendsMultipartFieldsAndFile(t *testing.T) {
	var gotFields map[string]string
	var gotFile string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for key := range r.MultipartForm.Value {
			gotFields[key] = r.FormValue(key)
		}
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"d1"}}`))
	}))

	fields := []UploadField{
		{Name: "entity_type", Value: "course"},
		{Name: "entity_id", Value: "c1"},
		{Name: "document_type", Value: "syllabus"},
		{Name: "description", Value: ""},
		{Name: "folder", Value: "tms"},
	}
	_, err := client.Upload(context.Background(), "documents", "syllabus.pdf", bytes.NewReader([]byte("%PDF")), fields)
	require.NoError(t, err)

	assert.Equal(t, "syllabus.pdf", gotFile)
	assert.Equal(t, "course", gotFields["entity_type"])
	assert.Equal(t, "tms", gotFields["folder"])
	// Blank metadata fields are omitted.
	_, present := gotFields["description"]
	assert.False(t, present)
}
