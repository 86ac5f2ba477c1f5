package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><head><title>Acme</title></head><body>" + r.Header.Get("User-Agent") + "</body></html>"))
	})
	mux.HandleFunc("/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		w.Write([]byte("body{color:#ff6600}"))
	})
	mux.HandleFunc("/missing.css", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPEngineFetchDocument(t *testing.T) {
	srv := newSite(t)
	e := NewHTTPEngine()

	res, err := e.Fetch(context.Background(), &FetchRequest{URL: srv.URL + "/"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "http", res.EngineName)
	assert.Contains(t, res.Body, "Chrome/")
	assert.True(t, strings.HasPrefix(res.ContentType, "text/html"))
}

func TestHTTPEngineStylesheetSkipsHTMLCheck(t *testing.T) {
	srv := newSite(t)
	e := NewHTTPEngine()

	res, err := e.Fetch(context.Background(), &FetchRequest{URL: srv.URL + "/style.css", Kind: KindStylesheet})
	require.NoError(t, err)
	assert.Equal(t, "body{color:#ff6600}", res.Body)

	_, err = e.Fetch(context.Background(), &FetchRequest{URL: srv.URL + "/style.css", Kind: KindDocument})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotHTML))
}

func TestHTTPEngineErrorNamesURL(t *testing.T) {
	srv := newSite(t)
	e := NewHTTPEngine()
	target := srv.URL + "/missing.css"

	_, err := e.Fetch(context.Background(), &FetchRequest{URL: target, Kind: KindStylesheet})
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Equal(t, KindStylesheet, fe.Kind)
	assert.Contains(t, err.Error(), target)
}

func TestHTTPEngineTimeout(t *testing.T) {
	srv := newSite(t)
	e := NewHTTPEngine()

	start := time.Now()
	_, err := e.Fetch(context.Background(), &FetchRequest{URL: srv.URL + "/slow", Timeout: 100 * time.Millisecond})
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHTTPEngineUnreachable(t *testing.T) {
	e := NewHTTPEngine()
	_, err := e.Fetch(context.Background(), &FetchRequest{URL: "http://127.0.0.1:1/", Timeout: time.Second})

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Zero(t, fe.StatusCode)
	assert.Contains(t, err.Error(), "http://127.0.0.1:1/")
}
