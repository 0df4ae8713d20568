package modules

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHeadDisclosure_IsHeadFile(t *testing.T) {
	m := NewGitHeadDisclosure()

	assert.True(t, m.isHeadFile("ref: refs/heads/master"))
	assert.True(t, m.isHeadFile("ref: refs/heads/heroku"))
	assert.True(t, m.isHeadFile("  REF: refs/heads/main\n"))
	assert.False(t, m.isHeadFile("test test test test  <tle>Index of kerkour.com</title> test"))
	assert.False(t, m.isHeadFile(""))
}

func TestGitHeadDisclosure_Scan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/.git/HEAD" {
			w.Write([]byte("ref: refs/heads/master\n"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	m := NewGitHeadDisclosure()
	finding, err := m.Scan(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	require.NotNil(t, finding)

	assert.Equal(t, HTTPGitHeadDisclosure, finding.Module)
	assert.Equal(t, SeverityHigh, finding.Severity)
	assert.Equal(t, srv.URL+"/.git/HEAD", finding.Result.URL)
}

func TestGitHeadDisclosure_Scan_NotDetected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("arbitrary html page"))
	}))
	defer srv.Close()

	finding, err := NewGitHeadDisclosure().Scan(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Nil(t, finding)
}

func TestGitHeadDisclosure_Scan_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	finding, err := NewGitHeadDisclosure().Scan(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Nil(t, finding)
}

func TestGitHeadDisclosure_Scan_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	finding, err := NewGitHeadDisclosure().Scan(context.Background(), http.DefaultClient, endpoint)
	require.Error(t, err)
	assert.Nil(t, finding)
}
