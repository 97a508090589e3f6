package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pagelens/pagelens"
	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeCommand(t *testing.T) {
	t.Parallel()

	t.Run("prints the normalized document for a live page", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><head><title>Acme</title></head><body><h1>Welcome</h1><p>Hi.</p></body></html>`))
		}))
		defer server.Close()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"scrape", server.URL}, stdout, stderr)
		require.NoError(t, err)

		var doc pagelens.Document
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, server.URL, doc.Source)
		assert.Equal(t, "Acme", doc.Title)
		assert.Equal(t, "Welcome", doc.Hero.Heading)
		assert.Equal(t, "Hi.", doc.Hero.Subheading)
		require.NotEmpty(t, doc.Sections)
	})

	t.Run("reports unreachable URLs on stderr and fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"scrape", server.URL}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "skip "+server.URL)
	})
}
