package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serve(t *testing.T, html string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProbeTitleFromOpenGraph(t *testing.T) {
	srv := serve(t, `<html><head>
		<meta property="og:title" content="Cat Video"/>
		<title>ignored</title>
	</head></html>`, http.StatusOK)

	title, err := NewProbeService().Title(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Title failed: %v", err)
	}
	if title != "Cat Video" {
		t.Errorf("Expected og:title, got %q", title)
	}
}

func TestProbeTitleFallsBackToTitleTag(t *testing.T) {
	srv := serve(t, `<html><head><title> Plain Title </title></head></html>`, http.StatusOK)

	title, err := NewProbeService().Title(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Title failed: %v", err)
	}
	if title != "Plain Title" {
		t.Errorf("Expected trimmed title tag, got %q", title)
	}
}

func TestProbeTitleNoTitle(t *testing.T) {
	srv := serve(t, `<html><head></head><body>nothing</body></html>`, http.StatusOK)

	if _, err := NewProbeService().Title(context.Background(), srv.URL); err == nil {
		t.Error("Title should fail when the page has no title")
	}
}

func TestProbeTitleNon200(t *testing.T) {
	srv := serve(t, "not found", http.StatusNotFound)

	if _, err := NewProbeService().Title(context.Background(), srv.URL); err == nil {
		t.Error("Title should fail on non-200 response")
	}
}
