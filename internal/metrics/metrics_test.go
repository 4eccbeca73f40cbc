package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/api/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/articles/{id}", "404"))

	req := httptest.NewRequest(http.MethodGet, "/api/articles/17", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/articles/{id}", "404"))
	if after-before != 1 {
		t.Fatalf("expected one request recorded under route pattern, got %f", after-before)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Fatalf("expected duration observations")
	}
}

func TestStatusWriterDefaultsToOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &statusWriter{ResponseWriter: rr, status: http.StatusOK}
	_, _ = w.Write([]byte("ok"))
	w.WriteHeader(http.StatusTeapot)

	if w.status != http.StatusOK {
		t.Fatalf("status after implicit write should stay 200, got %d", w.status)
	}
}

func TestPipelineCounters(t *testing.T) {
	var p Pipeline

	processed := testutil.ToFloat64(articlesProcessed)
	rejected := testutil.ToFloat64(articlesRejected)
	dropped := testutil.ToFloat64(tokensDropped.WithLabelValues("entities"))

	p.ArticleProcessed()
	p.ArticleRejected()
	p.TokensDropped("entities", 3)
	p.TokensDropped("entities", 0)

	if testutil.ToFloat64(articlesProcessed)-processed != 1 {
		t.Fatalf("processed counter not incremented")
	}
	if testutil.ToFloat64(articlesRejected)-rejected != 1 {
		t.Fatalf("rejected counter not incremented")
	}
	if got := testutil.ToFloat64(tokensDropped.WithLabelValues("entities")) - dropped; got != 3 {
		t.Fatalf("expected 3 dropped tokens, got %f", got)
	}
}
