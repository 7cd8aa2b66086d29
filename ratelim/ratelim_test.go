package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitBurstThenReject(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = "203.0.113.7:54321"

	// The burst allows 10 immediate requests.
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler(rec, req, nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("request past burst: status = %d, want 429", rec.Code)
	}
}

func TestLimitSeparateClients(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	first := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	first.RemoteAddr = "198.51.100.1:1000"
	for i := 0; i < 11; i++ {
		handler(httptest.NewRecorder(), first, nil)
	}

	// A different IP gets its own bucket.
	second := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	second.RemoteAddr = "198.51.100.2:1000"
	rec := httptest.NewRecorder()
	handler(rec, second, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("fresh client: status = %d, want 200", rec.Code)
	}
}
