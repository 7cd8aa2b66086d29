package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"craftnest/config"
	"craftnest/middleware"
	"craftnest/ratelim"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func init() {
	config.Cfg = &config.App{
		JwtSecret:         []byte("route-test-secret"),
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "rzp_test_secret",
	}
}

func newOrderRouter() *httprouter.Router {
	router := httprouter.New()
	rl := ratelim.NewRateLimiter()
	AddOrderRoutes(router, rl)
	AddPayRoutes(router, rl)
	return router
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	claims := &middleware.Claims{
		Username: "tester",
		UserID:   userID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.Cfg.JwtSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

// Purchasing endpoints are buyer-only: learners and artisans must be turned
// away at the role gate with 403 and never reach a handler. A buyer with a
// bad body gets 400, which proves the gate admitted the request.
func TestOrderRoutesRoleGates(t *testing.T) {
	router := newOrderRouter()

	tests := []struct {
		name   string
		method string
		path   string
		role   string
		want   int
	}{
		{"learner cannot place order", http.MethodPost, "/api/orders", "learner", http.StatusForbidden},
		{"artisan cannot place order", http.MethodPost, "/api/orders", "artisan", http.StatusForbidden},
		{"buyer passes order gate", http.MethodPost, "/api/orders", "buyer", http.StatusBadRequest},
		{"learner cannot create payment order", http.MethodPost, "/api/payment/create-order", "learner", http.StatusForbidden},
		{"artisan cannot verify payment", http.MethodPost, "/api/payment/verify", "artisan", http.StatusForbidden},
		{"learner cannot verify payment", http.MethodPost, "/api/payment/verify", "learner", http.StatusForbidden},
		{"buyer passes verify gate", http.MethodPost, "/api/payment/verify", "buyer", http.StatusBadRequest},
		{"learner cannot cancel order", http.MethodDelete, "/api/orders/ORD-1", "learner", http.StatusForbidden},
		{"artisan cannot cancel order", http.MethodDelete, "/api/orders/ORD-1", "artisan", http.StatusForbidden},
		{"buyer cannot patch status", http.MethodPatch, "/api/orders/ORD-1/status", "buyer", http.StatusForbidden},
		{"learner cannot patch status", http.MethodPatch, "/api/orders/ORD-1/status", "learner", http.StatusForbidden},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.RemoteAddr = fmt.Sprintf("192.0.2.%d:1000", i+1)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, "u1", tt.role))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("%s %s as %s: status = %d, want %d", tt.method, tt.path, tt.role, rec.Code, tt.want)
			}
		})
	}
}

func TestOrderRoutesRequireAuth(t *testing.T) {
	router := newOrderRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.RemoteAddr = "198.51.100.9:1000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous POST /api/orders: status = %d, want 401", rec.Code)
	}
}
