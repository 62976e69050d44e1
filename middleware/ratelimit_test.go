package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("ip:1.2.3.4")
		if !allowed {
			t.Fatalf("Expected request %d to be allowed", i+1)
		}
	}

	allowed, retryAfter := rl.Allow("ip:1.2.3.4")
	if allowed {
		t.Error("Expected fourth request to be denied")
	}
	if retryAfter <= 0 {
		t.Errorf("Expected positive retry-after, got %v", retryAfter)
	}
}

func TestRateLimiterIndependentKeys(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if allowed, _ := rl.Allow("ip:1.1.1.1"); !allowed {
		t.Fatal("Expected first key to be allowed")
	}
	if allowed, _ := rl.Allow("ip:2.2.2.2"); !allowed {
		t.Error("Expected second key to have its own window")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if allowed, _ := rl.Allow("ip:1.2.3.4"); !allowed {
		t.Fatal("Expected first request to be allowed")
	}
	if allowed, _ := rl.Allow("ip:1.2.3.4"); allowed {
		t.Fatal("Expected second request to be denied")
	}

	time.Sleep(15 * time.Millisecond)
	if allowed, _ := rl.Allow("ip:1.2.3.4"); !allowed {
		t.Error("Expected request after window reset to be allowed")
	}
}

func TestRateLimitMiddlewareDeniesWith429(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	handler := RateLimit(rl, ClientIP)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected first request 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
}

func TestRateLimitNilLimiterIsNoOp(t *testing.T) {
	handler := RateLimit(nil, ClientIP)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200 with nil limiter, got %d", rec.Code)
		}
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := ClientIP(req); got != "ip:203.0.113.7" {
		t.Errorf("Expected ip:203.0.113.7, got %s", got)
	}
}

func TestClientIPRejectsGarbageForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "not-an-ip")

	if got := ClientIP(req); got != "ip:10.0.0.1" {
		t.Errorf("Expected fallback to RemoteAddr, got %s", got)
	}
}
