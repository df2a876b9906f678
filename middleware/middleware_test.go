package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "1.1.1.1:80", "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": " 10.0.0.3 "}, "1.1.1.1:80", "10.0.0.3"},
		{"remote with port", nil, "192.168.1.5:5555", "192.168.1.5"},
		{"remote without port", nil, "192.168.1.6", "192.168.1.6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			if got := getClientIP(c); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.1.1.1:1000"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 200,200,429, got %v", codes)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.1.2:1000"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected a different ip to pass, got %d", w.Code)
	}
}

func TestRateLimiterEvictsIdleIPs(t *testing.T) {
	clock := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(5)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock

	store.getLimiter("10.0.0.1")
	clock = clock.Add(idleAfter / 2)
	store.getLimiter("10.0.0.2")
	if len(store.limiters) != 2 {
		t.Fatalf("expected 2 limiters, got %d", len(store.limiters))
	}

	clock = clock.Add(idleAfter / 2)
	store.getLimiter("10.0.0.3")
	if len(store.limiters) != 2 {
		t.Fatalf("expected the idle ip to be dropped, got %d limiters", len(store.limiters))
	}
	if _, ok := store.limiters["10.0.0.1"]; ok {
		t.Fatal("expected 10.0.0.1 to be evicted")
	}
	if _, ok := store.limiters["10.0.0.2"]; !ok {
		t.Fatal("expected 10.0.0.2 to survive")
	}
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		if _, ok := c.Get(LoggerKey); !ok {
			t.Error("expected logger in context")
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") != "req-1" {
		t.Fatalf("expected request id to be echoed, got %q", w.Header().Get("X-Request-ID"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated request id")
	}
}
