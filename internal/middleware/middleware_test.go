package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestRequestIDHonorsIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())

	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = RequestIDFrom(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "trace-me-123")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if seen != "trace-me-123" {
		t.Fatalf("RequestIDFrom = %q", seen)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "trace-me-123" {
		t.Fatalf("response header = %q", got)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("no request id assigned")
	}
}

func TestRecoveryAnswersFailureEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID(), Recovery(zerolog.Nop()))
	engine.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	if body["success"] != false || body["message"] != "Internal server error" {
		t.Fatalf("body = %v", body)
	}
}
