package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestShouldSkipIdempotence(t *testing.T) {
	cases := []struct {
		method string
		path   string
		skip   bool
	}{
		{http.MethodPost, "/api/v1/marketplace/item-1/purchase", true},
		{http.MethodPost, "/api/v1/marketplace/item-1/purchase/", true},
		{http.MethodPost, "/api/v1/tutor/chat", true},
		{http.MethodPost, "/api/v1/tutor/greeting", true},
		{http.MethodPost, "/api/v1/marketplace", false},
		{http.MethodPost, "/api/v1/question-sets", false},
		{http.MethodDelete, "/api/v1/marketplace/item-1", false},
		{http.MethodGet, "/api/v1/tutor/chat", false},
	}
	for _, tc := range cases {
		if got := shouldSkipIdempotence(tc.method, tc.path); got != tc.skip {
			t.Errorf("shouldSkipIdempotence(%s, %s) = %v, want %v", tc.method, tc.path, got, tc.skip)
		}
	}
}

func TestLoggerRecordsAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/whoami", func(c *gin.Context) {
		c.Set(ContextKeyUserID, "user-42")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami?verbose=1", nil)
	r.ServeHTTP(w, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["user_id"] != "user-42" {
		t.Fatalf("user_id = %v, want user-42", ctx["user_id"])
	}
	if ctx["path"] != "/whoami?verbose=1" {
		t.Fatalf("path = %v, want query included", ctx["path"])
	}
	if ctx["status"] != int64(http.StatusOK) {
		t.Fatalf("status = %v, want 200", ctx["status"])
	}
}

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"  Bearer  abc  ", "abc"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeToken(tc.in); got != tc.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
