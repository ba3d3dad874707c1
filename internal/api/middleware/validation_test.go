package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"career-advisor/pkg/models"
)

func TestRequestValidationTagsRequests(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestValidation(1024)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("Middleware returned error: %v", err)
	}

	id, ok := c.Get("request_id").(string)
	if !ok || id == "" {
		t.Error("Expected a request ID set on the context")
	}
	if rec.Header().Get("X-Request-ID") != id {
		t.Error("Expected the request ID echoed in the response header")
	}
}

func TestRequestValidationRejectsOversizedBody(t *testing.T) {
	e := echo.New()
	body := strings.Repeat("x", 64)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/skills", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := RequestValidation(16)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("Middleware returned error: %v", err)
	}

	if reached {
		t.Error("Handler must not run for an oversized body")
	}
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("Expected 413, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "request_too_large" {
		t.Errorf("Expected request_too_large, got %q", resp.Error)
	}
	if resp.RequestID == "" {
		t.Error("Expected a request ID on the error response")
	}
}

func TestRequestValidationAllowsSmallPost(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/skills", strings.NewReader(`{"name":"Alex"}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := RequestValidation(1 << 20)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("Middleware returned error: %v", err)
	}
	if !reached {
		t.Error("Handler must run for a body under the cap")
	}
}
