package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestUIFormHandlerRendersForm(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ui", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := UIFormHandler()(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{`<form method="POST" action="/ui">`, `name="education_level"`, `name="skills"`, `name="goal"`} {
		if !strings.Contains(body, want) {
			t.Errorf("Form page missing %q", want)
		}
	}
}

func TestUIAdviceHandlerRendersReply(t *testing.T) {
	fake := &fakeCompleter{replies: []string{"three career options"}}

	form := url.Values{}
	form.Set("name", "Priya")
	form.Set("education_level", "Undergraduate")
	form.Set("interests", "AI, Business")
	form.Set("skills", "Python, Math")
	form.Set("goal", "Job")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ui", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := UIAdviceHandler(newTestAdvisor(fake))(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "three career options") {
		t.Errorf("Expected model reply rendered on the page:\n%s", body)
	}
	// Submitted values are kept in the re-rendered form
	if !strings.Contains(body, `value="Priya"`) {
		t.Errorf("Expected submitted name preserved in the form")
	}

	if len(fake.requests) != 1 {
		t.Fatalf("Expected 1 model call, got %d", len(fake.requests))
	}
	if !strings.Contains(fake.requests[0].Prompt, "Name: Priya") {
		t.Errorf("Expected form fields folded into the prompt, got %q", fake.requests[0].Prompt)
	}
}

func TestUIAdviceHandlerRequiresName(t *testing.T) {
	fake := &fakeCompleter{}

	form := url.Values{}
	form.Set("education_level", "Undergraduate")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ui", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := UIAdviceHandler(newTestAdvisor(fake))(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for missing name, got %d", rec.Code)
	}
	if len(fake.requests) != 0 {
		t.Errorf("No model call should be made on validation failure")
	}
}
