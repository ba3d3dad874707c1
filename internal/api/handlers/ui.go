package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"career-advisor/internal/advisor"
	"career-advisor/pkg/models"
	"career-advisor/pkg/utils"
)

// The form UI is a single self-contained page: GET renders the empty form,
// POST re-renders it with the model's reply underneath.

const uiPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Career Advisor</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 2em auto; padding: 0 1em; }
label { display: block; margin-top: 1em; font-weight: bold; }
input, textarea, select { width: 100%; padding: 0.4em; margin-top: 0.2em; }
button { margin-top: 1.5em; padding: 0.6em 1.6em; }
.advice { margin-top: 2em; padding: 1em; background: #f4f4f4; white-space: pre-wrap; }
.error { margin-top: 2em; padding: 1em; background: #fdd; }
</style>
</head>
<body>
<h1>Career Advisor</h1>
<form method="POST" action="/ui">
<label for="name">Your Name</label>
<input id="name" name="name" value="{{.Form.Name}}" required>
<label for="education_level">Education Level</label>
<select id="education_level" name="education_level">
<option{{if eq .Form.EducationLevel "School (9-12)"}} selected{{end}}>School (9-12)</option>
<option{{if eq .Form.EducationLevel "Diploma"}} selected{{end}}>Diploma</option>
<option{{if eq .Form.EducationLevel "Undergraduate"}} selected{{end}}>Undergraduate</option>
<option{{if eq .Form.EducationLevel "Postgraduate"}} selected{{end}}>Postgraduate</option>
</select>
<label for="interests">Your Interests (e.g. AI, Business, Design)</label>
<input id="interests" name="interests" value="{{.Form.Interests}}">
<label for="skills">Your Skills (e.g. Python, Math, Communication)</label>
<textarea id="skills" name="skills" rows="3">{{.Form.Skills}}</textarea>
<label for="goal">Career Goal</label>
<select id="goal" name="goal">
<option{{if eq .Form.Goal "Job"}} selected{{end}}>Job</option>
<option{{if eq .Form.Goal "Startup"}} selected{{end}}>Startup</option>
<option{{if eq .Form.Goal "Higher Studies"}} selected{{end}}>Higher Studies</option>
<option{{if eq .Form.Goal "Undecided"}} selected{{end}}>Undecided</option>
</select>
<button type="submit">Get Career Advice</button>
</form>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
{{if .Advice}}<div class="advice">{{.Advice}}</div>{{end}}
</body>
</html>`

var uiTemplate = template.Must(template.New("ui").Parse(uiPage))

type uiPageData struct {
	Form   models.QuickAdviceRequest
	Advice string
	Error  string
}

// UIFormHandler handles GET /ui
func UIFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderUI(c, http.StatusOK, uiPageData{})
	}
}

// UIAdviceHandler handles POST /ui: it folds the form fields into the single
// combined quick-advice prompt and renders the reply on the page.
func UIAdviceHandler(adv *advisor.Advisor) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.QuickAdviceRequest
		if err := c.Bind(&req); err != nil {
			return renderUI(c, http.StatusBadRequest, uiPageData{Error: "Invalid form submission"})
		}
		if err := adviceValidator.Struct(&req); err != nil {
			return renderUI(c, http.StatusBadRequest, uiPageData{Form: req, Error: "Name and education level are required"})
		}

		advice, err := adv.QuickAdvice(c.Request().Context(), req)
		if err != nil {
			status := http.StatusInternalServerError
			var customErr *utils.CustomError
			if errors.As(err, &customErr) {
				status = customErr.Code
			}
			return renderUI(c, status, uiPageData{Form: req, Error: err.Error()})
		}

		return renderUI(c, http.StatusOK, uiPageData{Form: req, Advice: advice})
	}
}

func renderUI(c echo.Context, status int, data uiPageData) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return uiTemplate.Execute(c.Response(), data)
}
