package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"career-advisor/internal/advisor"
	"career-advisor/internal/logging"
	"career-advisor/pkg/models"
	"career-advisor/pkg/utils"
)

var adviceValidator = validator.New()

// requestID pulls the ID set by the request-validation middleware, minting
// one if the handler is reached without it (as in tests).
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	id := utils.GenerateRequestID()
	c.Set("request_id", id)
	return id
}

// bindProfile parses and validates a student profile request body
func bindProfile(c echo.Context) (models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := c.Bind(&profile); err != nil {
		return profile, utils.NewBadRequestError("Invalid request body: " + err.Error())
	}
	if err := adviceValidator.Struct(&profile); err != nil {
		return profile, utils.NewValidationError(err.Error())
	}
	return profile, nil
}

// errorJSON maps an operation error onto the wire error shape. CustomError
// carries its own status code; anything else is a blanket 500.
func errorJSON(c echo.Context, reqID string, err error) error {
	logger := logging.GetGlobalLogger()

	code := http.StatusInternalServerError
	label := "internal_error"

	var customErr *utils.CustomError
	if errors.As(err, &customErr) {
		code = customErr.Code
		switch code {
		case http.StatusBadRequest:
			label = "invalid_request"
		case http.StatusBadGateway:
			label = "llm_failed"
		case http.StatusServiceUnavailable:
			label = "llm_unavailable"
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Advice request failed", map[string]interface{}{
			"request_id": reqID,
			"error":      err.Error(),
		})
	}

	return c.JSON(code, models.ErrorResponse{
		Error:     label,
		Message:   err.Error(),
		RequestID: reqID,
		Timestamp: time.Now(),
	})
}

// AnalyzeSkillsHandler handles POST /api/v1/analyze/skills
func AnalyzeSkillsHandler(adv *advisor.Advisor) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		started := time.Now()

		profile, err := bindProfile(c)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		analysis, err := adv.AnalyzeSkills(c.Request().Context(), profile)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.SkillsAnalysisResponse{
			Analysis:       analysis,
			ProcessingTime: time.Since(started),
			RequestID:      reqID,
		})
	}
}

// MatchCareersHandler handles POST /api/v1/match/careers
func MatchCareersHandler(adv *advisor.Advisor) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		started := time.Now()

		profile, err := bindProfile(c)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		matches, err := adv.MatchCareers(c.Request().Context(), profile)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.CareerMatchesResponse{
			Matches:        matches,
			ProcessingTime: time.Since(started),
			RequestID:      reqID,
		})
	}
}

// LearningPathHandler handles POST /api/v1/learning-path
func LearningPathHandler(adv *advisor.Advisor) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		started := time.Now()

		var req models.LearningPathRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, reqID, utils.NewBadRequestError("Invalid request body: "+err.Error()))
		}
		if err := adviceValidator.Struct(&req); err != nil {
			return errorJSON(c, reqID, utils.NewValidationError(err.Error()))
		}

		path, err := adv.LearningPath(c.Request().Context(), req.Profile, req.TargetCareer)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.LearningPathResponse{
			LearningPath:   path,
			TargetCareer:   req.TargetCareer,
			ProcessingTime: time.Since(started),
			RequestID:      reqID,
		})
	}
}

// ResearchIndustryHandler handles GET /api/v1/research/industry/:industry
func ResearchIndustryHandler(adv *advisor.Advisor) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		started := time.Now()

		industry := c.Param("industry")
		if industry == "" {
			return errorJSON(c, reqID, utils.NewBadRequestError("Industry name is required"))
		}

		research, err := adv.ResearchIndustry(c.Request().Context(), industry)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.IndustryResearchResponse{
			Industry:       industry,
			Research:       research,
			ProcessingTime: time.Since(started),
			RequestID:      reqID,
		})
	}
}

// ComprehensiveAdviceHandler handles POST /api/v1/advice/comprehensive
func ComprehensiveAdviceHandler(adv *advisor.Advisor) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		started := time.Now()

		profile, err := bindProfile(c)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		logger := logging.GetGlobalLogger()
		logger.Info("Processing comprehensive advice request", map[string]interface{}{
			"request_id": reqID,
			"student":    profile.Name,
		})

		advice, err := adv.GetComprehensiveAdvice(c.Request().Context(), profile)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.ComprehensiveAdviceResponse{
			SkillsAnalysis: advice.SkillsAnalysis,
			CareerMatches:  advice.CareerMatches,
			ActionPlan:     advice.ActionPlan,
			ProcessingTime: time.Since(started),
			RequestID:      reqID,
		})
	}
}
