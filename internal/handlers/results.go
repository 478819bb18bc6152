package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/repository"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/risk"
)

type ResultsHandler struct {
	log *zap.Logger
}

func NewResultsHandler(log *zap.Logger) *ResultsHandler {
	return &ResultsHandler{log: log}
}

// assessmentView is the wire shape of one persisted assessment.
type assessmentView struct {
	ID        uint         `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	RiskScore float64      `json:"risk_score"`
	RiskLevel string       `json:"risk_level"`
	Answers   risk.Answers `json:"answers"`
}

func toView(a models.Assessment) (assessmentView, error) {
	view := assessmentView{
		ID:        a.ID,
		CreatedAt: a.CreatedAt,
		RiskScore: a.RiskScore,
		RiskLevel: a.RiskLevel,
	}
	err := json.Unmarshal([]byte(a.Answers), &view.Answers)
	return view, err
}

// List returns the caller's assessment history, newest first.
func (h *ResultsHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	assessments, err := repository.ListAssessmentsByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list assessments", zap.Error(err), zap.Uint("userID", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results"})
		return
	}

	views := make([]assessmentView, 0, len(assessments))
	for _, a := range assessments {
		view, err := toView(a)
		if err != nil {
			h.log.Error("Failed to decode answers payload", zap.Error(err), zap.Uint("assessmentID", a.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results"})
			return
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"assessments": views})
}

// Show returns a single assessment. A result belonging to someone else
// redirects to the caller's own history and never exposes the record.
func (h *ResultsHandler) Show(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assessment not found"})
		return
	}

	assessment, err := repository.GetAssessmentByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assessment not found"})
			return
		}
		h.log.Error("Failed to load assessment", zap.Error(err), zap.Uint64("assessmentID", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load result"})
		return
	}

	if assessment.UserID != user.ID {
		c.Redirect(http.StatusFound, "/results")
		return
	}

	view, err := toView(*assessment)
	if err != nil {
		h.log.Error("Failed to decode answers payload", zap.Error(err), zap.Uint("assessmentID", assessment.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessment":      view,
		"recommendations": recommendationsFor(assessment.RiskScore),
	})
}

// recommendationsFor keeps the original strict-comparison bucketing for
// the advice section. It intentionally differs from the risk-level
// thresholds at exactly 30 and 70; risk_level is the canonical field.
func recommendationsFor(score float64) string {
	switch {
	case score > 70:
		return "high"
	case score > 30:
		return "moderate"
	default:
		return "low"
	}
}

// Chart renders the caller's score history as a line chart.
func (h *ResultsHandler) Chart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	assessments, err := repository.ListAssessmentsByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list assessments for chart", zap.Error(err), zap.Uint("userID", user.ID))
		c.String(http.StatusInternalServerError, "Failed to load chart")
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Risk Score Over Time",
			Subtitle: user.Username,
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	// ListAssessmentsByUser is newest first; the chart wants
	// chronological order.
	items := make([]opts.LineData, 0, len(assessments))
	for i := len(assessments) - 1; i >= 0; i-- {
		a := assessments[i]
		items = append(items, opts.LineData{Value: []interface{}{a.CreatedAt, a.RiskScore}})
	}
	line.AddSeries("Risk Score", items).
		SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		h.log.Error("Failed to render chart", zap.Error(err), zap.Uint("userID", user.ID))
	}
}
