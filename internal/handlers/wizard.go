package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/repository"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/risk"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/wizard"
)

type WizardHandler struct {
	log           *zap.Logger
	Questionnaire *models.Questionnaire
}

func NewWizardHandler(log *zap.Logger, q *models.Questionnaire) *WizardHandler {
	return &WizardHandler{log: log, Questionnaire: q}
}

// Start sends the user to the first step.
func (h *WizardHandler) Start(c *gin.Context) {
	c.Redirect(http.StatusFound, "/assessment/step/1")
}

// ShowStep returns one step's definition together with any values the
// user already buffered for it, so a revisited page re-populates.
func (h *WizardHandler) ShowStep(c *gin.Context) {
	step, ok := h.stepParam(c)
	if !ok {
		return
	}

	def, _ := h.Questionnaire.StepAt(step)
	buf := loadBuffer(c)

	csrfToken, _ := c.Get("csrf_token")
	c.JSON(http.StatusOK, gin.H{
		"step":       step,
		"steps":      wizard.StepCount,
		"title":      def.Title,
		"fields":     def.Fields,
		"values":     buf.StepValues(step),
		"csrf_token": csrfToken,
	})
}

// SubmitStep buffers one step's answers. The final step scores the
// questionnaire, persists the assessment, and only then clears the
// buffer; a failed insert leaves step 4 resubmittable.
func (h *WizardHandler) SubmitStep(c *gin.Context) {
	step, ok := h.stepParam(c)
	if !ok {
		return
	}

	buf := loadBuffer(c)

	fields, err := wizard.Fields(step)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such step"})
		return
	}
	form := make(map[string]string, len(fields))
	for _, field := range fields {
		if value, present := c.GetPostForm(field); present {
			form[field] = value
		}
	}

	if err := buf.Apply(step, form); err != nil {
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			// Re-show the same step; nothing was buffered.
			c.JSON(http.StatusBadRequest, gin.H{
				"error": verr.Error(),
				"field": verr.Field,
				"step":  step,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if step < wizard.StepCount {
		if err := saveBuffer(c, buf); err != nil {
			h.log.Error("Failed to save wizard buffer", zap.Error(err), zap.Int("step", step))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save your answers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"step": step,
			"next": fmt.Sprintf("/assessment/step/%d", step+1),
		})
		return
	}

	h.complete(c, buf)
}

// complete runs the terminal transition: score, persist, clear.
func (h *WizardHandler) complete(c *gin.Context, buf *wizard.Buffer) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	answers, err := buf.Answers()
	if err != nil {
		// An earlier step was skipped; keep what is buffered and send
		// the user back to the start.
		if saveErr := saveBuffer(c, buf); saveErr != nil {
			h.log.Error("Failed to save wizard buffer", zap.Error(saveErr))
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Questionnaire is incomplete: " + err.Error(),
			"redirect": "/assessment/step/1",
		})
		return
	}

	score := risk.Score(answers)
	level := risk.LevelFor(score)

	payload, err := json.Marshal(answers)
	if err != nil {
		h.log.Error("Failed to serialize answers payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete assessment"})
		return
	}

	assessment, err := repository.CreateAssessment(c.Request.Context(), user.ID, score, string(level), string(payload))
	if err != nil {
		h.log.Error("Failed to persist assessment", zap.Error(err), zap.Uint("userID", user.ID))
		// Keep the buffer so the user can resubmit step 4.
		if saveErr := saveBuffer(c, buf); saveErr != nil {
			h.log.Error("Failed to save wizard buffer", zap.Error(saveErr))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save your assessment. Please try again."})
		return
	}

	if err := clearBuffer(c); err != nil {
		// The record is already saved; a stale buffer only means the
		// next questionnaire starts pre-filled.
		h.log.Warn("Failed to clear wizard buffer after persist", zap.Error(err), zap.Uint("assessmentID", assessment.ID))
	}

	c.JSON(http.StatusCreated, gin.H{
		"assessment_id": assessment.ID,
		"risk_score":    assessment.RiskScore,
		"risk_level":    assessment.RiskLevel,
		"redirect":      fmt.Sprintf("/result/%d", assessment.ID),
	})
}

func (h *WizardHandler) stepParam(c *gin.Context) (int, bool) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < 1 || step > wizard.StepCount {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such step"})
		return 0, false
	}
	return step, true
}
