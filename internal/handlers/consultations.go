package handlers

import (
	"errors"
	"log"
	"net/http"

	"prescription-screening-server/internal/consultation"
	"prescription-screening-server/internal/middleware"
	"prescription-screening-server/internal/models"
	"prescription-screening-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// ConsultationHandler handles consultation screening requests.
type ConsultationHandler struct {
	Service *consultation.Service
}

// NewConsultationHandler creates a new ConsultationHandler.
func NewConsultationHandler(service *consultation.Service) *ConsultationHandler {
	return &ConsultationHandler{Service: service}
}

// QuestionDto represents a screening question sent to the frontend.
type QuestionDto struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// QuestionsResponse contains a product's questions and the session opened
// for answering them.
type QuestionsResponse struct {
	Questions      []QuestionDto `json:"questions"`
	ConsultationID string        `json:"consultationId"`
}

// AnswerDto represents a patient answer received from the frontend.
type AnswerDto struct {
	QuestionID string `json:"questionId" binding:"required,notblank"`
	Value      string `json:"value" binding:"required,notblank"`
}

// ConsultationRequest represents the answer submission body. The patient
// profile fields are validated for shape but the stored patient record is
// authoritative.
type ConsultationRequest struct {
	PatientName string      `json:"patientName" binding:"required,notblank,max=100"`
	DateOfBirth string      `json:"dateOfBirth" binding:"required,notblank"`
	Address     string      `json:"address" binding:"required,notblank,max=200"`
	Answers     []AnswerDto `json:"answers" binding:"required,min=1,dive"`
}

// EligibilityResponse represents the verdict sent to the frontend. Status is
// also used with value "ERROR" in the not-found error payload, so clients
// can render both from one shape.
type EligibilityResponse struct {
	ConsultationID string `json:"consultationId"`
	Eligible       bool   `json:"eligible"`
	Message        string `json:"message"`
	Status         string `json:"status"`
}

// GetQuestions handles GET /consultations/:productId/questions. It opens a
// new screening session for the authenticated patient and returns the
// product's questions.
func (h *ConsultationHandler) GetQuestions(c *gin.Context) {
	patientID, exists := middleware.GetPatientIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Patient ID not found in token")
		return
	}

	productID := c.Param("id")

	result, err := h.Service.StartSession(c.Request.Context(), patientID, productID)
	if err != nil {
		var notFound *consultation.ProductNotFoundError
		if errors.As(err, &notFound) {
			utils.NotFound(c, notFound.Error())
			return
		}
		log.Printf("start session failed: %v", err)
		utils.InternalServerError(c)
		return
	}

	questions := make([]QuestionDto, 0, len(result.Questions))
	for _, q := range result.Questions {
		questions = append(questions, QuestionDto{
			ID:       q.ID,
			Text:     q.Text,
			Type:     string(q.Type),
			Required: q.Required,
		})
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Questions:      questions,
		ConsultationID: result.ConsultationID,
	})
}

// SubmitAnswers handles POST /consultations/:consultationId/answers. It
// records the authenticated patient's answers and returns the eligibility
// verdict.
func (h *ConsultationHandler) SubmitAnswers(c *gin.Context) {
	patientID, exists := middleware.GetPatientIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Patient ID not found in token")
		return
	}

	consultationID := c.Param("id")

	var req ConsultationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	answers := make([]models.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, models.Answer{QuestionID: a.QuestionID, Value: a.Value})
	}

	verdict, err := h.Service.SubmitAnswers(c.Request.Context(), consultationID, patientID, answers)
	if err != nil {
		h.submitError(c, consultationID, err)
		return
	}

	c.JSON(http.StatusOK, EligibilityResponse{
		ConsultationID: verdict.ConsultationID,
		Eligible:       verdict.Eligible,
		Message:        verdict.Message,
		Status:         string(verdict.Status),
	})
}

// submitError maps service errors to distinct transport responses. A missing
// consultation answers in the eligibility shape with status ERROR so the
// screening frontend renders it in place of a verdict.
func (h *ConsultationHandler) submitError(c *gin.Context, consultationID string, err error) {
	var consultationNotFound *consultation.ConsultationNotFoundError
	var patientNotFound *consultation.PatientNotFoundError
	var accessDenied *consultation.AccessDeniedError

	switch {
	case errors.As(err, &consultationNotFound):
		c.JSON(http.StatusNotFound, EligibilityResponse{
			ConsultationID: consultationID,
			Eligible:       false,
			Message:        consultationNotFound.Error(),
			Status:         "ERROR",
		})
	case errors.As(err, &patientNotFound):
		utils.NotFound(c, patientNotFound.Error())
	case errors.As(err, &accessDenied):
		utils.Forbidden(c, accessDenied.Error())
	default:
		log.Printf("submit answers failed: %v", err)
		utils.InternalServerError(c)
	}
}
