package handlers

import (
	"errors"
	"net/http"

	request "github.com/bhavyaa-1001/Drop2Smart-sub001/internal/adapter/http/dto/request"
	response "github.com/bhavyaa-1001/Drop2Smart-sub001/internal/adapter/http/dto/response"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAssessmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSESSMENT_INPUT", "Invalid assessment payload", http.StatusBadRequest)
)

// AssessmentHandler handles HTTP requests for rooftop assessments.
//
// Creation is asynchronous: the handler returns 202 with the record id and
// consumers poll the status endpoint for the outcome.
type AssessmentHandler struct {
	usecase usecase.IAssessmentUseCase
}

func NewAssessmentHandler(uc usecase.IAssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{usecase: uc}
}

// CreateAssessment godoc
// @Summary      Submit a rooftop assessment
// @Description  Creates the assessment record and queues background processing.
// @Accept       json
// @Produce      json
// @Param        assessment  body      request.AssessmentRequest  true  "Assessment input"
// @Success      202  {object}  response.AssessmentAcceptedResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /assessments [post]
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var payload request.AssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), payload.ToBuildingDetails(), payload.ToLocation(), payload.ToEnvironmentalData())
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.AcceptedFromAssessment(a))
}

// GetAssessment godoc
// @Summary      Fetch a full assessment record
// @Produce      json
// @Param        id   path      string  true  "Assessment id"
// @Success      200  {object}  response.AssessmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assessments/{id} [get]
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessment(a))
}

// GetAssessmentStatus godoc
// @Summary      Poll assessment processing status
// @Produce      json
// @Param        id   path      string  true  "Assessment id"
// @Success      200  {object}  response.AssessmentStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assessments/{id}/status [get]
func (h *AssessmentHandler) GetAssessmentStatus(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusFromAssessment(a))
}

func mapAssessmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID), errors.Is(err, usecase.ErrInvalidRoofArea), errors.Is(err, usecase.ErrInvalidCoordinates):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDispatchRejected):
		return pkg.NewDomainErrorSimple("QUEUE_FULL", "Service busy, try again later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
