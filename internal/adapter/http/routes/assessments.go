package routes

import (
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAssessments = "/assessments"
)

func addAssessmentRoutes(rg *gin.RouterGroup, assessmentHandler *handlers.AssessmentHandler) {
	assessments := rg.Group(PathAssessments)
	{
		assessments.POST("", assessmentHandler.CreateAssessment)
		assessments.GET("/:id", assessmentHandler.GetAssessment)
		assessments.GET("/:id/status", assessmentHandler.GetAssessmentStatus)
	}
}
