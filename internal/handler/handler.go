package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jesbridge/backend/internal/logger"
	"jesbridge/backend/internal/model"
	"jesbridge/backend/internal/service"
	"jesbridge/backend/internal/validate"
)

// runner executes validated requests. Overridden in tests.
var runner service.JobRunner = service.NewSimulatedRunner()

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func RunHandler(c *gin.Context) {
	var req model.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request"})
		return
	}

	validated, fieldErrs := validate.Request(req)
	if len(fieldErrs) > 0 {
		logger.WithRequest(c).WithField("fields", len(fieldErrs)).Debug("request rejected")
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   fieldErrs[0].Message,
			Details: fieldErrs,
		})
		return
	}

	resp, err := runner.Run(validated)
	if err != nil {
		logger.WithRequest(c).WithError(err).Error("run failed")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
