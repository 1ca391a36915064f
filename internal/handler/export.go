package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jesbridge/backend/internal/export"
	"jesbridge/backend/internal/logger"
	"jesbridge/backend/internal/model"
	"jesbridge/backend/internal/validate"
)

// ExportHandler runs the same validation and computation as RunHandler but
// streams the result set as an xlsx workbook.
func ExportHandler(c *gin.Context) {
	var req model.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request"})
		return
	}

	validated, fieldErrs := validate.Request(req)
	if len(fieldErrs) > 0 {
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

	f, err := export.BuildWorkbook(resp)
	if err != nil {
		logger.WithRequest(c).WithError(err).Error("workbook build failed")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to build workbook: " + err.Error()})
		return
	}

	filename := fmt.Sprintf("lcr_run_%s_%s.xlsx", validated.Country, validated.ReportDate)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(c.Writer); err != nil {
		logger.WithRequest(c).WithError(err).Error("workbook write failed")
	}
}
