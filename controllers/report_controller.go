package controllers

import (
	"io"
	"net/http"

	"github.com/1716001473/ZhiJieHealth/utils"

	"github.com/gin-gonic/gin"
)

const maxReportBody = 1 << 20

// ReportController exposes the stateless report helpers.
type ReportController struct{}

func NewReportController() *ReportController {
	return &ReportController{}
}

// POST /api/v1/report/normalize
// Any body is accepted; unreadable input yields a fully defaulted report.
func (h *ReportController) Normalize(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxReportBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read body"})
		return
	}
	report := utils.ParseReport(data)
	c.JSON(http.StatusOK, gin.H{
		"report":          report,
		"calorie_percent": utils.SafePercent(report.Total.Calories, report.Recommended.Calories),
	})
}

// GET /api/v1/report/macros?calories=1800
func (h *ReportController) Macros(c *gin.Context) {
	c.JSON(http.StatusOK, utils.CalculateRecommendedMacros(c.Query("calories")))
}
