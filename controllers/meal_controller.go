package controllers

import (
	"net/http"
	"strconv"

	"github.com/1716001473/ZhiJieHealth/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc     *services.MealService
	Tracker *services.TrackerService
}

func NewMealController(svc *services.MealService, tracker *services.TrackerService) *MealController {
	return &MealController{Svc: svc, Tracker: tracker}
}

// GET /api/v1/meal/daily-report?date=YYYY-MM-DD
func (h *MealController) DailyReport(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	report, err := h.Svc.DailyReport(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	progress, err := h.Tracker.Progress(c.Request.Context(), userID, report)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report, "progress": progress})
}

// GET /api/v1/meal/records?date=YYYY-MM-DD&meal_type=lunch
func (h *MealController) ListRecords(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	records, err := h.Svc.ListRecords(c.Request.Context(), userID, date, c.Query("meal_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *MealController) CreateRecord(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var body services.MealRecordInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.Svc.CreateRecord(c.Request.Context(), userID, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *MealController) UpdateRecord(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var body services.MealRecordUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.Svc.UpdateRecord(c.Request.Context(), userID, uint(id), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *MealController) DeleteRecord(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.DeleteRecord(c.Request.Context(), userID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
