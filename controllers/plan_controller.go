package controllers

import (
	"net/http"

	"github.com/1716001473/ZhiJieHealth/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Svc *services.PlanService
}

func NewPlanController(svc *services.PlanService) *PlanController {
	return &PlanController{Svc: svc}
}

func (h *PlanController) Status(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	out, err := h.Svc.Status(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/v1/plan stores a generated plan for the current profile.
func (h *PlanController) Save(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var body struct {
		Title   string `json:"title" binding:"required,max=200"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.Svc.SavePlan(c.Request.Context(), userID, body.Title, body.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}
