package controllers

import (
	"net/http"
	"time"

	"github.com/1716001473/ZhiJieHealth/services"
	"github.com/1716001473/ZhiJieHealth/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users   *services.UserService
	Tracker *services.TrackerService
}

func NewUserController(users *services.UserService, tracker *services.TrackerService) *UserController {
	return &UserController{Users: users, Tracker: tracker}
}

func (h *UserController) GetHealth(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	out, err := h.Users.HealthSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/v1/user/health
// Body: {"health_profile": {...}, "health_goal": "...", "dietary_preferences": "...", "nickname": "..."}
// The profile object is read loosely so clients may send numbers as strings.
func (h *UserController) UpdateHealth(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	in := services.HealthUpdate{Profile: utils.ParseHealthProfile(body["health_profile"])}
	in.HealthGoal = stringField(body, "health_goal")
	in.DietaryPreferences = stringField(body, "dietary_preferences")
	in.Nickname = stringField(body, "nickname")

	out, err := h.Users.UpdateHealthProfile(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserController) GetTargetCalories(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	target, err := h.Tracker.TargetCalories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	recommended := utils.DefaultRecommended()
	if target.Calories > 0 {
		recommended = utils.CalculateRecommendedMacros(target.Calories)
	}
	c.JSON(http.StatusOK, gin.H{"target": target, "recommended": recommended})
}

// PUT /api/v1/user/target-calories  {"calories": 1800}; 0 clears the override.
func (h *UserController) SetTargetCalories(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var body struct {
		Calories any `json:"calories"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	calories := utils.ToNumber(body.Calories)
	today := time.Now().Format(utils.DateLayout)
	if err := h.Tracker.SetTargetCalories(c.Request.Context(), userID, calories, today); err != nil {
		respondError(c, err)
		return
	}
	h.GetTargetCalories(c)
}

func stringField(body map[string]any, key string) *string {
	v, ok := body[key].(string)
	if !ok {
		return nil
	}
	return &v
}
