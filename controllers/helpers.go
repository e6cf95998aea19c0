package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/1716001473/ZhiJieHealth/services"
	"github.com/1716001473/ZhiJieHealth/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id > 0
}

// dateParam reads ?date=YYYY-MM-DD, defaulting to today.
func dateParam(c *gin.Context) (string, bool) {
	date := c.DefaultQuery("date", time.Now().Format(utils.DateLayout))
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return "", false
	}
	return date, true
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": verrs.Error()})
	case errors.Is(err, services.ErrRecordNotFound), errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrImplausibleProfile):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
