package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portal-service/internal/services"
	"portal-service/pkg/common"
)

const (
	ctxUserID  = "userID"
	ctxIsAdmin = "isAdmin"
)

// AuthRequired validates the bearer token and stores the session identity
// on the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse("Missing bearer token", nil, http.StatusUnauthorized))
			return
		}

		claims, err := services.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				common.NewErrorResponse("Invalid or expired token", nil, http.StatusUnauthorized))
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// AdminRequired rejects sessions without the admin claim. Must run after
// AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				common.NewErrorResponse("Admin access required", nil, http.StatusForbidden))
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// respondError maps service sentinels to HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInsufficientFunds):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrAuthFailure):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateAccount),
		errors.Is(err, services.ErrInvalidState):
		status = http.StatusConflict
	}
	c.JSON(status, common.NewErrorResponse(err.Error(), nil, status))
}
