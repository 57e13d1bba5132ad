package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-service/internal/services"
	"portal-service/pkg/common"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type credentialsRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	profile, err := h.Auth.Register(req.PhoneNumber, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Auth.IssueToken(profile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(gin.H{
		"profile": profile,
		"token":   token,
	}, "Account created"))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	profile, err := h.Auth.Login(req.PhoneNumber, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Auth.IssueToken(profile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"profile": profile,
		"token":   token,
	}, "Login successful"))
}
