package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portal-service/internal/services"
	"portal-service/pkg/common"
)

// AdminHandler serves the arbitration queue, balance adjustments, plan
// management and global settings writes.
type AdminHandler struct {
	Arbitration *services.ArbitrationService
	Plans       *services.PlanService
	Settings    *services.SettingsService
}

func NewAdminHandler(arbitration *services.ArbitrationService, plans *services.PlanService, settings *services.SettingsService) *AdminHandler {
	return &AdminHandler{Arbitration: arbitration, Plans: plans, Settings: settings}
}

func (h *AdminHandler) ListProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	profiles, total, err := h.Arbitration.ListProfiles(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	c.JSON(http.StatusOK, common.PaginateResponse(profiles, total, page, limit, "Profiles fetched"))
}

func (h *AdminHandler) ListTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	transactions, total, err := h.Arbitration.ListTransactions(services.ListTransactionsDTO{
		Status: c.Query("status"),
		Kind:   c.Query("kind"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	c.JSON(http.StatusOK, common.PaginateResponse(transactions, total, page, limit, "Transactions fetched"))
}

func transactionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid transaction id", nil, http.StatusBadRequest))
		return 0, false
	}
	return uint(id), true
}

func (h *AdminHandler) Approve(c *gin.Context) {
	id, ok := transactionID(c)
	if !ok {
		return
	}

	trx, err := h.Arbitration.Approve(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(trx, "Transaction approved"))
}

func (h *AdminHandler) Reject(c *gin.Context) {
	id, ok := transactionID(c)
	if !ok {
		return
	}

	trx, err := h.Arbitration.Reject(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(trx, "Transaction rejected"))
}

type adjustRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Kind   string  `json:"kind" binding:"required"`
}

func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user id", nil, http.StatusBadRequest))
		return
	}

	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	trx, err := h.Arbitration.AdjustBalance(uint(userID), req.Amount, req.Kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(trx, "Balance adjusted"))
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.Settings.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(settings, "Settings fetched"))
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req services.UpdateSettingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	settings, err := h.Settings.Update(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(settings, "Settings updated"))
}

type planRequest struct {
	Amount       float64 `json:"amount" binding:"required"`
	DailyReturn  float64 `json:"daily_return" binding:"required"`
	ValidityDays int     `json:"validity_days" binding:"required"`
	Status       string  `json:"status"`
}

func (h *AdminHandler) CreatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	plan, err := h.Plans.Save(services.SavePlanDTO{
		Amount:       req.Amount,
		DailyReturn:  req.DailyReturn,
		ValidityDays: req.ValidityDays,
		Status:       req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(plan, "Plan created"))
}

func (h *AdminHandler) UpdatePlan(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid plan id", nil, http.StatusBadRequest))
		return
	}

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	plan, err := h.Plans.Save(services.SavePlanDTO{
		ID:           uint(planID),
		Amount:       req.Amount,
		DailyReturn:  req.DailyReturn,
		ValidityDays: req.ValidityDays,
		Status:       req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(plan, "Plan updated"))
}
