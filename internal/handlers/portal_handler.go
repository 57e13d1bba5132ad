package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portal-service/internal/services"
	"portal-service/pkg/common"
)

// PortalHandler serves the authenticated user-facing flows plus the
// public settings, plans and advice reads.
type PortalHandler struct {
	Auth         *services.AuthService
	Plans        *services.PlanService
	Investments  *services.InvestmentService
	Transactions *services.TransactionService
	Settings     *services.SettingsService
	Advice       *services.AdviceService
}

func NewPortalHandler(
	auth *services.AuthService,
	plans *services.PlanService,
	investments *services.InvestmentService,
	transactions *services.TransactionService,
	settings *services.SettingsService,
	advice *services.AdviceService,
) *PortalHandler {
	return &PortalHandler{
		Auth:         auth,
		Plans:        plans,
		Investments:  investments,
		Transactions: transactions,
		Settings:     settings,
		Advice:       advice,
	}
}

func (h *PortalHandler) GetSettings(c *gin.Context) {
	settings, err := h.Settings.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(settings, "Settings fetched"))
}

func (h *PortalHandler) ListPlans(c *gin.Context) {
	plans, err := h.Plans.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(plans, "Plans fetched"))
}

func (h *PortalHandler) GetAdvice(c *gin.Context) {
	settings, _ := h.Settings.Get()
	tip := h.Advice.GetTip(settings.AppName)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"tip": tip}, "Advice fetched"))
}

func (h *PortalHandler) GetProfile(c *gin.Context) {
	profile, err := h.Auth.GetProfile(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(profile, "Profile fetched"))
}

type setWalletRequest struct {
	Provider string `json:"wallet_provider" binding:"required"`
	Number   string `json:"wallet_number" binding:"required"`
}

func (h *PortalHandler) SetWallet(c *gin.Context) {
	var req setWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	profile, err := h.Auth.SetWallet(currentUserID(c), req.Provider, req.Number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(profile, "Wallet linked"))
}

func (h *PortalHandler) ListInvestments(c *gin.Context) {
	userID := currentUserID(c)

	var err error
	var investments interface{}
	if c.Query("all") == "true" {
		investments, err = h.Investments.ListAll(userID)
	} else {
		investments, err = h.Investments.ListActive(userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(investments, "Investments fetched"))
}

type activateRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

func (h *PortalHandler) ActivatePlan(c *gin.Context) {
	var req activateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	investment, err := h.Investments.Activate(currentUserID(c), req.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(investment, "Plan activated"))
}

func (h *PortalHandler) Claim(c *gin.Context) {
	investmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid investment id", nil, http.StatusBadRequest))
		return
	}

	result, err := h.Investments.Claim(currentUserID(c), uint(investmentID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(result, "Daily return claimed"))
}

type depositRequest struct {
	Amount       float64 `json:"amount" binding:"required"`
	ExternalRef  string  `json:"external_ref"`
	SenderNumber string  `json:"sender_number"`
}

func (h *PortalHandler) RequestDeposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	trx, err := h.Transactions.RequestDeposit(currentUserID(c), req.Amount, req.ExternalRef, req.SenderNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(trx, "Deposit request submitted"))
}

type withdrawRequest struct {
	Amount       float64 `json:"amount" binding:"required"`
	SenderNumber string  `json:"sender_number"`
}

func (h *PortalHandler) RequestWithdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	trx, err := h.Transactions.RequestWithdraw(currentUserID(c), req.Amount, req.SenderNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(trx, "Withdrawal request submitted"))
}

func (h *PortalHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	transactions, total, err := h.Transactions.History(services.HistoryDTO{
		UserID: currentUserID(c),
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
