package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService  services.BudgetServicer
	insightService services.InsightServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, insightService services.InsightServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, insightService: insightService}
}

// SaveBudgetRequest represents the request payload for saving a month's budget.
// ID is optional: without it the month's existing budget is updated.
type SaveBudgetRequest struct {
	ID         string           `json:"id"`
	Total      *decimal.Decimal `json:"total" binding:"required,gte=0" swaggertype:"string" example:"3000"`
	Needs      *decimal.Decimal `json:"needs" binding:"required,gte=0" swaggertype:"string" example:"1500"`
	Wants      *decimal.Decimal `json:"wants" binding:"required,gte=0" swaggertype:"string" example:"750"`
	Culture    *decimal.Decimal `json:"culture" binding:"required,gte=0" swaggertype:"string" example:"450"`
	Unexpected *decimal.Decimal `json:"unexpected" binding:"required,gte=0" swaggertype:"string" example:"300"`
}

// GetBudget handles retrieving the budget of a month.
// @Summary     Get budget for month
// @Description Get the budget of a month
// @Tags        budgets
// @Produce     json
// @Param       month path string true "Month (YYYY-MM)"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     404 {object} ErrorResponse "No budget for month"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /budgets/{month} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if budget == nil {
		respondWithError(c, apperrors.ErrBudgetNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// SaveBudget handles creating or updating the budget of a month.
// @Summary     Save budget
// @Description Create the month's budget, or update it when one exists. Allocations that do not add up to the total are saved with a warning.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       month   path string            true "Month (YYYY-MM)"
// @Param       request body SaveBudgetRequest true "Budget amounts"
// @Success     200 {object} services.SavedBudget "Budget updated"
// @Success     201 {object} services.SavedBudget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /budgets/{month} [put]
func (h *BudgetHandler) SaveBudget(c *gin.Context) {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	saved, err := h.budgetService.SaveBudget(c.Request.Context(), req.ID, models.BudgetInput{
		Month:      month,
		Total:      *req.Total,
		Needs:      *req.Needs,
		Wants:      *req.Wants,
		Culture:    *req.Culture,
		Unexpected: *req.Unexpected,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if saved.Created {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete budget
// @Description Delete a budget by ID
// @Tags        budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /budgets/id/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.budgetService.DeleteBudget(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// GetRemaining handles the remaining-budget view of a month.
// @Summary     Get remaining budget
// @Description Get budgeted, spent and remaining amounts per category, or the empty-state message when the month has no budget
// @Tags        budgets
// @Produce     json
// @Param       month path string true "Month (YYYY-MM)"
// @Success     200 {object} services.RemainingView "Remaining budget"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /budgets/{month}/remaining [get]
func (h *BudgetHandler) GetRemaining(c *gin.Context) {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.insightService.Remaining(c.Request.Context(), month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
