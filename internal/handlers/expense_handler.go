package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"kakeibo/internal/calendar"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
	"kakeibo/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the request payload for adding or replacing an expense.
type ExpenseRequest struct {
	Date        *calendar.Date   `json:"date" binding:"required" swaggertype:"string" example:"2026-10-18"`
	Amount      *decimal.Decimal `json:"amount" binding:"required,gte=0" swaggertype:"string" example:"12.50"`
	Description string           `json:"description" binding:"required,max=255"`
	Category    models.Category  `json:"category" binding:"required,kakeibo_category" enums:"needs,wants,culture,unexpected"`
}

func (r ExpenseRequest) toModel() models.NewExpense {
	return models.NewExpense{
		Date:        *r.Date,
		Amount:      *r.Amount,
		Description: r.Description,
		Category:    r.Category,
	}
}

// ListExpensesQuery holds the optional filters of the expense list.
type ListExpensesQuery struct {
	Month    string `form:"month" binding:"omitempty,year_month"`
	Category string `form:"category" binding:"omitempty,kakeibo_category"`
}

// ListExpenses handles listing cached expenses.
// @Summary     List expenses
// @Description Get the cached expenses, newest first, optionally filtered by month and category
// @Tags        expenses
// @Produce     json
// @Param       month     query string false "Month (YYYY-MM)"
// @Param       category  query string false "Category (needs/wants/culture/unexpected)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} services.ExpenseList "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var query ListExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.ExpenseFilter
	if query.Month != "" {
		month, _ := calendar.ParseMonth(query.Month)
		filter.Month = &month
	}
	if query.Category != "" {
		category := models.Category(query.Category)
		filter.Category = &category
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddExpense handles logging a new expense.
// @Summary     Add an expense
// @Description Store a new expense and add it to the cached list
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /expenses [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.AddExpense(c.Request.Context(), req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// RefreshExpenses handles refetching the expense list from the store.
// @Summary     Refresh expenses
// @Description Refetch every expense from the store, replacing the cached list
// @Tags        expenses
// @Produce     json
// @Success     200 {object} map[string][]models.Expense "Refreshed expenses"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /expenses/refresh [post]
func (h *ExpenseHandler) RefreshExpenses(c *gin.Context) {
	expenses, err := h.expenseService.Refresh(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// UpdateExpense handles replacing an expense.
// @Summary     Update expense
// @Description Replace every field of an existing expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete expense
// @Description Delete an expense from the store and the cached list
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
