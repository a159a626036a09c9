package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kakeibo/internal/models"
)

// CategoryHandler serves the fixed Kakeibo categories for the expense and budget forms.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	Value models.Category `json:"value"`
	Label string          `json:"label"`
	Hint  string          `json:"hint"`
}

// CategoriesResponse wraps the category list.
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ListCategories returns the four categories in display order
// @Summary     List categories
// @Description Get the Kakeibo categories with their labels and budgeting hints
// @Tags        categories
// @Produce     json
// @Success     200 {object} CategoriesResponse
// @Failure     423 {object} ErrorResponse
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	resp := CategoriesResponse{Categories: make([]CategoryResponse, 0, len(models.Categories))}
	for _, cat := range models.Categories {
		resp.Categories = append(resp.Categories, CategoryResponse{Value: cat, Label: cat.Label(), Hint: cat.Hint()})
	}
	c.JSON(http.StatusOK, resp)
}
