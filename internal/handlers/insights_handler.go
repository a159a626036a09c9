package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kakeibo/internal/calendar"
	"kakeibo/internal/insights"
	"kakeibo/internal/services"
)

// TrendResponse represents the spending trend chart.
type TrendResponse struct {
	Trend []insights.TrendPoint `json:"trend"`
}

// InsightsHandler handles the derived spending views.
type InsightsHandler struct {
	insightService services.InsightServicer
	now            func() time.Time
}

// NewInsightsHandler creates a new InsightsHandler. now defaults to time.Now.
func NewInsightsHandler(insightService services.InsightServicer, now func() time.Time) *InsightsHandler {
	if now == nil {
		now = time.Now
	}
	return &InsightsHandler{insightService: insightService, now: now}
}

// GetInsights handles the monthly insights tab.
// @Summary     Get insights
// @Description Get the monthly summary, spending trend and reflection questions. Without expenses the summary carries a message instead of statistics.
// @Tags        insights
// @Produce     json
// @Param       month  query string false "Month (YYYY-MM, default current month)"
// @Param       months query int    false "Trend length in months (default 6, max 24)"
// @Success     200 {object} services.Insights "Insights"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /insights [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	month, err := parseMonthQuery(c, calendar.DateOf(h.now()))
	if err != nil {
		respondWithError(c, err)
		return
	}
	months, err := parseMonthsQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.insightService.Insights(c.Request.Context(), month, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTrend handles the spending trend chart.
// @Summary     Get spending trend
// @Description Get the total spend per month for the months ending with the current one
// @Tags        insights
// @Produce     json
// @Param       months query int false "Trend length in months (default 6, max 24)"
// @Success     200 {object} TrendResponse "Trend"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     423 {object} ErrorResponse "Locked"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /insights/trend [get]
func (h *InsightsHandler) GetTrend(c *gin.Context) {
	months, err := parseMonthsQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.insightService.Trend(c.Request.Context(), months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Trend: points})
}
