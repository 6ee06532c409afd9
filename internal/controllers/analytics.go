package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/analytics"
	"github.com/fintrack/backend/internal/httperrors"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type MonthYearQuery struct {
	Month int `form:"month" binding:"required"` // 1-indexed month
	Year  int `form:"year" binding:"required"`  // Year
}

type TrendsQuery struct {
	Months int `form:"months"` // Number of months, defaults to 6
}

// Dashboard combines the analytics for one month into a single response.
type Dashboard struct {
	Summary   analytics.MonthlySummary   `json:"summary"`   // Totals for the month
	Breakdown map[string]decimal.Decimal `json:"breakdown"` // Spend per category for the month
	Trends    []analytics.TrendPoint     `json:"trends"`    // Spend per month, ending with the current month
}

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly-summary", httputil.OptionsGet)
	r.GET("/monthly-summary", co.GetMonthlySummary)

	r.OPTIONS("/category-breakdown", httputil.OptionsGet)
	r.GET("/category-breakdown", co.GetCategoryBreakdown)

	r.OPTIONS("/trends", httputil.OptionsGet)
	r.GET("/trends", co.GetSpendingTrends)

	r.OPTIONS("/dashboard", httputil.OptionsGet)
	r.GET("/dashboard", co.GetDashboard)
}

// @Summary		Monthly summary
// @Description	Returns the total spend and transaction count for one month
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	analytics.MonthlySummary
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			month	query		int	true	"1-indexed month"
// @Param			year	query		int	true	"Year"
// @Security		BearerAuth
// @Router			/v1/analytics/monthly-summary [get]
func (co Controller) GetMonthlySummary(c *gin.Context) {
	var query MonthYearQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		return
	}

	summary, err := co.Analytics.MonthlySummary(userID(c), query.Month, query.Year)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary		Category breakdown
// @Description	Returns the spend per category for one month. Categories without spend are absent
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	map[string]decimal.Decimal
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			month	query		int	true	"1-indexed month"
// @Param			year	query		int	true	"Year"
// @Security		BearerAuth
// @Router			/v1/analytics/category-breakdown [get]
func (co Controller) GetCategoryBreakdown(c *gin.Context) {
	var query MonthYearQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		return
	}

	breakdown, err := co.Analytics.CategoryBreakdown(userID(c), query.Month, query.Year)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// @Summary		Spending trends
// @Description	Returns the spend per month for the requested number of months, oldest first, ending with the current month
// @Tags			Analytics
// @Produce		json
// @Success		200		{array}		analytics.TrendPoint
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			months	query		int	false	"Number of months, defaults to 6"
// @Security		BearerAuth
// @Router			/v1/analytics/trends [get]
func (co Controller) GetSpendingTrends(c *gin.Context) {
	var query TrendsQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		return
	}

	trends, err := co.Analytics.Trends(userID(c), query.Months)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}

// @Summary		Dashboard
// @Description	Returns summary, breakdown and trends for one month in a single response
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	Dashboard
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			month	query		int	true	"1-indexed month"
// @Param			year	query		int	true	"Year"
// @Security		BearerAuth
// @Router			/v1/analytics/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	var query MonthYearQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		return
	}

	user := userID(c)

	// The three reads are independent of each other, issue them
	// concurrently and join
	var dashboard Dashboard
	var g errgroup.Group

	g.Go(func() error {
		summary, err := co.Analytics.MonthlySummary(user, query.Month, query.Year)
		dashboard.Summary = summary
		return err
	})

	g.Go(func() error {
		breakdown, err := co.Analytics.CategoryBreakdown(user, query.Month, query.Year)
		dashboard.Breakdown = breakdown
		return err
	})

	g.Go(func() error {
		trends, err := co.Analytics.Trends(user, analytics.DefaultTrendMonths)
		dashboard.Trends = trends
		return err
	})

	if err := g.Wait(); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
