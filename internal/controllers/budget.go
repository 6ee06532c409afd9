package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/httperrors"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	ez_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetCreate struct {
	CategoryID ez_uuid.UUID    `json:"categoryId" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // Category the budget limits
	Amount     decimal.Decimal `json:"amount" binding:"required" example:"1000"`                                     // Spending limit, must be positive
	Month      uint8           `json:"month" binding:"required,min=1,max=12" example:"3"`                            // Month the budget applies to, 1-indexed
	Year       int             `json:"year" binding:"required" example:"2024"`                                       // Year the budget applies to
}

type BudgetStatusQuery struct {
	CategoryID ez_uuid.UUID `form:"categoryId" binding:"required"` // Category to check
	Month      int          `form:"month" binding:"required"`      // 1-indexed month
	Year       int          `form:"year" binding:"required"`       // Year
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetBudgets)
	r.POST("", co.CreateBudget)

	r.OPTIONS("/status", httputil.OptionsGet)
	r.GET("/status", co.GetBudgetStatus)
}

// @Summary		Create budget
// @Description	Sets the monthly spending limit for a category. There can only be one budget per category and month
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	models.Budget
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		409		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			budget	body		BudgetCreate	true	"Budget"
// @Security		BearerAuth
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var create BudgetCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	if create.CategoryID.UUID == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "the categoryId field must be set")
		return
	}

	// The category must exist and belong to the requesting user
	var category models.Category
	err := co.DB.Where(&models.Category{UserID: userID(c)}).First(&category, "id = ?", create.CategoryID.UUID).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	budget := models.Budget{
		UserID:     userID(c),
		CategoryID: category.ID,
		Amount:     create.Amount,
		Month:      create.Month,
		Year:       create.Year,
	}

	// The unique index over the tuple makes this safe against
	// concurrent creators, no prior existence check needed
	if err := co.DB.Create(&budget).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// @Summary		List budgets
// @Description	Returns the authenticated user's budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.Budget
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Security		BearerAuth
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var budgets []models.Budget

	err := co.DB.Where(&models.Budget{UserID: userID(c)}).Order("year DESC, month DESC").Find(&budgets).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary		Budget status
// @Description	Compares the budget for a category and month with the spend in that category
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	analytics.BudgetStatus
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		404			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			categoryId	query		string	true	"ID of the category"
// @Param			month		query		int		true	"1-indexed month"
// @Param			year		query		int		true	"Year"
// @Security		BearerAuth
// @Router			/v1/budgets/status [get]
func (co Controller) GetBudgetStatus(c *gin.Context) {
	var query BudgetStatusQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		return
	}

	// "required" does not catch an absent UUID since the zero value is
	// a valid struct, check for it explicitly
	if query.CategoryID.UUID == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "the categoryId query parameter must be set")
		return
	}

	status, err := co.Analytics.BudgetStatus(userID(c), query.CategoryID.UUID, query.Month, query.Year)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
