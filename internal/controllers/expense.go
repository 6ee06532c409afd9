package controllers

import (
	"net/http"
	"time"

	"github.com/fintrack/backend/internal/httperrors"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	ez_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseCreate struct {
	Title      string          `json:"title" binding:"required" example:"Weekly groceries"`                          // What the money was spent on
	Amount     decimal.Decimal `json:"amount" binding:"required" example:"27.47"`                                    // Amount spent, must be positive
	CategoryID ez_uuid.UUID    `json:"categoryId" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // Category to record the expense against
	Date       string          `json:"date" binding:"required" example:"2024-03-05"`                                 // Date of the expense, YYYY-MM-DD or RFC3339
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Create expense
// @Description	Records a new expense for the authenticated user
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	models.Expense
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			expense	body		ExpenseCreate	true	"Expense"
// @Security		BearerAuth
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var create ExpenseCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	if create.CategoryID.UUID == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "the categoryId field must be set")
		return
	}

	date, err := parseDate(create.Date)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// The category must exist and belong to the requesting user
	var category models.Category
	err = co.DB.Where(&models.Category{UserID: userID(c)}).First(&category, "id = ?", create.CategoryID.UUID).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	expense := models.Expense{
		UserID:     userID(c),
		Title:      create.Title,
		Amount:     create.Amount,
		CategoryID: category.ID,
		Date:       date,
	}

	if err := co.DB.Create(&expense).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// @Summary		List expenses
// @Description	Returns the authenticated user's expenses, newest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		models.Expense
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Security		BearerAuth
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var expenses []models.Expense

	err := co.DB.Where(&models.Expense{UserID: userID(c)}).Order("date DESC").Find(&expenses).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204	"No Content"
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the expense"
// @Security		BearerAuth
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var expense models.Expense
	err := co.DB.Where(&models.Expense{UserID: userID(c)}).First(&expense, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := co.DB.Delete(&expense).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseDate accepts both a plain date and a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err == nil {
		return date, nil
	}

	return time.Parse(time.RFC3339, s)
}
