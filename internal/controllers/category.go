package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/httperrors"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryCreate struct {
	Name string `json:"name" binding:"required" example:"Groceries"` // Name of the category, unique per user
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Create category
// @Description	Creates a new category for the authenticated user
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		409			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			category	body		CategoryCreate	true	"Category"
// @Security		BearerAuth
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var create CategoryCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	category := models.Category{
		UserID: userID(c),
		Name:   create.Name,
	}

	if err := co.DB.Create(&category).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary		List categories
// @Description	Returns the authenticated user's categories, oldest first
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Security		BearerAuth
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var categories []models.Category

	err := co.DB.Where(&models.Category{UserID: userID(c)}).Order("created_at ASC").Find(&categories).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Delete category
// @Description	Deletes a category. Expenses recorded against it keep its name
// @Tags			Categories
// @Success		204	"No Content"
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the category"
// @Security		BearerAuth
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var category models.Category
	err := co.DB.Where(&models.Category{UserID: userID(c)}).First(&category, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := co.DB.Delete(&category).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
