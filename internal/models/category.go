package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a spending category.
//
// Categories are soft deleted so that expenses recorded against a
// category keep resolving its name after it has been removed. The
// unique index only covers live rows, deleting a category frees its
// name up for reuse.
type Category struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex:category_user_name" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the user the category belongs to
	User   User      `json:"-"`
	Name   string    `json:"name" gorm:"uniqueIndex:category_user_name,where:deleted_at IS NULL" example:"Groceries"` // Name of the category, unique per user
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Expenses returns all expenses recorded against this category.
func (c Category) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.Where(&Expense{CategoryID: c.ID}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
