package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a monthly spending limit for one category.
//
// The unique index over (user, category, month, year) makes the
// database reject a second budget for the same tuple, so concurrent
// creators cannot slip past an existence check.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_category_month" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the user the budget belongs to
	User       User            `json:"-"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_user_category_month" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category the budget limits
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1000"`            // Spending limit for the month, always positive
	Month      uint8           `json:"month" gorm:"uniqueIndex:budget_user_category_month" example:"3"` // Month the budget applies to, 1-indexed
	Year       int             `json:"year" gorm:"uniqueIndex:budget_user_category_month" example:"2024"` // Year the budget applies to
}

// BeforeSave validates the amount and the month range.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if b.Month < 1 || b.Month > 12 {
		return ErrMonthOutOfRange
	}

	return nil
}
