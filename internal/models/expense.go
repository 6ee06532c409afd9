package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spend of money.
//
// Expenses are immutable after creation, they can only be deleted.
// The category is referenced by ID, the same scheme Budget uses.
type Expense struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the user the expense belongs to
	User       User            `json:"-"`
	Title      string          `json:"title" example:"Weekly groceries"`                          // What the money was spent on
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"27.47"`          // Amount spent, always positive
	CategoryID uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category the expense is recorded against
	Category   Category        `json:"-"`
	Date       time.Time       `json:"date" example:"2024-03-05T00:00:00Z"` // Calendar date of the expense
}

// BeforeSave validates the amount and normalizes the date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	e.Title = strings.TrimSpace(e.Title)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}
