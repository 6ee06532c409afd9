package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEmailNotUnique        = errors.New("a user with this email already exists")
	ErrCategoryNameNotUnique = errors.New("you already have a category with this name")
	ErrBudgetNotUnique       = errors.New("you already have a budget for this category and month")

	ErrAmountNotPositive = errors.New("the amount must be positive")
	ErrMonthOutOfRange   = errors.New("the month must be between 1 and 12")
)
