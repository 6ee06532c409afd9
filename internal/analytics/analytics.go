// Package analytics computes derived financial facts from raw expense
// records: monthly totals, category breakdowns, spending trends and
// budget-vs-spend status.
//
// All computations are read-only and recompute from the database on
// every call, so they can run concurrently without coordination.
package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrBudgetNotSet is returned when no budget exists for the requested
// (category, month, year) tuple.
var ErrBudgetNotSet = errors.New("budget not set for this category and month")

const (
	// DefaultTrendMonths is the number of months a trend spans when the
	// caller does not specify one.
	DefaultTrendMonths = 6

	// maxTrendMonths caps the window count for a single trend request.
	maxTrendMonths = 60
)

// Service computes analytics for one database handle.
type Service struct {
	db *gorm.DB
}

// NewService returns a Service reading from db.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// MonthlySummary is the total spend and transaction count for one month.
type MonthlySummary struct {
	Month             int             `json:"month" example:"3"`                // 1-indexed month the summary is for
	Year              int             `json:"year" example:"2024"`              // Year the summary is for
	TotalSpent        decimal.Decimal `json:"totalSpent" example:"1000"`        // Sum of all expense amounts in the month
	TotalTransactions int64           `json:"totalTransactions" example:"3"`    // Number of expenses in the month
}

// TrendPoint is the total spend for one month of a trend.
type TrendPoint struct {
	Month      int             `json:"month" example:"3"`         // 1-indexed month
	Year       int             `json:"year" example:"2024"`       // Year
	TotalSpent decimal.Decimal `json:"totalSpent" example:"800"`  // Sum of all expense amounts in the month
}

// BudgetStatus compares a monthly budget with the spend in its category.
type BudgetStatus struct {
	Budget     decimal.Decimal `json:"budget" example:"1000"`    // The budgeted amount
	Spent      decimal.Decimal `json:"spent" example:"1200"`     // Spend in the budget's category for the month
	Remaining  decimal.Decimal `json:"remaining" example:"-200"` // Budget minus spend, negative when over budget
	OverBudget bool            `json:"overBudget" example:"true"` // Whether more was spent than budgeted
}

// MonthlySummary sums all expenses of the user within the month.
//
// Months with no expenses yield a zero sum and a zero count.
func (s *Service) MonthlySummary(userID uuid.UUID, month, year int) (MonthlySummary, error) {
	window, err := types.ParseMonth(year, month)
	if err != nil {
		return MonthlySummary{}, err
	}

	sum, count, err := s.windowSum(userID, uuid.Nil, window)
	if err != nil {
		return MonthlySummary{}, err
	}

	return MonthlySummary{
		Month:             month,
		Year:              year,
		TotalSpent:        sum,
		TotalTransactions: count,
	}, nil
}

// CategoryBreakdown groups the user's expenses within the month by
// category name and sums the amounts per group.
//
// Categories without expenses in the month are absent from the result,
// they are never present with a zero value. Soft deleted categories
// still resolve, so historical expenses always appear under the name
// their category had.
func (s *Service) CategoryBreakdown(userID uuid.UUID, month, year int) (map[string]decimal.Decimal, error) {
	window, err := types.ParseMonth(year, month)
	if err != nil {
		return nil, err
	}

	var groups []struct {
		Name string
		Sum  decimal.Decimal
	}

	err = s.expensesInWindow(userID, uuid.Nil, window).
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Select("categories.name AS name, SUM(expenses.amount) AS sum").
		Group("categories.name").
		Scan(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("getting category breakdown for user %s failed: %w", userID, err)
	}

	breakdown := make(map[string]decimal.Decimal, len(groups))
	for _, group := range groups {
		breakdown[group.Name] = group.Sum
	}

	return breakdown, nil
}

// Trends computes the monthly spend totals for the monthsBack calendar
// months ending with the current one, oldest first.
//
// The sequence is anchored on the wall clock at call time, calling
// again later may shift the window. Values below 1 fall back to
// DefaultTrendMonths.
func (s *Service) Trends(userID uuid.UUID, monthsBack int) ([]TrendPoint, error) {
	if monthsBack < 1 {
		monthsBack = DefaultTrendMonths
	}

	if monthsBack > maxTrendMonths {
		monthsBack = maxTrendMonths
	}

	current := types.MonthOf(time.Now().UTC())

	points := make([]TrendPoint, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		window := current.AddDate(0, -i)

		sum, _, err := s.windowSum(userID, uuid.Nil, window)
		if err != nil {
			return nil, err
		}

		points = append(points, TrendPoint{
			Month:      window.Number(),
			Year:       window.Year(),
			TotalSpent: sum,
		})
	}

	return points, nil
}

// BudgetStatus looks up the budget for the tuple and compares it with
// the spend in the budget's category over the same month.
func (s *Service) BudgetStatus(userID, categoryID uuid.UUID, month, year int) (BudgetStatus, error) {
	window, err := types.ParseMonth(year, month)
	if err != nil {
		return BudgetStatus{}, err
	}

	var budget models.Budget
	err = s.db.Where(&models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      uint8(month),
		Year:       year,
	}).First(&budget).Error
	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return BudgetStatus{}, ErrBudgetNotSet
	}
	if err != nil {
		return BudgetStatus{}, fmt.Errorf("getting budget for user %s failed: %w", userID, err)
	}

	// Spend only counts the budget's own category
	spent, _, err := s.windowSum(userID, categoryID, window)
	if err != nil {
		return BudgetStatus{}, err
	}

	remaining := budget.Amount.Sub(spent)

	return BudgetStatus{
		Budget:     budget.Amount,
		Spent:      spent,
		Remaining:  remaining,
		OverBudget: remaining.IsNegative(),
	}, nil
}

// expensesInWindow starts a query over the user's expenses within the
// month's half-open window, optionally restricted to one category.
func (s *Service) expensesInWindow(userID, categoryID uuid.UUID, window types.Month) *gorm.DB {
	start, end := window.Bounds()

	q := s.db.Model(&models.Expense{}).
		Where("expenses.user_id = ? AND expenses.date >= ? AND expenses.date < ?", userID, start, end)

	if categoryID != uuid.Nil {
		q = q.Where("expenses.category_id = ?", categoryID)
	}

	return q
}

// windowSum returns the expense sum and count for the user within the
// month. A missing SUM (no rows) counts as zero.
//
// Both aggregates come from one statement so they always describe the
// same set of rows, a write between two statements cannot make them
// disagree.
func (s *Service) windowSum(userID, categoryID uuid.UUID, window types.Month) (decimal.Decimal, int64, error) {
	var count int64
	var sum decimal.NullDecimal

	err := s.expensesInWindow(userID, categoryID, window).
		Select("COUNT(*), SUM(amount)").
		Row().
		Scan(&count, &sum)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("aggregating expenses for user %s failed: %w", userID, err)
	}

	return sum.Decimal, count, nil
}
