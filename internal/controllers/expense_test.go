package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	headers := suite.registerTestUser()
	category := suite.createTestCategory(headers, "Groceries")

	expense := suite.createTestExpense(headers, category, 27.47, "2024-03-05")
	suite.Assert().True(expense.Amount.Equal(decimal.NewFromFloat(27.47)))
	suite.Assert().Equal(category.ID, expense.CategoryID)
	suite.Assert().Equal(2024, expense.Date.Year())
}

// TestCreateExpenseRFC3339 verifies that a full timestamp is accepted
// as the expense date.
func (suite *TestSuiteStandard) TestCreateExpenseRFC3339() {
	headers := suite.registerTestUser()
	category := suite.createTestCategory(headers, "Groceries")

	expense := suite.createTestExpense(headers, category, 10, "2024-03-05T14:30:00Z")
	suite.Assert().Equal(14, expense.Date.Hour())
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	headers := suite.registerTestUser()
	category := suite.createTestCategory(headers, "Groceries")

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"broken JSON", `{ broken`, http.StatusBadRequest},
		{"missing title", fmt.Sprintf(`{ "amount": 10, "categoryId": %q, "date": "2024-03-05" }`, category.ID), http.StatusBadRequest},
		{"missing categoryId", `{ "title": "Test", "amount": 10, "date": "2024-03-05" }`, http.StatusBadRequest},
		{"invalid date", fmt.Sprintf(`{ "title": "Test", "amount": 10, "categoryId": %q, "date": "03/05/2024" }`, category.ID), http.StatusBadRequest},
		{"negative amount", fmt.Sprintf(`{ "title": "Test", "amount": -10, "categoryId": %q, "date": "2024-03-05" }`, category.ID), http.StatusBadRequest},
		{"unknown category", fmt.Sprintf(`{ "title": "Test", "amount": 10, "categoryId": %q, "date": "2024-03-05" }`, uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodPost, "/v1/expenses", tt.body, headers)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCreateExpenseOtherUsersCategory verifies that recording an
// expense against another user's category reads like the category does
// not exist.
func (suite *TestSuiteStandard) TestCreateExpenseOtherUsersCategory() {
	headers := suite.registerTestUser()
	category := suite.createTestCategory(headers, "Groceries")

	otherHeaders := suite.registerTestUser()
	body := fmt.Sprintf(`{ "title": "Test", "amount": 10, "categoryId": %q, "date": "2024-03-05" }`, category.ID)

	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/expenses", body, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	headers := suite.registerTestUser()
	category := suite.createTestCategory(headers, "Groceries")

	_ = suite.createTestExpense(headers, category, 10, "2024-03-05")
	_ = suite.createTestExpense(headers, category, 20, "2024-03-20")
	_ = suite.createTestExpense(headers, category, 30, "2024-03-10")

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/expenses", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expenses)

	suite.Require().Len(expenses, 3)

	// Newest first
	suite.Assert().True(expenses[0].Amount.Equal(decimal.NewFromInt(20)))
	suite.Assert().True(expenses[1].Amount.Equal(decimal.NewFromInt(30)))
	suite.Assert().True(expenses[2].Amount.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestGetExpensesUserIsolation() {
	headers := suite.registerTestUser()
	category := suite.createTestCategory(headers, "Groceries")
	_ = suite.createTestExpense(headers, category, 10, "2024-03-05")

	otherHeaders := suite.registerTestUser()
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/expenses", "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expenses)
	suite.Assert().Empty(expenses)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	headers := suite.registerTestUser()
	category := suite.createTestCategory(headers, "Groceries")
	expense := suite.createTestExpense(headers, category, 10, "2024-03-05")

	recorder := test.Request(suite.co, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", expense.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.co, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", expense.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpenseNotFound() {
	headers := suite.registerTestUser()

	recorder := test.Request(suite.co, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", uuid.New()), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
