package controllers_test

import (
	"net/http"

	"github.com/fintrack/backend/internal/analytics"
	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetMonthlySummary() {
	headers := suite.registerTestUser()
	food := suite.createTestCategory(headers, "Food")
	transport := suite.createTestCategory(headers, "Transport")

	_ = suite.createTestExpense(headers, food, 500, "2024-03-05")
	_ = suite.createTestExpense(headers, food, 300, "2024-03-20")
	_ = suite.createTestExpense(headers, transport, 200, "2024-03-10")

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/monthly-summary?month=3&year=2024", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var summary analytics.MonthlySummary
	test.DecodeResponse(suite.T(), &recorder, &summary)

	suite.Assert().Equal(3, summary.Month)
	suite.Assert().Equal(2024, summary.Year)
	suite.Assert().True(summary.TotalSpent.Equal(decimal.NewFromInt(1000)), "total spent is %s, expected 1000", summary.TotalSpent)
	suite.Assert().Equal(int64(3), summary.TotalTransactions)
}

func (suite *TestSuiteStandard) TestGetMonthlySummaryInvalid() {
	headers := suite.registerTestUser()

	// Missing parameters fail at binding
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/monthly-summary", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// An out of range month fails in the analytics service
	recorder = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/monthly-summary?month=13&year=2024", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCategoryBreakdown() {
	headers := suite.registerTestUser()
	food := suite.createTestCategory(headers, "Food")
	transport := suite.createTestCategory(headers, "Transport")
	_ = suite.createTestCategory(headers, "Entertainment")

	_ = suite.createTestExpense(headers, food, 500, "2024-03-05")
	_ = suite.createTestExpense(headers, food, 300, "2024-03-20")
	_ = suite.createTestExpense(headers, transport, 200, "2024-03-10")

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/category-breakdown?month=3&year=2024", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var breakdown map[string]decimal.Decimal
	test.DecodeResponse(suite.T(), &recorder, &breakdown)

	suite.Require().Len(breakdown, 2)
	suite.Assert().True(breakdown["Food"].Equal(decimal.NewFromInt(800)))
	suite.Assert().True(breakdown["Transport"].Equal(decimal.NewFromInt(200)))
}

func (suite *TestSuiteStandard) TestGetSpendingTrends() {
	headers := suite.registerTestUser()

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/trends", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var trends []analytics.TrendPoint
	test.DecodeResponse(suite.T(), &recorder, &trends)
	suite.Assert().Len(trends, analytics.DefaultTrendMonths)

	recorder = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/trends?months=3", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &trends)
	suite.Assert().Len(trends, 3)
}

// TestGetDashboard verifies that the dashboard is exactly the
// composition of its three parts.
func (suite *TestSuiteStandard) TestGetDashboard() {
	headers := suite.registerTestUser()
	food := suite.createTestCategory(headers, "Food")

	_ = suite.createTestExpense(headers, food, 500, "2024-03-05")

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/dashboard?month=3&year=2024", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var dashboard controllers.Dashboard
	test.DecodeResponse(suite.T(), &recorder, &dashboard)

	suite.Assert().True(dashboard.Summary.TotalSpent.Equal(decimal.NewFromInt(500)))
	suite.Assert().Equal(int64(1), dashboard.Summary.TotalTransactions)
	suite.Require().Contains(dashboard.Breakdown, "Food")
	suite.Assert().True(dashboard.Breakdown["Food"].Equal(decimal.NewFromInt(500)))
	suite.Assert().Len(dashboard.Trends, analytics.DefaultTrendMonths)

	recorder = test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/monthly-summary?month=3&year=2024", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var summary analytics.MonthlySummary
	test.DecodeResponse(suite.T(), &recorder, &summary)
	suite.Assert().True(dashboard.Summary.TotalSpent.Equal(summary.TotalSpent))
}

func (suite *TestSuiteStandard) TestGetDashboardMissingParams() {
	headers := suite.registerTestUser()

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "/v1/analytics/dashboard", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
