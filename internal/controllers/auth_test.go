package controllers_test

import (
	"net/http"
	"testing"

	"github.com/fintrack/backend/internal/controllers"
	"github.com/fintrack/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/register", controllers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.RegisterResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotZero(response.UserID)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	register := controllers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	}

	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/register", register)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/register", register)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestRegisterInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"broken JSON", `{ broken`},
		{"empty body", ""},
		{"missing password", `{ "name": "Jane Doe", "email": "jane@doe.dev" }`},
		{"password too short", `{ "name": "Jane Doe", "email": "jane@doe.dev", "password": "short" }`},
		{"invalid email", `{ "name": "Jane Doe", "email": "not-an-email", "password": "superSecret!" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodPost, "/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/register", controllers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var tokens controllers.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &tokens)
	suite.Assert().NotEmpty(tokens.AccessToken)
	suite.Assert().NotEmpty(tokens.RefreshToken)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/register", controllers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
		Email:    "jane@doe.dev",
		Password: "wrongPassword",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

// TestLoginMixedCaseEmail verifies that logging in works with the
// email exactly as it was typed at registration, regardless of casing
// and whitespace.
func (suite *TestSuiteStandard) TestLoginMixedCaseEmail() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/register", controllers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "Jane@Example.COM",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	for _, email := range []string{"Jane@Example.COM", "jane@example.com", " jane@example.com "} {
		recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
			Email:    email,
			Password: "superSecret!",
		})
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	}
}

// TestLoginUnknownEmail verifies that an unknown email is
// indistinguishable from a wrong password.
func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
		Email:    "nobody@example.com",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestRefresh() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/register", controllers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var tokens controllers.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &tokens)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/refresh", controllers.RefreshRequest{
		RefreshToken: tokens.RefreshToken,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var refreshed controllers.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &refreshed)
	suite.Assert().NotEmpty(refreshed.AccessToken)
	suite.Assert().NotEmpty(refreshed.RefreshToken)
}

func (suite *TestSuiteStandard) TestRefreshInvalidToken() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/refresh", controllers.RefreshRequest{
		RefreshToken: "not-a-token",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

// TestRefreshWithAccessToken verifies that an access token cannot be
// used at the refresh endpoint since it is signed with a different
// secret.
func (suite *TestSuiteStandard) TestRefreshWithAccessToken() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/register", controllers.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
		Email:    "jane@doe.dev",
		Password: "superSecret!",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var tokens controllers.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &tokens)

	recorder = test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/refresh", controllers.RefreshRequest{
		RefreshToken: tokens.AccessToken,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLogout() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "/v1/auth/logout", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

// TestAuthenticationRequired verifies that all resource routes reject
// requests without a valid token.
func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/categories"},
		{http.MethodPost, "/v1/categories"},
		{http.MethodGet, "/v1/expenses"},
		{http.MethodPost, "/v1/expenses"},
		{http.MethodGet, "/v1/budgets"},
		{http.MethodGet, "/v1/budgets/status"},
		{http.MethodGet, "/v1/analytics/monthly-summary"},
		{http.MethodGet, "/v1/analytics/dashboard"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := test.Request(suite.co, t, tt.method, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)

			recorder = test.Request(suite.co, t, tt.method, tt.path, "", map[string]string{"Authorization": "Bearer garbage"})
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}
