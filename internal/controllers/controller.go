// Package controllers implements the HTTP handlers of the API.
package controllers

import (
	"net/http"

	"github.com/fintrack/backend/internal/analytics"
	"github.com/fintrack/backend/internal/config"
	"github.com/fintrack/backend/internal/httperrors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContextUserID is the context key under which the authentication
// middleware stores the requesting user's ID.
const ContextUserID = "fintrack-user-id"

// Controller holds the dependencies of all handlers. It is constructed
// once at startup and passed down, there is no ambient global state.
type Controller struct {
	DB        *gorm.DB
	Analytics *analytics.Service
	Config    *config.Config
}

// NewController builds a Controller for a database handle.
func NewController(db *gorm.DB, cfg *config.Config) Controller {
	return Controller{
		DB:        db,
		Analytics: analytics.NewService(db),
		Config:    cfg,
	}
}

// userID returns the authenticated user's ID.
//
// The authentication middleware guarantees that it is set on every
// route that reaches a handler.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUserID).(uuid.UUID)
}

// parseID parses a UUID path parameter.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "the specified resource ID is not a valid UUID")
		return uuid.Nil, false
	}

	return id, true
}
