// Package httputil provides helpers for request handling.
package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/fintrack/backend/internal/httperrors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			e := errors.New("the request body must not be empty")
			httperrors.New(c, http.StatusBadRequest, e.Error())
			return e
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		e := errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
		httperrors.New(c, http.StatusBadRequest, e.Error())
		return e
	}

	return nil
}

// BindQuery binds the query string to the struct passed in the interface.
func BindQuery(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindQuery(data); err != nil {
		e := errors.New("the query string contains unparseable data. Please check the values")
		httperrors.New(c, http.StatusBadRequest, e.Error())
		return e
	}

	return nil
}
