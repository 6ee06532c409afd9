// Package httperrors maps the error taxonomy to HTTP responses.
package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/fintrack/backend/internal/analytics"
	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is the response body for all error responses.
type HTTPError struct {
	Error string `json:"error" example:"month must be between 1 and 12"`
}

// New writes an HTTPError response on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Error: msg,
	})
}

// Handler writes the response appropriate for err.
//
// Validation problems map to 400, missing resources to 404, uniqueness
// conflicts to 409, credential problems to 401. Everything else is an
// opaque server error that is logged together with the request id.
func Handler(c *gin.Context, err error) {
	switch {
	// Validation errors
	case errors.Is(err, types.ErrMonthInvalid),
		errors.Is(err, types.ErrYearInvalid),
		errors.Is(err, models.ErrAmountNotPositive),
		errors.Is(err, models.ErrMonthOutOfRange):
		New(c, http.StatusBadRequest, err.Error())

	// Missing resources
	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, analytics.ErrBudgetNotSet):
		New(c, http.StatusNotFound, err.Error())

	// Uniqueness conflicts, enforced by the database
	case errors.Is(err, models.ErrEmailNotUnique),
		errors.Is(err, models.ErrCategoryNameNotUnique),
		errors.Is(err, models.ErrBudgetNotUnique):
		New(c, http.StatusConflict, err.Error())

	// Authentication failures
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrTokenInvalid):
		New(c, http.StatusUnauthorized, err.Error())

	// End of file reached when reading the request body
	case errors.Is(err, io.EOF):
		New(c, http.StatusBadRequest, "the request body must not be empty")

	// Time could not be parsed. The error string tells the problem very well
	case reflect.TypeOf(err) == reflect.TypeOf(&time.ParseError{}):
		New(c, http.StatusBadRequest, err.Error())

	// All other errors
	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		New(c, http.StatusInternalServerError, "an error occurred on the server during your request, please contact your server administrator. The request id is '%s'", requestid.Get(c))
	}
}
