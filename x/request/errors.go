package request

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/util"
	"github.com/totegamma/charsheet/x/validation"
)

// ErrorHandler is the echo.HTTPErrorHandler of the api.
// Every failure leaves the server as {"status":"error","error":...,"requestId":...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := Classify(err)
	body.RequestID = IDOf(c)

	ctx := c.Request().Context()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(
			ctx, "request failed",
			slog.String("error", err.Error()),
			slog.String("uri", c.Request().RequestURI),
			slog.String("module", "request"),
		)
	} else {
		slog.DebugContext(
			ctx, "request rejected",
			slog.Int("status", status),
			slog.String("error", err.Error()),
			slog.String("module", "request"),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to write error response", slog.String("error", err.Error()))
	}
}

// Classify maps an error to its status code and response body
func Classify(err error) (int, core.ErrorResponse) {
	body := core.ErrorResponse{Status: "error"}

	if details, ok := validation.Details(err); ok {
		body.Error = "validation failed"
		body.Details = details
		return http.StatusUnprocessableEntity, body
	}

	var notFound core.ErrorNotFound
	if errors.As(err, &notFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		body.Error = notFound.Error()
		return http.StatusNotFound, body
	}

	var exists core.ErrorAlreadyExists
	if errors.As(err, &exists) || util.IsUniqueViolation(err) {
		body.Error = exists.Error()
		return http.StatusConflict, body
	}

	var invalid core.ErrorInvalidArgument
	if errors.As(err, &invalid) {
		body.Error = invalid.Error()
		return http.StatusBadRequest, body
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		body.Error = fmt.Sprintf("%v", he.Message)
		return he.Code, body
	}

	body.Error = http.StatusText(http.StatusInternalServerError)
	return http.StatusInternalServerError, body
}
