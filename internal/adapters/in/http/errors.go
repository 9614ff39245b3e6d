package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const msgInternalError = "Internal server error"

// writeError renders err as {"error": message}. Validation failures are 400, a missing
// entity gets notFoundStatus (404 on reads, 400 when it blocks a write), and anything
// else is logged and reported as 500 without details.
func (s *Server) writeError(ctx echo.Context, err error, notFoundStatus int) error {
	switch {
	case isNotFound(err):
		return ctx.JSON(notFoundStatus, servers.Error{Error: err.Error()})
	case isValidation(err):
		return badRequest(ctx, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: msgInternalError})
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}

func isValidation(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, order.ErrOrderIsNotReady)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Error: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{Error: message})
}

// NewHTTPErrorHandler renders errors that escape handlers (routing misses, parameter
// binding, request validation, panics) in the same {"error": message} shape.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, message := http.StatusInternalServerError, msgInternalError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "path", ctx.Path(), "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, servers.Error{Error: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
