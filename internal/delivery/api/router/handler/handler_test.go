package handler

import (
	"io"
	"log/slog"

	apimiddleware "marketbot/internal/delivery/api/middleware"
	"marketbot/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the error handling and validation of the API server.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}
