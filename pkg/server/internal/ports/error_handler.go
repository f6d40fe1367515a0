package ports

import (
	"errors"

	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/app"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler returns a Fiber error handler that translates application-level errors
// into HTTP status codes and JSON responses carrying the error slug. Unrecognized
// errors are answered with a generic internal server error.
func ErrorHandler() fiber.ErrorHandler {
	codes := map[app.ErrorType]int{
		app.ErrorTypeAuthorization:     fiber.StatusUnauthorized,
		app.ErrorTypeAccessForbidden:   fiber.StatusForbidden,
		app.ErrorTypeIncorrectInput:    fiber.StatusBadRequest,
		app.ErrorTypeUnprocessable:     fiber.StatusUnprocessableEntity,
		app.ErrorTypeNotFound:          fiber.StatusNotFound,
		app.ErrorTypeLimitExceeded:     fiber.StatusUnprocessableEntity,
		app.ErrorTypeOperationTimeout:  fiber.StatusRequestTimeout,
		app.ErrorTypeProviderFailure:   fiber.StatusInternalServerError,
		app.ErrorTypeRawDataProcessing: fiber.StatusInternalServerError,
	}

	return func(c *fiber.Ctx, err error) error {
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(Error{Message: fiberErr.Message})
		}

		var appErr app.Error
		if !errors.As(err, &appErr) || appErr.IsZero() {
			return c.Status(fiber.StatusInternalServerError).JSON(NewUnhandledErrorTypeResponse())
		}

		code, ok := codes[appErr.ErrorType()]
		if !ok {
			code = fiber.StatusInternalServerError
		}
		return c.Status(code).JSON(Error{Message: appErr.Slug()})
	}
}

// NewUnhandledErrorTypeResponse is the response for errors that match no known ErrorType.
func NewUnhandledErrorTypeResponse() Error {
	return Error{
		Message: "An internal error occurred during processing the request. Please try again later or contact the support team.",
	}
}

// NewRequestBodyParserError wraps a body parsing failure into an application error.
func NewRequestBodyParserError(err error) app.Error {
	return app.NewRawDataProcessingError(
		err.Error(),
		"Unable to process request with given request body. Please verify the request content and try again later.",
	)
}
