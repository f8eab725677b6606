package handlers

import (
	"errors"

	"catalog/pkg/e"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// errorStatuses maps domain error kinds to HTTP statuses.
var errorStatuses = []struct {
	kind   error
	status int
}{
	{e.ErrNotFound, fiber.StatusNotFound},
	{e.ErrConflict, fiber.StatusConflict},
	{e.ErrValidation, fiber.StatusBadRequest},
}

// StatusFor returns the HTTP status for err; unknown errors are 500.
func StatusFor(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.kind) {
			return mapping.status
		}
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// NewErrorHandler renders every error returned by a handler as {"message": ...}.
// Internal failures are logged and reported without their cause.
func NewErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := StatusFor(err)
		message := err.Error()
		if status == fiber.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
			}).Error("unhandled error")
			message = "Internal server error"
		}
		return c.Status(status).JSON(fiber.Map{
			"message": message,
		})
	}
}
