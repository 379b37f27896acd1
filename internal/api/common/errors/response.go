package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
)

// StatusCode maps err to the HTTP status the API answers with.
func StatusCode(err error) int {
	var (
		validationErr ValidationError
		notFoundErr   NotFoundError
		providerErr   ProviderError
	)

	switch {
	case stderrors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case stderrors.Is(err, ErrNoData), stderrors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case stderrors.As(err, &providerErr):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// Response writes the fail body used by every API route.
func Response(c *fiber.Ctx, err error) error {
	return c.Status(StatusCode(err)).JSON(&fiber.Map{
		"status":  "fail",
		"message": err.Error(),
	})
}
