package presenter

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"ai-resume-backend/pkg/apperror"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

// AppError maps a typed error to its status code. In production, 5xx-class
// messages (including upstream provider failures) are replaced with a
// generic string; client errors keep their message.
func AppError(c *fiber.Ctx, err error, production bool) error {
	status := apperror.HTTPStatus(err)
	message := apperror.Message(err)
	switch {
	case production && status == http.StatusBadGateway:
		message = "upstream service error"
	case production && status >= http.StatusInternalServerError:
		message = "internal server error"
	}
	return Error(c, status, message)
}
