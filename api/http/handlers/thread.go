package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"ai-resume-backend/api/http/presenter"
	"ai-resume-backend/pkg/chat"
)

// ThreadHandler serves thread listing, message retrieval and deletion.
type ThreadHandler struct {
	svc        chat.UseCase
	production bool
}

func NewThreadHandler(svc chat.UseCase, production bool) *ThreadHandler {
	return &ThreadHandler{svc: svc, production: production}
}

// List handles GET /thread: all threads, most recently updated first.
func (h *ThreadHandler) List(c *fiber.Ctx) error {
	threads, err := h.svc.ListThreads(c.Context())
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}
	return presenter.JSON(c, http.StatusOK, threads)
}

// Get handles GET /thread/:id: the thread's message array.
func (h *ThreadHandler) Get(c *fiber.Ctx) error {
	messages, err := h.svc.GetMessages(c.Context(), c.Params("id"))
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}
	return presenter.JSON(c, http.StatusOK, messages)
}

// Delete handles DELETE /thread/:id: removes the thread and all its messages.
func (h *ThreadHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteThread(c.Context(), c.Params("id")); err != nil {
		return presenter.AppError(c, err, h.production)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Thread deleted successfully"})
}
