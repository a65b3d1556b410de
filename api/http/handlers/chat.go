package handlers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-resume-backend/api/http/presenter"
	"ai-resume-backend/pkg/apperror"
	"ai-resume-backend/pkg/chat"
	"ai-resume-backend/pkg/ocr"
)

// ChatHandler serves the chat endpoint and the standalone text extraction
// endpoint. Uploaded files are spooled to the upload dir under a uuid name;
// ownership of /chat uploads passes to the orchestrator, which removes them.
type ChatHandler struct {
	svc        chat.UseCase
	extractor  ocr.Extractor
	uploadDir  string
	production bool
	// Limit uploaded file size (bytes)
	maxBytes int64
}

func NewChatHandler(svc chat.UseCase, extractor ocr.Extractor, uploadDir string, production bool) *ChatHandler {
	return &ChatHandler{svc: svc, extractor: extractor, uploadDir: uploadDir, production: production, maxBytes: 15 << 20} // 15MB
}

// Chat handles POST /chat: multipart threadId + message and/or file.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	in := chat.Input{
		ThreadID: c.FormValue("threadId"),
		Message:  c.FormValue("message"),
	}
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		if fh.Size > h.maxBytes {
			return presenter.Error(c, http.StatusBadRequest, "file too large")
		}
		dst, err := h.saveUpload(c, fh)
		if err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to store uploaded file")
		}
		in.Upload = &chat.Upload{
			Path:     dst,
			MimeType: fh.Header.Get("Content-Type"),
			Filename: fh.Filename,
		}
	}

	res, err := h.svc.Send(c.Context(), in)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"threadId": res.ThreadID,
		"response": fiber.Map{
			"role":    res.Reply.Role,
			"content": res.Reply.Content,
		},
	})
}

// ExtractText handles POST /extract-text: runs OCR only, no thread mutation.
func (h *ChatHandler) ExtractText(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, "file too large")
	}
	dst, err := h.saveUpload(c, fh)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store uploaded file")
	}
	defer func() { _ = os.Remove(dst) }()

	text, err := h.extractor.Extract(c.Context(), dst, fh.Header.Get("Content-Type"))
	if err != nil {
		message := apperror.Message(err)
		if h.production {
			message = "failed to extract text"
		}
		return presenter.Error(c, http.StatusInternalServerError, message)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"text":     text,
		"filename": fh.Filename,
	})
}

func (h *ChatHandler) saveUpload(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(h.uploadDir, uuid.New().String()+filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, dst); err != nil {
		return "", err
	}
	return dst, nil
}
