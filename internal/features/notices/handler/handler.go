package handler

import (
	"errors"
	"net/http"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/notices/domain"
	"shipment-tracker/internal/features/notices/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NoticeHandler handles HTTP requests for the operator notice.
type NoticeHandler struct {
	service ports.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(service ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		service: service,
	}
}

// Register mounts the read-only notice route on the public router.
func (h *NoticeHandler) Register(router fiber.Router) {
	router.Get("/notice", h.GetNotice)
}

// RegisterAdmin mounts the read and write notice routes on the operator router.
func (h *NoticeHandler) RegisterAdmin(router fiber.Router) {
	router.Get("/notice", h.GetNotice)
	router.Post("/notice", h.SetNotice)
	router.Delete("/notice", h.RemoveNotice)
}

// CreateNoticeRequest represents the request body for setting a notice.
type CreateNoticeRequest struct {
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	Level    domain.NoticeLevel `json:"level"`
	Duration int                `json:"duration"` // Seconds
}

// SetNotice handles POST /notice on the operator listener.
// @Summary Set the operator notice
// @Description Creates or replaces the notice shown above the tracking page. Served on ADMIN_PORT only.
// @Tags Notice
// @Accept json
// @Produce json
// @Param notice body CreateNoticeRequest true "Notice details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /notice [post]
func (h *NoticeHandler) SetNotice(c *fiber.Ctx) error {
	var req CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.Context()
	if err := h.service.SetNotice(ctx, req.Title, req.Subtitle, req.Level, req.Duration); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidNoticeLevel):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid notice level. Must be INFO, WARNING, or DANGER",
			})
		case errors.Is(err, domain.ErrNoticeTitleRequired), errors.Is(err, domain.ErrInvalidDuration):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to set notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Notice set successfully",
	})
}

// GetNotice handles GET /notice.
// @Summary Get the operator notice
// @Description Retrieves the notice currently shown above the tracking page.
// @Tags Notice
// @Produce json
// @Success 200 {object} domain.Notice
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /notice [get]
func (h *NoticeHandler) GetNotice(c *fiber.Ctx) error {
	ctx := c.Context()
	notice, err := h.service.GetNotice(ctx)
	if err != nil {
		logger.Get().Error("Failed to get notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if notice == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active notice",
		})
	}

	return c.Status(http.StatusOK).JSON(notice)
}

// RemoveNotice handles DELETE /notice on the operator listener.
// @Summary Remove the operator notice
// @Description Removes the notice shown above the tracking page. Served on ADMIN_PORT only.
// @Tags Notice
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /notice [delete]
func (h *NoticeHandler) RemoveNotice(c *fiber.Ctx) error {
	ctx := c.Context()
	if err := h.service.RemoveNotice(ctx); err != nil {
		logger.Get().Error("Failed to remove notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Notice removed successfully",
	})
}
