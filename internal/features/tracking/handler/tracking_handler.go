package handler

import (
	"errors"
	"net/url"
	"strings"

	"shipment-tracker/internal/core/i18n"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"
	noticeports "shipment-tracker/internal/features/notices/ports"
	adapter "shipment-tracker/internal/features/tracking/adapters"
	"shipment-tracker/internal/features/tracking/service"
	"shipment-tracker/internal/features/tracking/view"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for the tracking page and its JSON form.
type TrackingHandler struct {
	trackingService *service.TrackingService
	notices         noticeports.NoticeService
	defaultLang     i18n.Language
	metrics         *metrics.Metrics
}

// NewTrackingHandler creates a new TrackingHandler.
// notices and m may be nil.
func NewTrackingHandler(trackingService *service.TrackingService, defaultLang i18n.Language, notices noticeports.NoticeService, m *metrics.Metrics) *TrackingHandler {
	if _, ok := i18n.Parse(string(defaultLang)); !ok {
		defaultLang = i18n.DefaultLanguage
	}
	return &TrackingHandler{
		trackingService: trackingService,
		notices:         notices,
		defaultLang:     defaultLang,
		metrics:         m,
	}
}

// Register mounts the tracking routes on router.
func (h *TrackingHandler) Register(router fiber.Router) {
	router.Get("/", h.ShowPage)
	router.Get("/shipments/track/:number", h.GetShipment)
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ShowPage renders the tracking page for ?tracking-number=.
// Lookup failures are logged and the page is drawn without record sections.
func (h *TrackingHandler) ShowPage(c *fiber.Ctx) error {
	lang := h.language(c)
	number := strings.TrimSpace(c.Query(view.TrackingNumberParam))

	if number == "" && c.Query(view.SearchParam) != "" {
		// The header search form submits "tracking", which the page does not read.
		logger.Get().Warn("Search submitted without tracking-number parameter",
			zap.String("tracking", c.Query(view.SearchParam)),
			zap.String("ray_id", rayID(c)),
		)
	}

	var v *view.TrackingView
	if number != "" {
		tracked, err := h.trackingService.Track(c.Context(), number, lang)
		if err != nil {
			logger.Get().Error("Failed to load shipment for page",
				zap.String("tracking_number", number),
				zap.String("ray_id", rayID(c)),
				zap.Error(err),
			)
		}
		v = tracked
	}
	if v == nil {
		v = h.trackingService.Build(nil, number, lang)
	}
	v.Notice = h.currentNotice(c)

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if err := view.Render(c, v); err != nil {
		logger.Get().Error("Failed to render tracking page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}

	if h.metrics != nil {
		h.metrics.RecordPageView(string(lang))
	}
	return nil
}

// GetShipment godoc
// @Summary Get the tracking view for a shipment
// @Description Fetches the shipment from Bosta and returns the derived tracking view: stepper, severity, header and localized events
// @Tags tracking
// @Produce json
// @Param number path string true "Tracking Number"
// @Param lang query string false "Display language (ar, en)"
// @Success 200 {object} view.TrackingView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /shipments/track/{number} [get]
func (h *TrackingHandler) GetShipment(c *fiber.Ctx) error {
	number, err := url.PathUnescape(c.Params("number"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid tracking number",
			RayID:   rayID(c),
		})
	}
	lang := h.language(c)

	v, err := h.trackingService.Track(c.Context(), number, lang)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrackingNumberRequired):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "tracking number is required",
				RayID:   rayID(c),
			})
		case errors.Is(err, adapter.ErrShipmentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "shipment not found",
				RayID:   rayID(c),
			})
		}

		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Message: "failed to fetch shipment",
			RayID:   rayID(c),
		})
	}

	v.Notice = h.currentNotice(c)
	return c.JSON(v)
}

// language resolves ?lang=, then Accept-Language, then the configured default.
func (h *TrackingHandler) language(c *fiber.Ctx) i18n.Language {
	if lang, ok := i18n.Parse(c.Query(view.LanguageParam)); ok {
		return lang
	}
	return i18n.Negotiate(c.Get(fiber.HeaderAcceptLanguage), h.defaultLang)
}

func (h *TrackingHandler) currentNotice(c *fiber.Ctx) *view.Notice {
	if h.notices == nil {
		return nil
	}

	n, err := h.notices.GetNotice(c.Context())
	if err != nil {
		logger.Get().Warn("Failed to load notice", zap.Error(err))
		return nil
	}
	if n == nil {
		return nil
	}

	return &view.Notice{
		Title:    n.Title,
		Subtitle: n.Subtitle,
		Level:    string(n.Level),
		Color:    n.Level.Color(),
	}
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
