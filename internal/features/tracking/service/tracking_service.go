package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-tracker/internal/core/i18n"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"
	"shipment-tracker/internal/features/tracking/domain"
	"shipment-tracker/internal/features/tracking/ports"
	"shipment-tracker/internal/features/tracking/view"

	"go.uber.org/zap"
)

// ErrTrackingNumberRequired is returned when a lookup is asked for an empty number.
var ErrTrackingNumberRequired = errors.New("tracking number is required")

// Options configures a TrackingService.
type Options struct {
	// Timeout bounds each fetch. Zero means the caller's context alone.
	Timeout time.Duration
	// Location is the display time zone for rendered views.
	Location *time.Location
	// HelpURL is linked from the help call-to-action.
	HelpURL string
}

// TrackingService fetches shipment records and derives tracking views from them.
type TrackingService struct {
	provider ports.ShipmentProvider
	opts     Options
	metrics  *metrics.Metrics
}

// NewTrackingService creates a new TrackingService. m may be nil.
func NewTrackingService(provider ports.ShipmentProvider, opts Options, m *metrics.Metrics) *TrackingService {
	return &TrackingService{
		provider: provider,
		opts:     opts,
		metrics:  m,
	}
}

// Lookup fetches the record for trackingNumber.
func (s *TrackingService) Lookup(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrTrackingNumberRequired
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	record, err := s.provider.GetShipment(ctx, trackingNumber)
	if s.metrics != nil {
		s.metrics.RecordLookup(err == nil, time.Since(start))
	}
	if err != nil {
		logger.Get().Error("Shipment lookup failed",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get shipment from provider: %w", err)
	}

	return record, nil
}

// Track fetches the record for trackingNumber and builds its view in lang.
func (s *TrackingService) Track(ctx context.Context, trackingNumber string, lang i18n.Language) (*view.TrackingView, error) {
	record, err := s.Lookup(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	v := s.Build(record, trackingNumber, lang)
	s.observe(record, v)

	return v, nil
}

// Build derives a view without fetching. A nil record gives the empty page.
func (s *TrackingService) Build(record *domain.ShipmentRecord, trackingNumber string, lang i18n.Language) *view.TrackingView {
	return view.Build(record, strings.TrimSpace(trackingNumber), view.Options{
		Language: lang,
		Location: s.opts.Location,
		HelpURL:  s.opts.HelpURL,
	})
}

// observe reports records the page can only partially classify.
func (s *TrackingService) observe(record *domain.ShipmentRecord, v *view.TrackingView) {
	l := logger.Get()

	if v.Header != nil && v.Header.Severity == domain.SeverityUnknown {
		l.Warn("Current state has no severity class",
			zap.String("tracking_number", string(record.TrackingNumber)),
			zap.String("state", string(record.CurrentStatus.State)),
		)
		if s.metrics != nil {
			s.metrics.RecordUnknownState(string(record.CurrentStatus.State))
		}
	}

	if v.Stepper.Index == domain.NoActiveStep {
		l.Info("No milestone reached yet",
			zap.String("tracking_number", string(record.TrackingNumber)),
			zap.Int("events", len(record.TransitEvents)),
		)
		if s.metrics != nil {
			s.metrics.RecordNoMilestone()
		}
	}
}
