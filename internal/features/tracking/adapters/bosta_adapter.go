package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// ErrShipmentNotFound is returned when the tracking service has no record for the number.
var ErrShipmentNotFound = errors.New("shipment not found")

// maxBodySize caps the decoded response; real payloads are a few kilobytes.
const maxBodySize = 1 << 20

// BostaAdapter fetches shipment records from the Bosta public tracking endpoint.
type BostaAdapter struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewBostaAdapter creates a new BostaAdapter for the given base URL (e.g. https://tracking.bosta.co).
func NewBostaAdapter(baseURL string, client *http.Client) *BostaAdapter {
	return &BostaAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger.Get(),
	}
}

// GetShipment issues GET {baseURL}/shipments/track/{trackingNumber} and decodes the record.
func (a *BostaAdapter) GetShipment(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error) {
	endpoint := fmt.Sprintf("%s/shipments/track/%s", a.baseURL, url.PathEscape(trackingNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrShipmentNotFound, trackingNumber)
		}
		return nil, fmt.Errorf("tracking API returned status: %d", resp.StatusCode)
	}

	var record domain.ShipmentRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to parse tracking response: %w", err)
	}

	a.warnUnknownStates(&record)

	return &record, nil
}

// warnUnknownStates logs event states the page has no translation or class for.
func (a *BostaAdapter) warnUnknownStates(record *domain.ShipmentRecord) {
	for _, event := range record.TransitEvents {
		if !event.State.IsKnown() {
			a.logger.Warn("Unknown transit event state encountered",
				zap.String("tracking_number", string(record.TrackingNumber)),
				zap.String("state", string(event.State)),
				zap.String("hub", event.Hub),
			)
		}
	}
}
