package ports

import (
	"context"

	"shipment-tracker/internal/features/tracking/domain"
)

// ShipmentProvider defines the interface for fetching a shipment record from a tracking service.
type ShipmentProvider interface {
	// GetShipment retrieves the record for a tracking number.
	GetShipment(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error)
}
