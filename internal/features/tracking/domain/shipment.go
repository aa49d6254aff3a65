package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// StatusCode is a shipment state as reported by the tracking service.
type StatusCode string

const (
	// StatusTicketCreated indicates the shipment was registered by the merchant.
	StatusTicketCreated StatusCode = "TICKET_CREATED"
	// StatusPackageReceived indicates the courier picked up the package.
	StatusPackageReceived StatusCode = "PACKAGE_RECEIVED"
	// StatusOutForDelivery indicates the package left the hub with a courier.
	StatusOutForDelivery StatusCode = "OUT_FOR_DELIVERY"
	// StatusDelivered indicates the package reached the consignee.
	StatusDelivered StatusCode = "DELIVERED"
	// StatusInTransit indicates the package is moving between hubs.
	StatusInTransit StatusCode = "IN_TRANSIT"
	// StatusNotYetShipped indicates the merchant has not handed over the package.
	StatusNotYetShipped StatusCode = "NOT_YET_SHIPPED"
	// StatusWaitingForCustomerAction indicates delivery is blocked on the consignee.
	StatusWaitingForCustomerAction StatusCode = "WAITING_FOR_CUSTOMER_ACTION"
	// StatusCancelled indicates the shipment was cancelled.
	StatusCancelled StatusCode = "CANCELLED"
	// StatusDeliveredToSender indicates the package was returned to the merchant.
	StatusDeliveredToSender StatusCode = "DELIVERED_TO_SENDER"
)

// ShipmentRecord is the tracking payload for a single shipment.
// It is decoded once per lookup and never modified afterwards.
type ShipmentRecord struct {
	// TrackingNumber is the opaque identifier of the shipment.
	TrackingNumber Identifier `json:"TrackingNumber"`
	// Provider is the merchant display name.
	Provider string `json:"provider"`
	// PromisedDate is the date by which delivery is expected.
	PromisedDate Timestamp `json:"PromisedDate"`
	// CurrentStatus is the latest known state.
	CurrentStatus Status `json:"CurrentStatus"`
	// TransitEvents holds one entry per observed state transition, oldest first.
	TransitEvents []TransitEvent `json:"TransitEvents"`
	// DropOffAddress is the delivery address, when the service includes it.
	DropOffAddress *Address `json:"DropOffAddress,omitempty"`
}

// Status is a state with the time it was entered.
type Status struct {
	State     StatusCode `json:"state"`
	Timestamp Timestamp  `json:"timestamp"`
}

// TransitEvent is one recorded state transition.
type TransitEvent struct {
	State     StatusCode `json:"state"`
	Hub       string     `json:"hub,omitempty"`
	Timestamp Timestamp  `json:"timestamp"`
}

// Address is the consignee drop-off location.
type Address struct {
	FirstLine string `json:"firstLine,omitempty"`
	City      Named  `json:"city"`
	Zone      Named  `json:"zone"`
}

// Named wraps the {"name": "..."} objects the tracking service uses for places.
type Named struct {
	Name string `json:"name,omitempty"`
}

// String joins the non-empty address parts.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{a.FirstLine, a.Zone.Name, a.City.Name} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Identifier is a string that also accepts a bare JSON number.
type Identifier string

// UnmarshalJSON accepts "123", 123 and null.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Identifier(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = Identifier(n.String())
	return nil
}

// Timestamp keeps the raw value sent by the tracking service.
// Parsing is deferred so a malformed value never fails decoding.
type Timestamp string

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time parses the timestamp. The second result is false when no known layout matches.
func (ts Timestamp) Time() (time.Time, bool) {
	raw := strings.TrimSpace(string(ts))
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DatePart returns the calendar date portion (text before "T").
func (ts Timestamp) DatePart() string {
	raw := strings.TrimSpace(string(ts))
	date, _, _ := strings.Cut(raw, "T")
	return date
}

// TimeOfDay returns the clock portion without fraction or zone, e.g. "14:05:00".
// The second result is false when the timestamp carries no time component.
func (ts Timestamp) TimeOfDay() (string, bool) {
	_, clock, ok := strings.Cut(strings.TrimSpace(string(ts)), "T")
	if !ok || clock == "" {
		return "", false
	}
	if i := strings.IndexAny(clock, ".Z+-"); i >= 0 {
		clock = clock[:i]
	}
	return clock, clock != ""
}
