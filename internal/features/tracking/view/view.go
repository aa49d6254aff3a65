// Package view turns a shipment record into everything the tracking page
// shows. Build is pure: the same record, language and options always give the
// same view.
package view

import (
	"net/url"
	"time"

	"shipment-tracker/internal/core/i18n"
	"shipment-tracker/internal/features/tracking/domain"
)

// Query keys used by the page.
const (
	// TrackingNumberParam is read by the tracking page.
	TrackingNumberParam = "tracking-number"
	// SearchParam is submitted by the header search form.
	// It differs from TrackingNumberParam; see the page handler.
	SearchParam = "tracking"
	// LanguageParam selects the display language.
	LanguageParam = "lang"
)

// StepStatus is the drawing state of one stepper stage.
type StepStatus string

const (
	StepComplete   StepStatus = "complete"
	StepActive     StepStatus = "active"
	StepIncomplete StepStatus = "incomplete"
)

// Options carries the page settings that are not part of the record.
type Options struct {
	// Language selects translations, direction and number formatting.
	Language i18n.Language
	// Location is the zone for the header's last update and promised date.
	// Event rows show the clock as recorded. Nil means UTC.
	Location *time.Location
	// HelpURL is the target of the "report a problem" button.
	HelpURL string
}

// TrackingView is the fully derived tracking page.
type TrackingView struct {
	Lang      i18n.Language `json:"lang"`
	Dir       string        `json:"dir"`
	HasRecord bool          `json:"has_record"`
	Header    *Header       `json:"header,omitempty"`
	Stepper   Stepper       `json:"stepper"`
	Events    EventTable    `json:"events"`
	Address   string        `json:"delivery_address,omitempty"`
	Help      Help          `json:"help"`
	Notice    *Notice       `json:"notice,omitempty"`
	Nav       Nav           `json:"-"`
	Labels    Labels        `json:"-"`
}

// Header is the summary block above the stepper.
type Header struct {
	TrackingNumber string            `json:"tracking_number"`
	State          domain.StatusCode `json:"state"`
	StateText      string            `json:"state_text"`
	Severity       domain.Severity   `json:"severity"`
	Color          string            `json:"color"`
	LastUpdate     string            `json:"last_update"`
	Provider       string            `json:"provider"`
	PromisedDate   string            `json:"promised_date"`
}

// Stepper is the four-stage progress indicator.
type Stepper struct {
	// Index is the raw ActiveStepIndex result (-1 when no milestone was reached).
	Index int `json:"index"`
	// DisplayIndex is the stage drawn as active.
	DisplayIndex int             `json:"display_index"`
	Severity     domain.Severity `json:"severity"`
	Scheme       string          `json:"scheme"`
	Color        string          `json:"color"`
	Steps        []Step          `json:"steps"`
}

// Step is one stepper stage.
type Step struct {
	State   domain.StatusCode `json:"state"`
	Title   string            `json:"title"`
	Status  StepStatus        `json:"status"`
	Reached bool              `json:"reached"`
}

// EventTable is the transit history, with cells ordered for the language.
type EventTable struct {
	Columns []string   `json:"columns"`
	Rows    []EventRow `json:"rows"`
}

// EventRow is one transit event.
type EventRow struct {
	State   domain.StatusCode `json:"state"`
	Hub     string            `json:"hub"`
	Date    string            `json:"date"`
	Time    string            `json:"time"`
	Details string            `json:"details"`
	Cells   []string          `json:"-"`
}

// Help is the call-to-action box.
type Help struct {
	Question string `json:"question"`
	Action   string `json:"action"`
	URL      string `json:"url"`
}

// Notice is an operator message shown above the page.
type Notice struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Level    string `json:"level"`
	Color    string `json:"color"`
}

// Nav holds the header links, search form and language toggle.
type Nav struct {
	Home          string
	Pricing       string
	ContactSales  string
	SignIn        string
	TrackShipment string
	SearchHint    string
	SearchParam   string
	ToggleLabel   string
	ToggleURL     string
}

// Labels are the translated static texts of the page.
type Labels struct {
	Title           string
	TrackingNumber  string
	LastUpdate      string
	Merchant        string
	PromisedDate    string
	ShipmentDetails string
	DeliveryAddress string
	NoShipment      string
}

// Build derives the page for record in the language of opts.
// A nil record yields a view whose record sections are empty.
func Build(record *domain.ShipmentRecord, trackingNumber string, opts Options) *TrackingView {
	lang := opts.Language
	if _, ok := i18n.Parse(string(lang)); !ok {
		lang = i18n.DefaultLanguage
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	v := &TrackingView{
		Lang:      lang,
		Dir:       lang.Dir(),
		HasRecord: record != nil,
		Help: Help{
			Question: i18n.T(lang, i18n.KeyHelpQuestion),
			Action:   i18n.T(lang, i18n.KeyReportProblem),
			URL:      opts.HelpURL,
		},
		Nav:    buildNav(lang, trackingNumber),
		Labels: buildLabels(lang),
	}

	severity := domain.SeverityUnknown
	var events []domain.TransitEvent
	if record != nil {
		severity = domain.SeverityClass(record.CurrentStatus.State)
		events = record.TransitEvents
		v.Header = buildHeader(record, severity, lang, loc)
		v.Address = record.DropOffAddress.String()
		if v.Address == "" {
			v.Address = i18n.T(lang, i18n.KeyAddressUnavailable)
		}
	}

	v.Stepper = buildStepper(events, severity, lang)
	v.Events = buildEvents(events, lang)

	return v
}

func buildHeader(record *domain.ShipmentRecord, severity domain.Severity, lang i18n.Language, loc *time.Location) *Header {
	return &Header{
		TrackingNumber: string(record.TrackingNumber),
		State:          record.CurrentStatus.State,
		StateText:      i18n.T(lang, string(record.CurrentStatus.State)),
		Severity:       severity,
		Color:          severity.Color(),
		LastUpdate:     formatTimestamp(record.CurrentStatus.Timestamp, lang, loc, i18n.FormatDateTime),
		Provider:       record.Provider,
		PromisedDate:   formatTimestamp(record.PromisedDate, lang, loc, i18n.FormatDate),
	}
}

func buildStepper(events []domain.TransitEvent, severity domain.Severity, lang i18n.Language) Stepper {
	index := domain.ActiveStepIndex(events)
	display := domain.DisplayStepIndex(index)

	milestones := domain.Milestones()
	steps := make([]Step, 0, len(milestones))
	for i, m := range milestones {
		status := StepIncomplete
		switch {
		case i < display:
			status = StepComplete
		case i == display:
			status = StepActive
		}
		steps = append(steps, Step{
			State:   m,
			Title:   i18n.T(lang, string(m)),
			Status:  status,
			Reached: i <= display,
		})
	}

	return Stepper{
		Index:        index,
		DisplayIndex: display,
		Severity:     severity,
		Scheme:       severity.Scheme(),
		Color:        severity.Color(),
		Steps:        steps,
	}
}

func buildEvents(events []domain.TransitEvent, lang i18n.Language) EventTable {
	table := EventTable{
		Columns: orderCells(lang,
			i18n.T(lang, i18n.KeyBranch),
			i18n.T(lang, i18n.KeyDate),
			i18n.T(lang, i18n.KeyTime),
			i18n.T(lang, i18n.KeyDetails),
		),
		Rows: make([]EventRow, 0, len(events)),
	}

	for _, e := range events {
		date, clock := eventDateAndTime(e.Timestamp, lang)
		row := EventRow{
			State:   e.State,
			Hub:     e.Hub,
			Date:    date,
			Time:    clock,
			Details: i18n.T(lang, string(e.State)),
		}
		row.Cells = orderCells(lang, row.Hub, row.Date, row.Time, row.Details)
		table.Rows = append(table.Rows, row)
	}

	return table
}

// orderCells lays out branch, date, time, details; Arabic reads them in reverse.
func orderCells(lang i18n.Language, branch, date, clock, details string) []string {
	if lang.IsRTL() {
		return []string{details, clock, date, branch}
	}
	return []string{branch, date, clock, details}
}

// eventDateAndTime splits an event timestamp into the date and clock text it
// was recorded with. Values without a time component fall back to the raw text.
func eventDateAndTime(ts domain.Timestamp, lang i18n.Language) (string, string) {
	if clock, ok := ts.TimeOfDay(); ok {
		return ts.DatePart(), i18n.FormatEventTime(lang, clock)
	}
	return string(ts), ""
}

func formatTimestamp(ts domain.Timestamp, lang i18n.Language, loc *time.Location, format func(i18n.Language, time.Time) string) string {
	t, ok := ts.Time()
	if !ok {
		return string(ts)
	}
	return format(lang, t.In(loc))
}

func buildNav(lang i18n.Language, trackingNumber string) Nav {
	other := lang.Toggle()

	q := url.Values{}
	if trackingNumber != "" {
		q.Set(TrackingNumberParam, trackingNumber)
	}
	q.Set(LanguageParam, string(other))

	return Nav{
		Home:          i18n.T(lang, i18n.KeyHome),
		Pricing:       i18n.T(lang, i18n.KeyPricing),
		ContactSales:  i18n.T(lang, i18n.KeyContactSales),
		SignIn:        i18n.T(lang, i18n.KeySignIn),
		TrackShipment: i18n.T(lang, i18n.KeyTrackShipment),
		SearchHint:    i18n.T(lang, i18n.KeyTrackingNumberHint),
		SearchParam:   SearchParam,
		ToggleLabel:   toggleLabel(other),
		ToggleURL:     "/?" + q.Encode(),
	}
}

func toggleLabel(l i18n.Language) string {
	if l == i18n.Arabic {
		return "AR"
	}
	return "EN"
}

func buildLabels(lang i18n.Language) Labels {
	return Labels{
		Title:           i18n.T(lang, i18n.KeyPageTitle),
		TrackingNumber:  i18n.T(lang, i18n.KeyTrackingNumber),
		LastUpdate:      i18n.T(lang, i18n.KeyLastUpdate),
		Merchant:        i18n.T(lang, i18n.KeyMerchant),
		PromisedDate:    i18n.T(lang, i18n.KeyPromisedDate),
		ShipmentDetails: i18n.T(lang, i18n.KeyShipmentDetails),
		DeliveryAddress: i18n.T(lang, i18n.KeyDeliveryAddress),
		NoShipment:      i18n.T(lang, i18n.KeyNoShipment),
	}
}
