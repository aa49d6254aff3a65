package domain

// Severity classifies a shipment state for color coding.
type Severity string

const (
	// SeverityProblem marks states where the shipment will not reach the consignee.
	SeverityProblem Severity = "PROBLEM"
	// SeverityInProgress marks states on the way to delivery.
	SeverityInProgress Severity = "IN_PROGRESS"
	// SeveritySuccess marks a delivered shipment.
	SeveritySuccess Severity = "SUCCESS"
	// SeverityUnknown marks a state outside every known set.
	SeverityUnknown Severity = "UNKNOWN"
)

// NoActiveStep is returned by ActiveStepIndex when no milestone was reached.
const NoActiveStep = -1

// milestones are the stepper stages, lowest priority first.
var milestones = [...]StatusCode{
	StatusTicketCreated,
	StatusPackageReceived,
	StatusOutForDelivery,
	StatusDelivered,
}

var (
	problemStates = map[StatusCode]bool{
		StatusCancelled:         true,
		StatusDeliveredToSender: true,
	}
	inProgressStates = map[StatusCode]bool{
		StatusNotYetShipped:            true,
		StatusOutForDelivery:           true,
		StatusInTransit:                true,
		StatusPackageReceived:          true,
		StatusTicketCreated:            true,
		StatusWaitingForCustomerAction: true,
	}
	successStates = map[StatusCode]bool{
		StatusDelivered: true,
	}
)

// Milestones returns the four stepper stages in display order.
func Milestones() []StatusCode {
	out := make([]StatusCode, len(milestones))
	copy(out, milestones[:])
	return out
}

// ActiveStepIndex returns the index of the furthest milestone present in events.
// Only set membership matters: event order is ignored and unknown states are skipped.
// It returns NoActiveStep when no milestone is present.
func ActiveStepIndex(events []TransitEvent) int {
	seen := make(map[StatusCode]bool, len(events))
	for _, e := range events {
		seen[e.State] = true
	}

	index := NoActiveStep
	for i, m := range milestones {
		if seen[m] {
			index = i
		}
	}
	return index
}

// DisplayStepIndex maps an ActiveStepIndex result to the stepper position.
// A shipment with no milestone is drawn as "not yet started" on the first step.
func DisplayStepIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index >= len(milestones) {
		return len(milestones) - 1
	}
	return index
}

// SeverityClass classifies the current state.
func SeverityClass(state StatusCode) Severity {
	switch {
	case problemStates[state]:
		return SeverityProblem
	case inProgressStates[state]:
		return SeverityInProgress
	case successStates[state]:
		return SeveritySuccess
	default:
		return SeverityUnknown
	}
}

// Color returns the hex color used for status text and the active step.
func (s Severity) Color() string {
	switch s {
	case SeverityProblem:
		return "#E30613"
	case SeverityInProgress:
		return "#f8bb02"
	case SeveritySuccess:
		return "#35b600"
	default:
		return "#8c8c8c"
	}
}

// Scheme returns the color scheme name for the stepper.
func (s Severity) Scheme() string {
	switch s {
	case SeverityProblem:
		return "red"
	case SeverityInProgress:
		return "yellow"
	case SeveritySuccess:
		return "green"
	default:
		return "gray"
	}
}

// IsKnown reports whether the state belongs to one of the severity sets.
func (s StatusCode) IsKnown() bool {
	return SeverityClass(s) != SeverityUnknown
}
