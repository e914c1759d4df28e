package punch

import "time"

// Kind distinguishes clock-in taps from clock-out taps.
type Kind string

const (
	KindIn  Kind = "in"
	KindOut Kind = "out"
)

// ApprovalStatus is the coordinator's verdict on a punch event.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
	StatusAdjusted ApprovalStatus = "adjusted"
)

// Marker tags. Tagged events carry metadata and never pair into sessions,
// except auto-closed outs which are synthesized during computation.
const (
	TagOvertimeAuth = "ot_auth"
	TagAutoClosed   = "auto_closed"
)

// Event is a single raw punch as recorded by the kiosk or mobile app.
type Event struct {
	ID        string
	StudentID string
	Kind      Kind
	Timestamp time.Time
	PhotoRef  *string
	Approval  ApprovalStatus
	Tag       string

	// Coordinator override, in decimal hours. Set on the out event.
	ValidatedHours *float64

	// Official shift bounds frozen at punch time, as raw clock strings.
	OfficialInSnapshot  *string
	OfficialOutSnapshot *string
}

// Approved reports whether a coordinator has signed off on this event.
func (e Event) Approved() bool {
	return e.Approval == StatusApproved
}
