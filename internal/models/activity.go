package models

// Activity log action tags.
const (
	ActionRegistration    = "registration"
	ActionLogin           = "login"
	ActionLogout          = "logout"
	ActionSpaceCreated    = "space_created"
	ActionFloorPlanUpload = "floor_plan_upload"
	ActionAnalysis        = "analysis"
)

// ActivityEvent is the audit event published to Kafka alongside the
// database row.
type ActivityEvent struct {
	EventID     string `json:"event_id"`    // EventID is a unique identifier for the event.
	Timestamp   int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) of the event.
	UserID      int64  `json:"user_id"`     // UserID is the identifier of the acting user.
	Action      string `json:"action"`      // Action is the audit action tag.
	Description string `json:"description"` // Description is a human-readable summary.
	IPAddress   string `json:"ip_address"`  // IPAddress is the client address.
}
