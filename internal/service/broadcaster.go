package service

// Event types pushed to admin subscribers
const (
	EventAssessmentSubmitted = "assessment_submitted"
)

// Broadcaster pushes events to connected admin clients (avoids import cycle with ws)
type Broadcaster interface {
	BroadcastToAdmins(msgType string, payload interface{})
}
