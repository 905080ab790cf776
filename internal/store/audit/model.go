package audit

import "time"

// Event classifies an audit entry.
type Event string

const (
	EventLogin  Event = "LOGIN"
	EventLogout Event = "LOGOUT"
	EventAction Event = "ACTION"
	EventUser   Event = "USER"
)

// Statuses recorded for an entry.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Entry is one activity-log record.
type Entry struct {
	ID       string
	At       time.Time
	Event    Event
	Username string
	Status   string
	Detail   string
}
