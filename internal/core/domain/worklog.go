package domain

import "time"

// WorkLogStatus is the reported state of a single work log entry.
// Any value may follow any other; there is no transition guard.
type WorkLogStatus string

const (
	WorkLogCompleted  WorkLogStatus = "Completed"
	WorkLogInProgress WorkLogStatus = "In Progress"
	WorkLogBlocked    WorkLogStatus = "Blocked"
)

// WorkLogEntry is one activity update submitted by (or on behalf of) a team
// member. TeamMemberName is a snapshot taken at creation time and is never
// refreshed from the roster.
type WorkLogEntry struct {
	EntryID        string        `json:"entryID"`
	Timestamp      time.Time     `json:"timestamp"` // immutable once set
	Category       Category      `json:"category"`
	TeamMemberID   string        `json:"teamMemberID"`
	TeamMemberName string        `json:"teamMemberName"`
	Description    string        `json:"description"`
	Status         WorkLogStatus `json:"status"`
	MetricValue    float64       `json:"metricValue"` // non-negative count, e.g. calls made
	Comments       string        `json:"comments,omitempty"`
}

// ID implements the snapshot collection contract.
func (e WorkLogEntry) ID() string { return e.EntryID }
