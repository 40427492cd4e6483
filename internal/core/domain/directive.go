package domain

import "time"

// DirectivePriority ranks how urgent an admin-issued directive is.
type DirectivePriority string

const (
	PriorityLow      DirectivePriority = "Low"
	PriorityMedium   DirectivePriority = "Medium"
	PriorityHigh     DirectivePriority = "High"
	PriorityCritical DirectivePriority = "CRITICAL"
)

// DirectiveStatus tracks the advisory progression of a directive
// (Pending -> Acknowledged -> In Progress -> Done). The progression is not
// enforced; callers may set any status directly.
type DirectiveStatus string

const (
	DirectivePending      DirectiveStatus = "Pending"
	DirectiveAcknowledged DirectiveStatus = "Acknowledged"
	DirectiveInProgress   DirectiveStatus = "In Progress"
	DirectiveDone         DirectiveStatus = "Done"
)

// Directive is a work assignment issued by the admin to one team member.
// TargetUserName is a creation-time snapshot of the roster name.
type Directive struct {
	DirectiveID    string            `json:"directiveID"`
	AdminID        string            `json:"adminID"`
	TargetUserID   string            `json:"targetUserID"`
	TargetUserName string            `json:"targetUserName"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Priority       DirectivePriority `json:"priority"`
	Status         DirectiveStatus   `json:"status"`
	Timestamp      time.Time         `json:"timestamp"` // immutable once set
}

// ID implements the snapshot collection contract.
func (d Directive) ID() string { return d.DirectiveID }
