package dto

import (
	"time"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// SaveDirectiveRequest creates a new directive when DirectiveID is empty and
// edits the matching directive in place otherwise. Creation is an admin-only
// operation.
type SaveDirectiveRequest struct {
	DirectiveID  string `json:"directiveID"`
	TargetUserID string `json:"targetUserID" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Priority     string `json:"priority" binding:"required,oneof=Low Medium High CRITICAL"`
}

// UpdateDirectiveStatusRequest advances (or sets) the directive status. The
// Pending -> Acknowledged -> In Progress -> Done progression is advisory;
// any listed value is accepted regardless of the current status.
type UpdateDirectiveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Acknowledged 'In Progress' Done"`
}

// DirectiveResponse is the outward representation of a directive.
type DirectiveResponse struct {
	DirectiveID    string    `json:"directiveID"`
	AdminID        string    `json:"adminID"`
	TargetUserID   string    `json:"targetUserID"`
	TargetUserName string    `json:"targetUserName"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

// ToDirectiveResponse converts a domain.Directive to DirectiveResponse DTO.
func ToDirectiveResponse(d domain.Directive) DirectiveResponse {
	return DirectiveResponse{
		DirectiveID:    d.DirectiveID,
		AdminID:        d.AdminID,
		TargetUserID:   d.TargetUserID,
		TargetUserName: d.TargetUserName,
		Title:          d.Title,
		Description:    d.Description,
		Priority:       string(d.Priority),
		Status:         string(d.Status),
		Timestamp:      d.Timestamp,
	}
}

// ListDirectivesResponse wraps the visibility-filtered directive listing.
type ListDirectivesResponse struct {
	Directives []DirectiveResponse `json:"directives"`
}

// ToListDirectivesResponse converts a slice of domain.Directive to ListDirectivesResponse DTO.
func ToListDirectivesResponse(directives []domain.Directive) ListDirectivesResponse {
	responses := make([]DirectiveResponse, len(directives))
	for i, d := range directives {
		responses[i] = ToDirectiveResponse(d)
	}
	return ListDirectivesResponse{Directives: responses}
}
