package dto

import (
	"time"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// SaveWorkLogRequest creates a new work log entry when EntryID is empty and
// edits the matching entry in place otherwise. TeamMemberID is honored only
// for admin callers; a member always logs against themselves.
type SaveWorkLogRequest struct {
	EntryID      string  `json:"entryID"`
	Category     string  `json:"category" binding:"required,category"`
	TeamMemberID string  `json:"teamMemberID"`
	Description  string  `json:"description" binding:"required"`
	Status       string  `json:"status" binding:"required,oneof=Completed 'In Progress' Blocked"`
	MetricValue  float64 `json:"metricValue" binding:"gte=0"`
	Comments     string  `json:"comments"`
}

// WorkLogResponse is the outward representation of a work log entry.
type WorkLogResponse struct {
	EntryID        string    `json:"entryID"`
	Timestamp      time.Time `json:"timestamp"`
	Category       string    `json:"category"`
	TeamMemberID   string    `json:"teamMemberID"`
	TeamMemberName string    `json:"teamMemberName"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	MetricValue    float64   `json:"metricValue"`
	Comments       string    `json:"comments,omitempty"`
}

// ToWorkLogResponse converts a domain.WorkLogEntry to WorkLogResponse DTO.
func ToWorkLogResponse(e domain.WorkLogEntry) WorkLogResponse {
	return WorkLogResponse{
		EntryID:        e.EntryID,
		Timestamp:      e.Timestamp,
		Category:       string(e.Category),
		TeamMemberID:   e.TeamMemberID,
		TeamMemberName: e.TeamMemberName,
		Description:    e.Description,
		Status:         string(e.Status),
		MetricValue:    e.MetricValue,
		Comments:       e.Comments,
	}
}

// ListWorkLogsResponse wraps the visibility-filtered work log listing.
type ListWorkLogsResponse struct {
	WorkLogs []WorkLogResponse `json:"workLogs"`
}

// ToListWorkLogsResponse converts a slice of domain.WorkLogEntry to ListWorkLogsResponse DTO.
func ToListWorkLogsResponse(entries []domain.WorkLogEntry) ListWorkLogsResponse {
	responses := make([]WorkLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToWorkLogResponse(e)
	}
	return ListWorkLogsResponse{WorkLogs: responses}
}
