package sheetsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
)

// defaultTimeout bounds a single webhook round trip. The mirror is
// best-effort and must never stall a save.
const defaultTimeout = 10 * time.Second

// sheetRecord is the flattened row shape the spreadsheet webhook expects.
type sheetRecord struct {
	ID              string  `json:"id"`
	Timestamp       string  `json:"timestamp"`
	Category        string  `json:"category"`
	TeamMemberID    string  `json:"teamMemberId"`
	TeamMemberName  string  `json:"teamMemberName"`
	TaskDescription string  `json:"taskDescription"`
	Status          string  `json:"status"`
	MetricValue     float64 `json:"metricValue"`
}

// webhookResponse is the envelope the Apps Script endpoint answers with.
type webhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Submitter mirrors saved work log entries to a spreadsheet-backed webhook.
// The local snapshot store stays authoritative; a failed submit is reported
// to the caller for logging and otherwise ignored.
type Submitter struct {
	url    string
	client *http.Client
}

// NewSubmitter creates a submitter posting to the given webhook URL.
func NewSubmitter(url string) *Submitter {
	return &Submitter{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

var _ portssvc.WorkLogSubmitter = (*Submitter)(nil)

// Submit posts the entry as a flat JSON row. The body is sent as text/plain
// because the Apps Script endpoint rejects CORS-preflighted content types.
func (s *Submitter) Submit(ctx context.Context, entry domain.WorkLogEntry) error {
	record := sheetRecord{
		ID:              entry.EntryID,
		Timestamp:       entry.Timestamp.UTC().Format(time.RFC3339),
		Category:        string(entry.Category),
		TeamMemberID:    entry.TeamMemberID,
		TeamMemberName:  entry.TeamMemberName,
		TaskDescription: entry.Description,
		Status:          string(entry.Status),
		MetricValue:     entry.MetricValue,
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal sheet record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheet webhook returned status %d", resp.StatusCode)
	}

	var envelope webhookResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode sheet response: %w", err)
	}
	if envelope.Status == "error" {
		return fmt.Errorf("sheet webhook rejected entry: %s", envelope.Message)
	}
	return nil
}
