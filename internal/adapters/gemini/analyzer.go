package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
	"google.golang.org/genai"
)

// Analyzer asks the Gemini API for a management summary of a work log sample.
// Every failure path degrades to the fixed fallback result so the caller can
// always render something.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates a Gemini-backed analyzer.
func NewAnalyzer(ctx context.Context, apiKey, model string) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Analyzer{client: client, model: model}, nil
}

var _ portssvc.AnalysisProvider = (*Analyzer)(nil)

// responseSchema forces the model to answer with the exact JSON shape of
// domain.AnalysisResult.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {
			Type:        genai.TypeString,
			Description: "A summary of the team's performance.",
		},
		"productivityGaps": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Identified productivity gaps.",
		},
		"recommendations": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Actionable recommendations for the manager.",
		},
	},
	Required: []string{"summary", "productivityGaps", "recommendations"},
}

// Summarize sends the sample to the model and parses its structured answer.
// On any failure it returns the fallback result together with the cause, so
// callers can log the degradation without surfacing it.
func (a *Analyzer) Summarize(ctx context.Context, sample []domain.WorkLogEntry) (domain.AnalysisResult, error) {
	data, err := json.Marshal(sample)
	if err != nil {
		return domain.FallbackAnalysisResult(), fmt.Errorf("marshal sample: %w", err)
	}

	prompt := fmt.Sprintf(`Analyze these team logs for MNJ & SCF (Telecalling, Web Dev, Blogs, Social Media).
Data: %s
Evaluate: Volume, Distribution, and Bottlenecks.
Provide a professional management analysis in JSON format.`, data)

	resp, err := a.client.Models.GenerateContent(ctx,
		a.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
		},
	)
	if err != nil {
		return domain.FallbackAnalysisResult(), fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return domain.FallbackAnalysisResult(), fmt.Errorf("empty model response")
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return domain.FallbackAnalysisResult(), fmt.Errorf("parse model response: %w", err)
	}
	return result, nil
}
