package domain

// AnalysisResult is the narrative performance summary produced by the
// analysis collaborator. It is transient: held in memory only, never
// persisted to a snapshot slot.
type AnalysisResult struct {
	Summary          string   `json:"summary"`
	ProductivityGaps []string `json:"productivityGaps"`
	Recommendations  []string `json:"recommendations"`
}

// FallbackAnalysisResult is returned whenever the collaborator is unreachable
// or its payload does not parse. Callers never see the underlying failure.
func FallbackAnalysisResult() AnalysisResult {
	return AnalysisResult{
		Summary:          "AI Analysis unavailable due to a configuration or processing error.",
		ProductivityGaps: []string{"Unable to fetch real-time data analysis."},
		Recommendations:  []string{"Review manual logs until AI services are restored."},
	}
}
