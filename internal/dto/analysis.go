package dto

import "github.com/mnjscf/team_ops_app/internal/core/domain"

// AnalysisResponse is the narrative summary returned by the analysis
// collaborator (or its fixed fallback).
type AnalysisResponse struct {
	Summary          string   `json:"summary"`
	ProductivityGaps []string `json:"productivityGaps"`
	Recommendations  []string `json:"recommendations"`
}

// ToAnalysisResponse converts a domain.AnalysisResult to AnalysisResponse DTO.
func ToAnalysisResponse(r domain.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		Summary:          r.Summary,
		ProductivityGaps: r.ProductivityGaps,
		Recommendations:  r.Recommendations,
	}
}
