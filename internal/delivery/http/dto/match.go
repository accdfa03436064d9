package dto

import (
	"github.com/Chidwan3578/Veridex-Local/internal/domain/matching"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

type DimensionBreakdownResponse struct {
	Complexity    float64 `json:"complexity"`
	Consistency   float64 `json:"consistency"`
	Collaboration float64 `json:"collaboration"`
	Recency       float64 `json:"recency"`
	Impact        float64 `json:"impact"`
	CGPA          float64 `json:"cgpa"`
}

func NewDimensionBreakdownResponse(b matching.Breakdown) DimensionBreakdownResponse {
	return DimensionBreakdownResponse{
		Complexity:    b.Complexity,
		Consistency:   b.Consistency,
		Collaboration: b.Collaboration,
		Recency:       b.Recency,
		Impact:        b.Impact,
		CGPA:          b.CGPA,
	}
}

type MatchResponse struct {
	CandidateID   string                     `json:"candidate_id"`
	CandidateName string                     `json:"candidate_name"`
	FitScore      float64                    `json:"fit_score"`
	RiskLevel     string                     `json:"risk_level"`
	GapSummary    string                     `json:"gap_summary"`
	Breakdown     DimensionBreakdownResponse `json:"breakdown"`
}

type JobMatchesResponse struct {
	Job     JobResponse     `json:"job"`
	Matches []MatchResponse `json:"matches"`
}

func NewMatchResponses(views []usecase.MatchView) []MatchResponse {
	out := make([]MatchResponse, 0, len(views))
	for _, v := range views {
		out = append(out, MatchResponse{
			CandidateID:   v.Result.CandidateID.String(),
			CandidateName: v.CandidateName,
			FitScore:      v.Result.FitScore,
			RiskLevel:     v.Result.RiskLevel,
			GapSummary:    v.Result.GapSummary,
			Breakdown:     NewDimensionBreakdownResponse(v.Result.Breakdown),
		})
	}
	return out
}

type SimulationRequest struct {
	Weights      JobWeightsRequest `json:"weights"`
	MinThreshold float64           `json:"min_threshold"`
}

func (r SimulationRequest) ToInput() usecase.SimulationInput {
	return usecase.SimulationInput{
		Weights:      r.Weights.ToWeights(),
		MinThreshold: r.MinThreshold,
	}
}

func NewSimulationResponse(ranked []matching.CandidateMatch) []MatchResponse {
	out := make([]MatchResponse, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, MatchResponse{
			CandidateID:   m.CandidateID.String(),
			CandidateName: m.CandidateName,
			FitScore:      m.FitScore,
			RiskLevel:     m.RiskLevel,
			GapSummary:    m.GapSummary,
			Breakdown:     NewDimensionBreakdownResponse(m.Breakdown),
		})
	}
	return out
}
