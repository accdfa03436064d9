package dto

import (
	"github.com/Chidwan3578/Veridex-Local/internal/domain/scoring"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

type SkillRequest struct {
	Name               string  `json:"name"`
	ComplexityScore    float64 `json:"complexity_score"`
	ConsistencyScore   float64 `json:"consistency_score"`
	CollaborationScore float64 `json:"collaboration_score"`
	RecencyScore       float64 `json:"recency_score"`
	ImpactScore        float64 `json:"impact_score"`
	CertificationBonus float64 `json:"certification_bonus"`
}

func (r SkillRequest) ToInput() usecase.SkillInput {
	return usecase.SkillInput{
		Name:               r.Name,
		ComplexityScore:    r.ComplexityScore,
		ConsistencyScore:   r.ConsistencyScore,
		CollaborationScore: r.CollaborationScore,
		RecencyScore:       r.RecencyScore,
		ImpactScore:        r.ImpactScore,
		CertificationBonus: r.CertificationBonus,
	}
}

type ScoreBreakdownResponse struct {
	Complexity       float64 `json:"complexity"`
	Consistency      float64 `json:"consistency"`
	Collaboration    float64 `json:"collaboration"`
	Recency          float64 `json:"recency"`
	Impact           float64 `json:"impact"`
	Certification    float64 `json:"certification"`
	CGPAContribution float64 `json:"cgpa_contribution"`
	LeetcodeBonus    float64 `json:"leetcode_bonus,omitempty"`
	LinkedinBonus    float64 `json:"linkedin_bonus,omitempty"`
	DecayApplied     bool    `json:"decay_applied"`
	RawScore         float64 `json:"raw_score"`
	FinalScore       float64 `json:"final_score"`
}

type HistoryPointResponse struct {
	Month string  `json:"month"`
	Score float64 `json:"score"`
}

type SkillResponse struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Score              float64                `json:"score"`
	ComplexityScore    float64                `json:"complexity_score"`
	ConsistencyScore   float64                `json:"consistency_score"`
	CollaborationScore float64                `json:"collaboration_score"`
	RecencyScore       float64                `json:"recency_score"`
	ImpactScore        float64                `json:"impact_score"`
	CertificationBonus float64                `json:"certification_bonus"`
	Breakdown          ScoreBreakdownResponse `json:"breakdown"`
	History            []HistoryPointResponse `json:"history"`
}

func NewScoreBreakdownResponse(b scoring.Breakdown) ScoreBreakdownResponse {
	return ScoreBreakdownResponse{
		Complexity:       b.Complexity,
		Consistency:      b.Consistency,
		Collaboration:    b.Collaboration,
		Recency:          b.Recency,
		Impact:           b.Impact,
		Certification:    b.Certification,
		CGPAContribution: b.CGPAContribution,
		LeetcodeBonus:    b.LeetcodeBonus,
		LinkedinBonus:    b.LinkedinBonus,
		DecayApplied:     b.DecayApplied,
		RawScore:         b.RawScore,
		FinalScore:       b.FinalScore,
	}
}

func NewSkillResponse(v usecase.SkillView) SkillResponse {
	history := make([]HistoryPointResponse, 0, len(v.History))
	for _, h := range v.History {
		history = append(history, HistoryPointResponse{Month: h.Month, Score: h.Score})
	}
	return SkillResponse{
		ID:                 v.Skill.ID.String(),
		Name:               v.Skill.Name,
		Score:              v.Skill.Score,
		ComplexityScore:    v.Skill.ComplexityScore,
		ConsistencyScore:   v.Skill.ConsistencyScore,
		CollaborationScore: v.Skill.CollaborationScore,
		RecencyScore:       v.Skill.RecencyScore,
		ImpactScore:        v.Skill.ImpactScore,
		CertificationBonus: v.Skill.CertificationBonus,
		Breakdown:          NewScoreBreakdownResponse(v.Breakdown),
		History:            history,
	}
}

func NewSkillListResponse(views []usecase.SkillView) []SkillResponse {
	out := make([]SkillResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewSkillResponse(v))
	}
	return out
}
