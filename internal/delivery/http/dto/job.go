package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/job"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/matching"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

// WeightField accepts either a JSON number (a fraction) or a string holding a
// fraction or a priority tier literal.
type WeightField struct {
	Spec matching.WeightSpec
}

func (w *WeightField) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		if num < 0 {
			return fmt.Errorf("negative weight %v", num)
		}
		w.Spec = matching.Numeric(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("weight must be a number or a string")
	}
	spec, err := matching.ParseWeightSpec(s)
	if err != nil {
		return err
	}
	w.Spec = spec
	return nil
}

func (w WeightField) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Spec.String())
}

type JobWeightsRequest struct {
	Complexity    WeightField `json:"complexity"`
	Consistency   WeightField `json:"consistency"`
	Collaboration WeightField `json:"collaboration"`
	Recency       WeightField `json:"recency"`
	Impact        WeightField `json:"impact"`
	CGPA          WeightField `json:"cgpa"`
}

func (r JobWeightsRequest) ToWeights() matching.JobWeights {
	return matching.JobWeights{
		Complexity:    r.Complexity.Spec,
		Consistency:   r.Consistency.Spec,
		Collaboration: r.Collaboration.Spec,
		Recency:       r.Recency.Spec,
		Impact:        r.Impact.Spec,
		CGPA:          r.CGPA.Spec,
	}
}

type CreateJobRequest struct {
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Weights       JobWeightsRequest `json:"weights"`
	MinThreshold  float64           `json:"min_threshold"`
	CGPAThreshold *float64          `json:"cgpa_threshold"`
	CGPACondition string            `json:"cgpa_condition"`
	MaxApplicants int               `json:"max_applicants"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		Title:         r.Title,
		Description:   r.Description,
		Weights:       r.Weights.ToWeights(),
		MinThreshold:  r.MinThreshold,
		CGPAThreshold: r.CGPAThreshold,
		CGPACondition: matching.CGPACondition(r.CGPACondition),
		MaxApplicants: r.MaxApplicants,
	}
}

type JobWeightsResponse struct {
	Complexity    string `json:"complexity"`
	Consistency   string `json:"consistency"`
	Collaboration string `json:"collaboration"`
	Recency       string `json:"recency"`
	Impact        string `json:"impact"`
	CGPA          string `json:"cgpa"`
}

type JobResponse struct {
	ID            string             `json:"id"`
	RecruiterID   string             `json:"recruiter_id"`
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	Weights       JobWeightsResponse `json:"weights"`
	MinThreshold  float64            `json:"min_threshold"`
	CGPAThreshold *float64           `json:"cgpa_threshold,omitempty"`
	CGPACondition string             `json:"cgpa_condition,omitempty"`
	MaxApplicants int                `json:"max_applicants,omitempty"`
	CreatedAt     string             `json:"created_at"`
}

func NewJobResponse(p job.Posting) JobResponse {
	return JobResponse{
		ID:          p.ID.String(),
		RecruiterID: p.RecruiterID.String(),
		Title:       p.Title,
		Description: p.Description,
		Weights: JobWeightsResponse{
			Complexity:    p.Weights.Complexity.String(),
			Consistency:   p.Weights.Consistency.String(),
			Collaboration: p.Weights.Collaboration.String(),
			Recency:       p.Weights.Recency.String(),
			Impact:        p.Weights.Impact.String(),
			CGPA:          p.Weights.CGPA.String(),
		},
		MinThreshold:  p.MinThreshold,
		CGPAThreshold: p.CGPAThreshold,
		CGPACondition: string(p.CGPACondition),
		MaxApplicants: p.MaxApplicants,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewJobListResponse(postings []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, NewJobResponse(p))
	}
	return out
}
