package job

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/matching"
)

// Posting is a recruiter-created job. Weight slots hold the tagged
// numeric/tier union; immutable once created.
type Posting struct {
	ID            uuid.UUID
	RecruiterID   uuid.UUID
	Title         string
	Description   string
	Weights       matching.JobWeights
	MinThreshold  float64
	CGPAThreshold *float64
	CGPACondition matching.CGPACondition
	MaxApplicants int
	CreatedAt     time.Time
}

// MatchResult is the persisted outcome of one (job, candidate) pairing.
// Results for a job are bulk-replaced on every matching pass, never merged.
type MatchResult struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	FitScore    float64
	RiskLevel   string
	GapSummary  string
	Breakdown   matching.Breakdown
	CreatedAt   time.Time
}
