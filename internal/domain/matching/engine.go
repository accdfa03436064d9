package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/scoring"

	"github.com/google/uuid"
)

type Skill struct {
	ComplexityScore    float64
	ConsistencyScore   float64
	CollaborationScore float64
	RecencyScore       float64
	ImpactScore        float64
}

// Breakdown is the per-candidate dimension-average snapshot. It is persisted
// with each match result and is the only input the live simulator gets, so
// it must carry everything the fit formula needs.
type Breakdown struct {
	Complexity    float64 `json:"complexity"`
	Consistency   float64 `json:"consistency"`
	Collaboration float64 `json:"collaboration"`
	Recency       float64 `json:"recency"`
	Impact        float64 `json:"impact"`
	CGPA          float64 `json:"cgpa"`
}

type CGPACondition string

const (
	CGPAAbove CGPACondition = "above"
	CGPABelow CGPACondition = "below"
)

type Job struct {
	Weights       JobWeights
	MinThreshold  float64
	CGPAThreshold *float64
	CGPACondition CGPACondition
	MaxApplicants int
}

type Candidate struct {
	ID        uuid.UUID
	Name      string
	CGPA      float64
	Skills    []Skill
	RiskLevel string
}

type CandidateMatch struct {
	CandidateID   uuid.UUID
	CandidateName string
	FitScore      float64
	RiskLevel     string
	GapSummary    string
	Breakdown     Breakdown
}

// Averages computes per-dimension arithmetic means plus normalized CGPA.
// An empty skill list yields zero averages, not an error.
func Averages(skills []Skill, cgpa float64) Breakdown {
	b := Breakdown{CGPA: scoring.NormalizeCGPA(cgpa, scoring.DefaultCGPAScale)}
	if len(skills) == 0 {
		return b
	}
	n := float64(len(skills))
	for _, s := range skills {
		b.Complexity += s.ComplexityScore
		b.Consistency += s.ConsistencyScore
		b.Collaboration += s.CollaborationScore
		b.Recency += s.RecencyScore
		b.Impact += s.ImpactScore
	}
	b.Complexity /= n
	b.Consistency /= n
	b.Collaboration /= n
	b.Recency /= n
	b.Impact /= n
	return b
}

// FitScore applies the resolved weights to a breakdown snapshot. Both the
// matching pass and the live simulator go through this one function; keeping
// a single code path is what keeps the two numerically consistent.
func FitScore(b Breakdown, w ResolvedWeights) float64 {
	fit := w.Complexity*b.Complexity +
		w.Consistency*b.Consistency +
		w.Collaboration*b.Collaboration +
		w.Recency*b.Recency +
		w.Impact*b.Impact +
		w.CGPA*b.CGPA
	return round2(fit)
}

// PassesCGPAGate reports whether a raw CGPA clears the job's optional
// threshold. A job without a threshold admits everyone.
func PassesCGPAGate(job Job, cgpa float64) bool {
	if job.CGPAThreshold == nil {
		return true
	}
	switch job.CGPACondition {
	case CGPAAbove:
		return cgpa >= *job.CGPAThreshold
	case CGPABelow:
		return cgpa <= *job.CGPAThreshold
	default:
		return true
	}
}

// MatchCandidates ranks candidates against a job. Candidates failing the
// CGPA gate or scoring under the minimum threshold are excluded; the rest
// are sorted descending by fit score, stable in discovery order, truncated
// to MaxApplicants when the job caps its pool.
func MatchCandidates(job Job, candidates []Candidate) []CandidateMatch {
	weights := Resolve(job.Weights)

	matches := make([]CandidateMatch, 0, len(candidates))
	for _, c := range candidates {
		if !PassesCGPAGate(job, c.CGPA) {
			continue
		}
		breakdown := Averages(c.Skills, c.CGPA)
		fit := FitScore(breakdown, weights)
		if fit < job.MinThreshold {
			continue
		}
		matches = append(matches, CandidateMatch{
			CandidateID:   c.ID,
			CandidateName: c.Name,
			FitScore:      fit,
			RiskLevel:     c.RiskLevel,
			GapSummary:    GapSummary(breakdown),
			Breakdown:     breakdown,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FitScore > matches[j].FitScore
	})

	if job.MaxApplicants > 0 && len(matches) > job.MaxApplicants {
		matches = matches[:job.MaxApplicants]
	}
	return matches
}

// SimulationCandidate is what the re-ranker works from: the persisted
// snapshot, not raw skill records. Staleness after the snapshot is taken is
// accepted; the CGPA gate is the caller's job since raw CGPA is not part of
// the breakdown.
type SimulationCandidate struct {
	CandidateID   uuid.UUID
	CandidateName string
	RiskLevel     string
	GapSummary    string
	Breakdown     Breakdown
}

// SimulateRanking re-applies the fit formula over snapshots. Filtering and
// ordering semantics match MatchCandidates exactly.
func SimulateRanking(candidates []SimulationCandidate, weights JobWeights, minThreshold float64) []CandidateMatch {
	resolved := Resolve(weights)

	out := make([]CandidateMatch, 0, len(candidates))
	for _, c := range candidates {
		fit := FitScore(c.Breakdown, resolved)
		if fit < minThreshold {
			continue
		}
		out = append(out, CandidateMatch{
			CandidateID:   c.CandidateID,
			CandidateName: c.CandidateName,
			FitScore:      fit,
			RiskLevel:     c.RiskLevel,
			GapSummary:    c.GapSummary,
			Breakdown:     c.Breakdown,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FitScore > out[j].FitScore
	})
	return out
}

// Dimension classification thresholds for the generated summary.
const (
	strengthAbove     = 80.0
	gapBelow          = 60.0
	cgpaStrengthAbove = 85.0
	cgpaGapBelow      = 65.0
)

// GapSummary renders a short natural-language description of strong and
// weak dimensions relative to fixed thresholds.
func GapSummary(b Breakdown) string {
	var strengths, gaps []string

	classify := func(v float64, strength, gap string) {
		if v > strengthAbove {
			strengths = append(strengths, strength)
		} else if v < gapBelow {
			gaps = append(gaps, gap)
		}
	}

	classify(b.Complexity, "strong technical complexity", "technical complexity could be improved")
	classify(b.Consistency, "consistent contributor", "inconsistent contribution pattern")
	classify(b.Collaboration, "excellent collaborator", "collaboration skills need development")
	classify(b.Recency, "recently active", "declining recent activity")
	classify(b.Impact, "high-impact contributions", "impact could be stronger")

	if b.CGPA > cgpaStrengthAbove {
		strengths = append(strengths, "strong academic record")
	} else if b.CGPA < cgpaGapBelow {
		gaps = append(gaps, "academic performance below threshold")
	}

	parts := make([]string, 0, 2)
	if len(strengths) > 0 {
		parts = append(parts, "Strengths: "+strings.Join(strengths, ", ")+".")
	}
	if len(gaps) > 0 {
		parts = append(parts, "Gaps: "+strings.Join(gaps, ", ")+".")
	}
	if len(parts) == 0 {
		return "Balanced profile with no significant gaps."
	}
	return strings.Join(parts, " ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
