package candidate

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the per-candidate record. CGPA lives on the canonical 0-10
// scale, enforced at the update boundary, not by the engines. OverallScore
// and RiskLabel are derived caches refreshed on every recompute.
type Profile struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CGPA             float64
	OverallScore     float64
	RiskLabel        string
	DataCompleteness float64
	LastActiveDate   time.Time

	GithubUsername     string
	LeetcodeUsername   string
	LeetcodeScore      *float64
	LeetcodeRank       *int
	LinkedinURL        string
	LinkedinCertCount  *int
	LinkedinCertsJSON  string
	ResumeText         string
}

// Skill holds one tracked skill with its six raw dimension scores and the
// display-facing overall score.
type Skill struct {
	ID                 uuid.UUID
	CandidateID        uuid.UUID
	Name               string
	Score              float64
	ComplexityScore    float64
	ConsistencyScore   float64
	CollaborationScore float64
	RecencyScore       float64
	ImpactScore        float64
	CertificationBonus float64
}

// HistoryPoint is one month of a skill's trend line. Ordered chronologically
// by the repository; display-only, never consumed by the scoring formulas.
type HistoryPoint struct {
	ID      uuid.UUID
	SkillID uuid.UUID
	Month   string
	Score   float64
}
