package matching

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func numericWeights() JobWeights {
	return JobWeights{
		Complexity:    Numeric(0.25),
		Consistency:   Numeric(0.20),
		Collaboration: Numeric(0.15),
		Recency:       Numeric(0.15),
		Impact:        Numeric(0.15),
		CGPA:          Numeric(0.10),
	}
}

func singleSkillCandidate(name string, cgpa float64) Candidate {
	return Candidate{
		ID:   uuid.New(),
		Name: name,
		CGPA: cgpa,
		Skills: []Skill{
			{ComplexityScore: 80, ConsistencyScore: 70, CollaborationScore: 60, RecencyScore: 90, ImpactScore: 75},
		},
		RiskLevel: "Low",
	}
}

func TestAverages(t *testing.T) {
	b := Averages(nil, 8.0)
	if b.Complexity != 0 || b.Impact != 0 {
		t.Fatalf("empty skills should average to zero: %+v", b)
	}
	if b.CGPA != 80 {
		t.Fatalf("CGPA = %v, want 80", b.CGPA)
	}

	skills := []Skill{
		{ComplexityScore: 60, ConsistencyScore: 50, CollaborationScore: 40, RecencyScore: 80, ImpactScore: 70},
		{ComplexityScore: 100, ConsistencyScore: 90, CollaborationScore: 80, RecencyScore: 100, ImpactScore: 90},
	}
	b = Averages(skills, 5.0)
	if b.Complexity != 80 || b.Consistency != 70 || b.Collaboration != 60 || b.Recency != 90 || b.Impact != 80 {
		t.Fatalf("averages = %+v", b)
	}
	if b.CGPA != 50 {
		t.Fatalf("CGPA = %v, want 50", b.CGPA)
	}
}

func TestFitScoreWorkedExample(t *testing.T) {
	b := Breakdown{Complexity: 80, Consistency: 70, Collaboration: 60, Recency: 90, Impact: 75, CGPA: 80}
	got := FitScore(b, Resolve(numericWeights()))
	// 0.25*80 + 0.20*70 + 0.15*60 + 0.15*90 + 0.15*75 + 0.10*80
	if got != 75.75 {
		t.Fatalf("FitScore = %v, want 75.75", got)
	}

	c := Candidate{
		ID:   uuid.New(),
		Name: "ravi",
		CGPA: 8.0,
		Skills: []Skill{
			{ComplexityScore: 90, ConsistencyScore: 80, CollaborationScore: 70, RecencyScore: 60, ImpactScore: 50},
		},
	}
	matches := MatchCandidates(Job{Weights: numericWeights(), MinThreshold: 50}, []Candidate{c})
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	// 22.5 + 16 + 10.5 + 9 + 7.5 + 8
	if matches[0].FitScore != 73.5 {
		t.Fatalf("FitScore = %v, want 73.5", matches[0].FitScore)
	}
}

func TestMatchCandidatesThresholdAndOrder(t *testing.T) {
	job := Job{Weights: numericWeights(), MinThreshold: 50}

	strong := singleSkillCandidate("strong", 9.0)
	weak := Candidate{
		ID:   uuid.New(),
		Name: "weak",
		CGPA: 5.0,
		Skills: []Skill{
			{ComplexityScore: 30, ConsistencyScore: 30, CollaborationScore: 30, RecencyScore: 30, ImpactScore: 30},
		},
		RiskLevel: "High",
	}
	mid := singleSkillCandidate("mid", 6.0)

	matches := MatchCandidates(job, []Candidate{weak, mid, strong})

	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2 (weak filtered)", len(matches))
	}
	if matches[0].CandidateName != "strong" || matches[1].CandidateName != "mid" {
		t.Fatalf("order = %s, %s", matches[0].CandidateName, matches[1].CandidateName)
	}
	if matches[0].FitScore <= matches[1].FitScore {
		t.Fatalf("scores not descending: %v <= %v", matches[0].FitScore, matches[1].FitScore)
	}
}

func TestMatchCandidatesCGPAGate(t *testing.T) {
	threshold := 7.0
	job := Job{Weights: numericWeights(), CGPAThreshold: &threshold, CGPACondition: CGPAAbove}

	passing := singleSkillCandidate("passing", 8.0)
	boundary := singleSkillCandidate("boundary", 7.0)
	failing := singleSkillCandidate("failing", 6.5)

	matches := MatchCandidates(job, []Candidate{passing, boundary, failing})
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	for _, m := range matches {
		if m.CandidateName == "failing" {
			t.Fatal("candidate below the CGPA gate was included")
		}
	}

	job.CGPACondition = CGPABelow
	matches = MatchCandidates(job, []Candidate{passing, boundary, failing})
	if len(matches) != 2 {
		t.Fatalf("below condition: len = %d, want 2", len(matches))
	}
	for _, m := range matches {
		if m.CandidateName == "passing" {
			t.Fatal("candidate above the below-gate was included")
		}
	}
}

func TestMatchCandidatesMaxApplicants(t *testing.T) {
	job := Job{Weights: numericWeights(), MaxApplicants: 2}
	pool := []Candidate{
		singleSkillCandidate("a", 9.0),
		singleSkillCandidate("b", 8.0),
		singleSkillCandidate("c", 7.0),
	}
	matches := MatchCandidates(job, pool)
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].CandidateName != "a" || matches[1].CandidateName != "b" {
		t.Fatalf("truncation kept wrong candidates: %s, %s", matches[0].CandidateName, matches[1].CandidateName)
	}
}

func TestMatchCandidatesStableOnTies(t *testing.T) {
	job := Job{Weights: numericWeights()}
	first := singleSkillCandidate("first", 8.0)
	second := singleSkillCandidate("second", 8.0)

	matches := MatchCandidates(job, []Candidate{first, second})
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].CandidateName != "first" || matches[1].CandidateName != "second" {
		t.Fatalf("tie order not stable: %s, %s", matches[0].CandidateName, matches[1].CandidateName)
	}
}

func TestSimulateMatchesMatchingFormula(t *testing.T) {
	job := Job{Weights: numericWeights()}
	c := singleSkillCandidate("sim", 8.0)

	matches := MatchCandidates(job, []Candidate{c})
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}

	snap := SimulationCandidate{
		CandidateID:   matches[0].CandidateID,
		CandidateName: matches[0].CandidateName,
		RiskLevel:     matches[0].RiskLevel,
		GapSummary:    matches[0].GapSummary,
		Breakdown:     matches[0].Breakdown,
	}
	ranked := SimulateRanking([]SimulationCandidate{snap}, numericWeights(), 0)
	if len(ranked) != 1 {
		t.Fatalf("len(ranked) = %d, want 1", len(ranked))
	}
	if ranked[0].FitScore != matches[0].FitScore {
		t.Fatalf("simulation fit %v != matching fit %v", ranked[0].FitScore, matches[0].FitScore)
	}
}

func TestSimulateRankingReordersUnderNewWeights(t *testing.T) {
	collab := SimulationCandidate{
		CandidateName: "collaborator",
		Breakdown:     Breakdown{Complexity: 50, Consistency: 50, Collaboration: 95, Recency: 50, Impact: 50, CGPA: 50},
	}
	coder := SimulationCandidate{
		CandidateName: "complexity",
		Breakdown:     Breakdown{Complexity: 95, Consistency: 50, Collaboration: 50, Recency: 50, Impact: 50, CGPA: 50},
	}

	complexityHeavy := JobWeights{
		Complexity:    Numeric(0.5),
		Consistency:   Numeric(0.1),
		Collaboration: Numeric(0.1),
		Recency:       Numeric(0.1),
		Impact:        Numeric(0.1),
		CGPA:          Numeric(0.1),
	}
	ranked := SimulateRanking([]SimulationCandidate{collab, coder}, complexityHeavy, 0)
	if ranked[0].CandidateName != "complexity" {
		t.Fatalf("complexity-heavy weights ranked %s first", ranked[0].CandidateName)
	}

	collabHeavy := JobWeights{
		Complexity:    Numeric(0.1),
		Consistency:   Numeric(0.1),
		Collaboration: Numeric(0.5),
		Recency:       Numeric(0.1),
		Impact:        Numeric(0.1),
		CGPA:          Numeric(0.1),
	}
	ranked = SimulateRanking([]SimulationCandidate{collab, coder}, collabHeavy, 0)
	if ranked[0].CandidateName != "collaborator" {
		t.Fatalf("collaboration-heavy weights ranked %s first", ranked[0].CandidateName)
	}
}

func TestGapSummary(t *testing.T) {
	balanced := Breakdown{Complexity: 70, Consistency: 70, Collaboration: 70, Recency: 70, Impact: 70, CGPA: 70}
	if got := GapSummary(balanced); got != "Balanced profile with no significant gaps." {
		t.Fatalf("balanced summary = %q", got)
	}

	mixed := Breakdown{Complexity: 90, Consistency: 70, Collaboration: 40, Recency: 70, Impact: 70, CGPA: 90}
	got := GapSummary(mixed)
	if !strings.Contains(got, "strong technical complexity") {
		t.Errorf("missing complexity strength in %q", got)
	}
	if !strings.Contains(got, "strong academic record") {
		t.Errorf("missing academic strength in %q", got)
	}
	if !strings.Contains(got, "collaboration skills need development") {
		t.Errorf("missing collaboration gap in %q", got)
	}
	if !strings.HasPrefix(got, "Strengths: ") {
		t.Errorf("strengths should lead: %q", got)
	}

	gapsOnly := Breakdown{Complexity: 50, Consistency: 50, Collaboration: 50, Recency: 50, Impact: 50, CGPA: 50}
	got = GapSummary(gapsOnly)
	if !strings.HasPrefix(got, "Gaps: ") {
		t.Errorf("gaps-only summary should start with Gaps: %q", got)
	}
	if !strings.Contains(got, "academic performance below threshold") {
		t.Errorf("missing academic gap in %q", got)
	}
}
