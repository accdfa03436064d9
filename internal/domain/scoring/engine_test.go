package scoring

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeCGPA(t *testing.T) {
	cases := []struct {
		name  string
		cgpa  float64
		scale float64
		want  float64
	}{
		{"zero", 0, 10, 0},
		{"mid", 5, 10, 50},
		{"full", 10, 10, 100},
		{"four point scale", 3.5, 4, 87.5},
		{"zero scale guards divide", 8, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeCGPA(tc.cgpa, tc.scale)
			if !almostEqual(got, tc.want) {
				t.Fatalf("NormalizeCGPA(%v, %v) = %v, want %v", tc.cgpa, tc.scale, got, tc.want)
			}
		})
	}
}

func TestDecayFactor(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"fresh", 0, 1.0},
		{"exactly six months", 6 * 30 * 24 * time.Hour, 1.0},
		{"just over six months", 6*30*24*time.Hour + time.Hour, 0.85},
		{"exactly twelve months", 12 * 30 * 24 * time.Hour, 0.85},
		{"just over twelve months", 12*30*24*time.Hour + time.Hour, 0.70},
		{"exactly eighteen months", 18 * 30 * 24 * time.Hour, 0.70},
		{"past eighteen months", 19 * 30 * 24 * time.Hour, 0.50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecayFactor(now.Add(-tc.elapsed), now)
			if got != tc.want {
				t.Fatalf("DecayFactor(-%v) = %v, want %v", tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestLeetcodeContribution(t *testing.T) {
	cases := []struct {
		score float64
		want  float64
	}{
		{0, 0},
		{-100, 0},
		{1500, 5},
		{3000, 10},
		{4500, 10},
	}
	for _, tc := range cases {
		if got := LeetcodeContribution(tc.score); !almostEqual(got, tc.want) {
			t.Errorf("LeetcodeContribution(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestLinkedinContribution(t *testing.T) {
	cases := []struct {
		name  string
		certs []string
		want  float64
	}{
		{"empty", nil, 0},
		{"single architect cert", []string{"AWS Solutions Architect"}, 3.0},
		{"mid tier with count bonus", []string{"Azure Administrator Associate", "CKA: Certified Kubernetes Administrator"}, 4.0},
		{"low tier", []string{"Azure Fundamentals"}, 1.0},
		{"unmatched defaults", []string{"Scrum Master Certification"}, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LinkedinContribution(tc.certs)
			if !almostEqual(got, tc.want) {
				t.Fatalf("LinkedinContribution(%v) = %v, want %v", tc.certs, got, tc.want)
			}
		})
	}
}

func TestLinkedinContributionCaps(t *testing.T) {
	certs := make([]string, 10)
	for i := range certs {
		certs[i] = "AWS Solutions Architect Professional"
	}
	// 10 * 25 = 250 points plus the capped 20 count bonus, capped at 100.
	if got := LinkedinContribution(certs); !almostEqual(got, 10) {
		t.Fatalf("LinkedinContribution(capped) = %v, want 10", got)
	}
}

func TestCalculateSkillScoreBaseWeights(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	skill := Skill{
		Name:               "Go",
		ComplexityScore:    80,
		ConsistencyScore:   70,
		CollaborationScore: 60,
		RecencyScore:       90,
		ImpactScore:        75,
		CertificationBonus: 50,
	}

	b := CalculateSkillScore(skill, 8.0, now.AddDate(0, -1, 0), now, nil)

	// 0.20*80 + 0.15*70 + 0.15*60 + 0.15*90 + 0.15*75 + 0.10*50 + 0.10*80
	if b.RawScore != 63.25 {
		t.Fatalf("RawScore = %v, want 63.25", b.RawScore)
	}
	if b.FinalScore != 63.25 {
		t.Fatalf("FinalScore = %v, want 63.25 (no decay)", b.FinalScore)
	}
	if b.DecayApplied {
		t.Fatal("DecayApplied = true for recent activity")
	}
	if b.CGPAContribution != 80 {
		t.Fatalf("CGPAContribution = %v, want 80", b.CGPAContribution)
	}
	if b.LeetcodeBonus != 0 || b.LinkedinBonus != 0 {
		t.Fatalf("external bonuses set without signals: %v %v", b.LeetcodeBonus, b.LinkedinBonus)
	}
}

func TestCalculateSkillScoreExtendedWeights(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	skill := Skill{
		ComplexityScore:    80,
		ConsistencyScore:   70,
		CollaborationScore: 60,
		RecencyScore:       90,
		ImpactScore:        75,
		CertificationBonus: 50,
	}
	leetcode := 1500.0
	signals := &ExternalSignals{LeetcodeScore: &leetcode}

	b := CalculateSkillScore(skill, 8.0, now.AddDate(0, -1, 0), now, signals)

	// 0.18*80 + 0.13*70 + 0.13*60 + 0.13*90 + 0.13*75 + 0.08*50 + 0.08*80 + 0.07*5
	if b.RawScore != 63.5 {
		t.Fatalf("RawScore = %v, want 63.5", b.RawScore)
	}
	if b.LeetcodeBonus != 5 {
		t.Fatalf("LeetcodeBonus = %v, want 5", b.LeetcodeBonus)
	}
}

func TestCalculateSkillScoreAppliesDecay(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	skill := Skill{ComplexityScore: 100, ConsistencyScore: 100, CollaborationScore: 100, RecencyScore: 100, ImpactScore: 100, CertificationBonus: 100}

	b := CalculateSkillScore(skill, 10.0, now.Add(-8*30*24*time.Hour), now, nil)

	if !b.DecayApplied {
		t.Fatal("DecayApplied = false for 8 months of inactivity")
	}
	if b.RawScore != 100 {
		t.Fatalf("RawScore = %v, want 100", b.RawScore)
	}
	if b.FinalScore != 85 {
		t.Fatalf("FinalScore = %v, want 85", b.FinalScore)
	}
}

func TestCalculateOverallScore(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lastActive := now.AddDate(0, -1, 0)

	if got := CalculateOverallScore(nil, 8.0, lastActive, now, nil); got != 0 {
		t.Fatalf("empty skills overall = %v, want 0", got)
	}

	skills := []Skill{
		{ComplexityScore: 80, ConsistencyScore: 70, CollaborationScore: 60, RecencyScore: 90, ImpactScore: 75, CertificationBonus: 50},
		{ComplexityScore: 80, ConsistencyScore: 70, CollaborationScore: 60, RecencyScore: 90, ImpactScore: 75, CertificationBonus: 50},
	}
	got := CalculateOverallScore(skills, 8.0, lastActive, now, nil)
	if got != 63.25 {
		t.Fatalf("overall = %v, want 63.25", got)
	}
}
