package scoring

import (
	"math"
	"strings"
	"time"
)

// DefaultCGPAScale is the canonical academic scale. Profiles store CGPA on
// 0-10; callers converting from other scales pass the scale explicitly.
const DefaultCGPAScale = 10.0

const monthDuration = 30 * 24 * time.Hour

// Skill carries the six raw dimension scores of one tracked skill.
// Values are conventionally 0-100 but the engine does not clamp them.
type Skill struct {
	Name               string
	Score              float64
	ComplexityScore    float64
	ConsistencyScore   float64
	CollaborationScore float64
	RecencyScore       float64
	ImpactScore        float64
	CertificationBonus float64
}

// ExternalSignals holds the optional credential enrichment inputs. Either
// field degrades to a zero contribution when absent.
type ExternalSignals struct {
	LeetcodeScore  *float64
	Certifications []string
}

type Breakdown struct {
	Complexity       float64
	Consistency      float64
	Collaboration    float64
	Recency          float64
	Impact           float64
	Certification    float64
	CGPAContribution float64
	LeetcodeBonus    float64
	LinkedinBonus    float64
	DecayApplied     bool
	RawScore         float64
	FinalScore       float64
}

// NormalizeCGPA maps a CGPA on the given scale onto 0-100.
func NormalizeCGPA(cgpa float64, scale float64) float64 {
	if scale == 0 {
		return 0
	}
	return (cgpa / scale) * 100
}

// DecayFactor is a step function over whole months of inactivity. The
// boundaries are inclusive: exactly six elapsed months still yields 1.0.
func DecayFactor(lastActive time.Time, now time.Time) float64 {
	months := float64(now.Sub(lastActive)) / float64(monthDuration)
	switch {
	case months <= 6:
		return 1.0
	case months <= 12:
		return 0.85
	case months <= 18:
		return 0.70
	default:
		return 0.50
	}
}

// Base weight table: seven terms summing to 1.0. Used when a candidate has
// no external credential data.
const (
	weightComplexity    = 0.20
	weightConsistency   = 0.15
	weightCollaboration = 0.15
	weightRecency       = 0.15
	weightImpact        = 0.15
	weightCertification = 0.10
	weightCGPA          = 0.10
)

// Extended weight table: nine terms summing to 1.0. Used when any external
// signal is present. The LeetCode and LinkedIn contributions are on a 0-10
// scale, so they act as small verified-credential bonuses rather than full
// dimensions.
const (
	extWeightComplexity    = 0.18
	extWeightConsistency   = 0.13
	extWeightCollaboration = 0.13
	extWeightRecency       = 0.13
	extWeightImpact        = 0.13
	extWeightCertification = 0.08
	extWeightCGPA          = 0.08
	extWeightLeetcode      = 0.07
	extWeightLinkedin      = 0.07
)

const maxLeetcodeScore = 3000.0

// LeetcodeContribution normalizes a raw LeetCode score onto 0-10.
func LeetcodeContribution(score float64) float64 {
	if score <= 0 {
		return 0
	}
	ratio := score / maxLeetcodeScore
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 10
}

// Certification keyword buckets, highest specificity first. An unmatched
// certification still earns the default points: a verified credential of any
// kind carries some signal.
var (
	certHighKeywords = []string{"architect", "specialty", "professional", "expert"}
	certMidKeywords  = []string{"associate", "administrator", "developer", "cka"}
	certLowKeywords  = []string{"fundamentals", "basics"}
)

const (
	certHighPoints    = 25.0
	certMidPoints     = 15.0
	certLowPoints     = 5.0
	certDefaultPoints = 10.0
	certCountBonusPer = 5.0
	certCountBonusCap = 20.0
	certTotalCap      = 100.0
)

func scoreCertification(name string) float64 {
	lower := strings.ToLower(name)
	for _, kw := range certHighKeywords {
		if strings.Contains(lower, kw) {
			return certHighPoints
		}
	}
	for _, kw := range certMidKeywords {
		if strings.Contains(lower, kw) {
			return certMidPoints
		}
	}
	for _, kw := range certLowKeywords {
		if strings.Contains(lower, kw) {
			return certLowPoints
		}
	}
	return certDefaultPoints
}

// LinkedinContribution keyword-scores a certification list, adds a capped
// count bonus, caps the total and renormalizes onto 0-10.
func LinkedinContribution(certifications []string) float64 {
	if len(certifications) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range certifications {
		if strings.TrimSpace(c) == "" {
			continue
		}
		total += scoreCertification(c)
	}
	countBonus := certCountBonusPer * float64(len(certifications))
	if countBonus > certCountBonusCap {
		countBonus = certCountBonusCap
	}
	total += countBonus
	if total > certTotalCap {
		total = certTotalCap
	}
	return total / 10
}

func (s *ExternalSignals) present() bool {
	if s == nil {
		return false
	}
	return s.LeetcodeScore != nil || len(s.Certifications) > 0
}

// CalculateSkillScore computes the credibility score of one skill. All
// inputs are defensively defaulted; there is no failure path.
func CalculateSkillScore(skill Skill, cgpa float64, lastActive time.Time, now time.Time, signals *ExternalSignals) Breakdown {
	normalizedCGPA := NormalizeCGPA(cgpa, DefaultCGPAScale)
	decay := DecayFactor(lastActive, now)

	b := Breakdown{
		Complexity:       skill.ComplexityScore,
		Consistency:      skill.ConsistencyScore,
		Collaboration:    skill.CollaborationScore,
		Recency:          skill.RecencyScore,
		Impact:           skill.ImpactScore,
		Certification:    skill.CertificationBonus,
		CGPAContribution: normalizedCGPA,
		DecayApplied:     decay < 1.0,
	}

	var raw float64
	if signals.present() {
		var leetcode float64
		if signals.LeetcodeScore != nil {
			leetcode = LeetcodeContribution(*signals.LeetcodeScore)
		}
		linkedin := LinkedinContribution(signals.Certifications)
		b.LeetcodeBonus = leetcode
		b.LinkedinBonus = linkedin

		raw = extWeightComplexity*skill.ComplexityScore +
			extWeightConsistency*skill.ConsistencyScore +
			extWeightCollaboration*skill.CollaborationScore +
			extWeightRecency*skill.RecencyScore +
			extWeightImpact*skill.ImpactScore +
			extWeightCertification*skill.CertificationBonus +
			extWeightCGPA*normalizedCGPA +
			extWeightLeetcode*leetcode +
			extWeightLinkedin*linkedin
	} else {
		raw = weightComplexity*skill.ComplexityScore +
			weightConsistency*skill.ConsistencyScore +
			weightCollaboration*skill.CollaborationScore +
			weightRecency*skill.RecencyScore +
			weightImpact*skill.ImpactScore +
			weightCertification*skill.CertificationBonus +
			weightCGPA*normalizedCGPA
	}

	b.RawScore = round2(raw)
	b.FinalScore = round2(raw * decay)
	return b
}

// CalculateOverallScore is the arithmetic mean of per-skill final scores,
// zero for an empty skill list.
func CalculateOverallScore(skills []Skill, cgpa float64, lastActive time.Time, now time.Time, signals *ExternalSignals) float64 {
	if len(skills) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range skills {
		sum += CalculateSkillScore(s, cgpa, lastActive, now, signals).FinalScore
	}
	return round2(sum / float64(len(skills)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
