package matching

import (
	"fmt"
	"strconv"
	"strings"
)

// Jobs persist each weight field as text: either a priority tier literal
// ("critical" | "important" | "optional") or a decimal fraction. WeightSpec
// is the tagged union covering both representations.

type TierLevel string

const (
	TierCritical  TierLevel = "critical"
	TierImportant TierLevel = "important"
	TierOptional  TierLevel = "optional"
)

// Tier multipliers express relative priority; they are normalized against
// the multiplier sum over all active terms before use, so the effective
// weights still sum to 1.
func (t TierLevel) multiplier() float64 {
	switch t {
	case TierCritical:
		return 2.0
	case TierImportant:
		return 1.3
	default:
		return 1.0
	}
}

type WeightKind int

const (
	WeightNumeric WeightKind = iota
	WeightTier
)

type WeightSpec struct {
	Kind     WeightKind
	Fraction float64
	Tier     TierLevel
}

func Numeric(fraction float64) WeightSpec {
	return WeightSpec{Kind: WeightNumeric, Fraction: fraction}
}

func Tier(level TierLevel) WeightSpec {
	return WeightSpec{Kind: WeightTier, Tier: level}
}

// ParseWeightSpec accepts a tier literal or a decimal fraction.
func ParseWeightSpec(raw string) (WeightSpec, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return WeightSpec{}, fmt.Errorf("empty weight")
	}
	switch TierLevel(s) {
	case TierCritical, TierImportant, TierOptional:
		return Tier(TierLevel(s)), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return WeightSpec{}, fmt.Errorf("invalid weight %q: %w", raw, err)
	}
	if f < 0 {
		return WeightSpec{}, fmt.Errorf("negative weight %q", raw)
	}
	return Numeric(f), nil
}

// String renders the stored form.
func (w WeightSpec) String() string {
	if w.Kind == WeightTier {
		return string(w.Tier)
	}
	return strconv.FormatFloat(w.Fraction, 'f', -1, 64)
}

// JobWeights holds the six weight slots of a posting: five skill dimensions
// plus CGPA. A posting mixes kinds at its own peril; in practice recruiters
// pick one scheme per job.
type JobWeights struct {
	Complexity    WeightSpec
	Consistency   WeightSpec
	Collaboration WeightSpec
	Recency       WeightSpec
	Impact        WeightSpec
	CGPA          WeightSpec
}

// ResolvedWeights are plain fractions ready for the weighted sum.
type ResolvedWeights struct {
	Complexity    float64
	Consistency   float64
	Collaboration float64
	Recency       float64
	Impact        float64
	CGPA          float64
}

// Resolve turns a JobWeights into effective fractions. Numeric specs pass
// through untouched. Tier specs are normalized: each multiplier is divided
// by the sum of all tier multipliers, scaled by whatever weight mass the
// numeric specs have not claimed. A fully tiered job therefore resolves to
// fractions summing to 1 while preserving relative priority.
func Resolve(w JobWeights) ResolvedWeights {
	specs := [6]WeightSpec{w.Complexity, w.Consistency, w.Collaboration, w.Recency, w.Impact, w.CGPA}

	numericSum := 0.0
	tierSum := 0.0
	for _, s := range specs {
		if s.Kind == WeightTier {
			tierSum += s.Tier.multiplier()
		} else {
			numericSum += s.Fraction
		}
	}

	tierMass := 1.0 - numericSum
	if tierMass < 0 {
		tierMass = 0
	}

	var out [6]float64
	for i, s := range specs {
		if s.Kind == WeightTier {
			if tierSum > 0 {
				out[i] = tierMass * s.Tier.multiplier() / tierSum
			}
		} else {
			out[i] = s.Fraction
		}
	}

	return ResolvedWeights{
		Complexity:    out[0],
		Consistency:   out[1],
		Collaboration: out[2],
		Recency:       out[3],
		Impact:        out[4],
		CGPA:          out[5],
	}
}
