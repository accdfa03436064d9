package risk

import (
	"sort"
	"time"
)

type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Tier breakpoints: >=60 High, >=30 Medium, else Low.
const (
	highThreshold   = 60
	mediumThreshold = 30
)

type Assessment struct {
	Level   Level
	Factors []string
	Score   int
}

// Profile is the slice of a candidate profile the rule battery inspects.
type Profile struct {
	CGPA             float64
	DataCompleteness float64
	LastActiveDate   time.Time
	GithubUsername   string
}

type Skill struct {
	Score              float64
	CollaborationScore float64
}

// GithubSignals is the best-effort enrichment record. A nil pointer means
// the fetch failed or was never attempted; the rules distinguish that from
// a profile with no handle at all.
type GithubSignals struct {
	PublicRepos  int
	TotalStars   int
	Languages    map[string]int
	LastActivity *time.Time
}

const monthDuration = 30 * 24 * time.Hour

// Assess runs every rule and accumulates a risk score plus human-readable
// factors. Pure function: no triggers means score 0, level Low.
func Assess(profile Profile, skills []Skill, github *GithubSignals, now time.Time) Assessment {
	factors := make([]string, 0, 8)
	score := 0

	add := func(points int, factor string) {
		score += points
		factors = append(factors, factor)
	}

	monthsInactive := float64(now.Sub(profile.LastActiveDate)) / float64(monthDuration)
	if monthsInactive > 6 {
		add(25, "Inactive for over 6 months")
	} else if monthsInactive > 3 {
		add(10, "Reduced activity in past 3 months")
	}

	if profile.GithubUsername == "" {
		add(10, "No GitHub profile linked")
	} else if github == nil {
		add(15, "GitHub activity could not be verified")
	} else {
		if github.PublicRepos == 0 {
			add(20, "No public repositories")
		}
		if github.LastActivity == nil || now.Sub(*github.LastActivity) > 6*monthDuration {
			add(20, "No GitHub activity within 6 months")
		}
	}

	if len(skills) > 0 {
		if variance(skills) > 300 {
			add(20, "High variance in skill scores (potential spikes)")
		}
		if meanCollaboration(skills) < 50 {
			add(20, "Low collaboration metrics")
		}
	}

	// Thresholds on the canonical 0-10 scale.
	if profile.CGPA < 4.0 {
		add(30, "Extremely low CGPA")
	} else if profile.CGPA < 5.0 {
		add(15, "Below average CGPA")
	}

	if len(skills) > 1 {
		scores := make([]float64, len(skills))
		for i, s := range skills {
			scores[i] = s.Score
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
		if scores[0]-scores[1] > 30 {
			add(15, "Single skill dominance detected")
		}
	}

	if profile.DataCompleteness < 60 {
		add(15, "Low data completeness")
	}

	level := LevelLow
	if score >= highThreshold {
		level = LevelHigh
	} else if score >= mediumThreshold {
		level = LevelMedium
	}

	return Assessment{Level: level, Factors: factors, Score: score}
}

// variance is the population variance of per-skill overall scores.
func variance(skills []Skill) float64 {
	mean := 0.0
	for _, s := range skills {
		mean += s.Score
	}
	mean /= float64(len(skills))

	v := 0.0
	for _, s := range skills {
		d := s.Score - mean
		v += d * d
	}
	return v / float64(len(skills))
}

func meanCollaboration(skills []Skill) float64 {
	sum := 0.0
	for _, s := range skills {
		sum += s.CollaborationScore
	}
	return sum / float64(len(skills))
}
