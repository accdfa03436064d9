package risk

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func healthyProfile() Profile {
	return Profile{
		CGPA:             8.5,
		DataCompleteness: 90,
		LastActiveDate:   testNow.AddDate(0, -1, 0),
		GithubUsername:   "someone",
	}
}

func healthyGithub() *GithubSignals {
	activity := testNow.AddDate(0, -1, 0)
	return &GithubSignals{
		PublicRepos:  12,
		TotalStars:   40,
		Languages:    map[string]int{"Go": 10},
		LastActivity: &activity,
	}
}

func healthySkills() []Skill {
	return []Skill{
		{Score: 80, CollaborationScore: 75},
		{Score: 70, CollaborationScore: 65},
	}
}

func hasFactor(a Assessment, want string) bool {
	for _, f := range a.Factors {
		if f == want {
			return true
		}
	}
	return false
}

func TestAssessCleanProfileIsLow(t *testing.T) {
	a := Assess(healthyProfile(), healthySkills(), healthyGithub(), testNow)
	if a.Score != 0 {
		t.Fatalf("score = %d, want 0; factors=%v", a.Score, a.Factors)
	}
	if a.Level != LevelLow {
		t.Fatalf("level = %s, want Low", a.Level)
	}
	if len(a.Factors) != 0 {
		t.Fatalf("factors = %v, want none", a.Factors)
	}
}

func TestAssessInactivity(t *testing.T) {
	p := healthyProfile()
	p.LastActiveDate = testNow.Add(-7 * 30 * 24 * time.Hour)
	a := Assess(p, healthySkills(), healthyGithub(), testNow)
	if !hasFactor(a, "Inactive for over 6 months") {
		t.Fatalf("missing inactivity factor, got %v", a.Factors)
	}
	if a.Score != 25 {
		t.Fatalf("score = %d, want 25", a.Score)
	}

	p.LastActiveDate = testNow.Add(-4 * 30 * 24 * time.Hour)
	a = Assess(p, healthySkills(), healthyGithub(), testNow)
	if !hasFactor(a, "Reduced activity in past 3 months") {
		t.Fatalf("missing reduced-activity factor, got %v", a.Factors)
	}
	if a.Score != 10 {
		t.Fatalf("score = %d, want 10", a.Score)
	}
}

func TestAssessGithubRules(t *testing.T) {
	t.Run("no handle", func(t *testing.T) {
		p := healthyProfile()
		p.GithubUsername = ""
		a := Assess(p, healthySkills(), nil, testNow)
		if !hasFactor(a, "No GitHub profile linked") || a.Score != 10 {
			t.Fatalf("got score=%d factors=%v", a.Score, a.Factors)
		}
	})

	t.Run("fetch failed", func(t *testing.T) {
		a := Assess(healthyProfile(), healthySkills(), nil, testNow)
		if !hasFactor(a, "GitHub activity could not be verified") || a.Score != 15 {
			t.Fatalf("got score=%d factors=%v", a.Score, a.Factors)
		}
	})

	t.Run("empty account", func(t *testing.T) {
		gh := &GithubSignals{PublicRepos: 0, LastActivity: nil}
		a := Assess(healthyProfile(), healthySkills(), gh, testNow)
		if !hasFactor(a, "No public repositories") {
			t.Fatalf("missing no-repos factor, got %v", a.Factors)
		}
		if !hasFactor(a, "No GitHub activity within 6 months") {
			t.Fatalf("missing stale-activity factor, got %v", a.Factors)
		}
		if a.Score != 40 {
			t.Fatalf("score = %d, want 40", a.Score)
		}
	})
}

func TestAssessSkillShape(t *testing.T) {
	t.Run("high variance", func(t *testing.T) {
		skills := []Skill{
			{Score: 95, CollaborationScore: 70},
			{Score: 30, CollaborationScore: 70},
		}
		a := Assess(healthyProfile(), skills, healthyGithub(), testNow)
		if !hasFactor(a, "High variance in skill scores (potential spikes)") {
			t.Fatalf("missing variance factor, got %v", a.Factors)
		}
		// Gap of 65 also trips single skill dominance.
		if !hasFactor(a, "Single skill dominance detected") {
			t.Fatalf("missing dominance factor, got %v", a.Factors)
		}
	})

	t.Run("low collaboration", func(t *testing.T) {
		skills := []Skill{
			{Score: 70, CollaborationScore: 40},
			{Score: 68, CollaborationScore: 45},
		}
		a := Assess(healthyProfile(), skills, healthyGithub(), testNow)
		if !hasFactor(a, "Low collaboration metrics") || a.Score != 20 {
			t.Fatalf("got score=%d factors=%v", a.Score, a.Factors)
		}
	})
}

func TestAssessCGPA(t *testing.T) {
	p := healthyProfile()
	p.CGPA = 3.5
	a := Assess(p, healthySkills(), healthyGithub(), testNow)
	if !hasFactor(a, "Extremely low CGPA") || a.Score != 30 {
		t.Fatalf("got score=%d factors=%v", a.Score, a.Factors)
	}

	p.CGPA = 4.5
	a = Assess(p, healthySkills(), healthyGithub(), testNow)
	if !hasFactor(a, "Below average CGPA") || a.Score != 15 {
		t.Fatalf("got score=%d factors=%v", a.Score, a.Factors)
	}
}

func TestAssessDataCompleteness(t *testing.T) {
	p := healthyProfile()
	p.DataCompleteness = 50
	a := Assess(p, healthySkills(), healthyGithub(), testNow)
	if !hasFactor(a, "Low data completeness") || a.Score != 15 {
		t.Fatalf("got score=%d factors=%v", a.Score, a.Factors)
	}
}

func TestAssessTiers(t *testing.T) {
	// 15 (below average CGPA) + 15 (low completeness) = 30: Medium.
	p := healthyProfile()
	p.CGPA = 4.5
	p.DataCompleteness = 50
	a := Assess(p, healthySkills(), healthyGithub(), testNow)
	if a.Score != 30 || a.Level != LevelMedium {
		t.Fatalf("score=%d level=%s, want 30/Medium", a.Score, a.Level)
	}

	// Add 7 months of inactivity (+25) and a missing handle (+10): High.
	p.LastActiveDate = testNow.Add(-7 * 30 * 24 * time.Hour)
	p.GithubUsername = ""
	a = Assess(p, healthySkills(), nil, testNow)
	if a.Score != 65 || a.Level != LevelHigh {
		t.Fatalf("score=%d level=%s, want 65/High", a.Score, a.Level)
	}
}

func TestVariance(t *testing.T) {
	skills := []Skill{{Score: 50}, {Score: 70}}
	if got := variance(skills); got != 100 {
		t.Fatalf("variance = %v, want 100", got)
	}
}
