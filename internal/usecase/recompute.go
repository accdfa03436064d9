package usecase

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/matching"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/risk"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/scoring"
	"github.com/Chidwan3578/Veridex-Local/internal/enrichment"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
)

func scoringSkills(skills []candidate.Skill) []scoring.Skill {
	out := make([]scoring.Skill, 0, len(skills))
	for _, s := range skills {
		out = append(out, scoring.Skill{
			Name:               s.Name,
			Score:              s.Score,
			ComplexityScore:    s.ComplexityScore,
			ConsistencyScore:   s.ConsistencyScore,
			CollaborationScore: s.CollaborationScore,
			RecencyScore:       s.RecencyScore,
			ImpactScore:        s.ImpactScore,
			CertificationBonus: s.CertificationBonus,
		})
	}
	return out
}

func riskSkills(skills []candidate.Skill) []risk.Skill {
	out := make([]risk.Skill, 0, len(skills))
	for _, s := range skills {
		out = append(out, risk.Skill{Score: s.Score, CollaborationScore: s.CollaborationScore})
	}
	return out
}

func matchingSkills(skills []candidate.Skill) []matching.Skill {
	out := make([]matching.Skill, 0, len(skills))
	for _, s := range skills {
		out = append(out, matching.Skill{
			ComplexityScore:    s.ComplexityScore,
			ConsistencyScore:   s.ConsistencyScore,
			CollaborationScore: s.CollaborationScore,
			RecencyScore:       s.RecencyScore,
			ImpactScore:        s.ImpactScore,
		})
	}
	return out
}

func scoringSignals(sig *enrichment.Signals) *scoring.ExternalSignals {
	if sig == nil {
		return nil
	}
	if sig.LeetcodeScore == nil && len(sig.Certifications) == 0 {
		return nil
	}
	return &scoring.ExternalSignals{
		LeetcodeScore:  sig.LeetcodeScore,
		Certifications: sig.Certifications,
	}
}

func riskProfile(p candidate.Profile) risk.Profile {
	return risk.Profile{
		CGPA:             p.CGPA,
		DataCompleteness: p.DataCompleteness,
		LastActiveDate:   p.LastActiveDate,
		GithubUsername:   p.GithubUsername,
	}
}

func riskGithub(sig *enrichment.Signals) *risk.GithubSignals {
	if sig == nil || sig.Github == nil {
		return nil
	}
	return &risk.GithubSignals{
		PublicRepos:  sig.Github.PublicRepos,
		TotalStars:   sig.Github.TotalStars,
		Languages:    sig.Github.Languages,
		LastActivity: sig.Github.LastActivity,
	}
}

// recomputer refreshes a candidate's cached overall score and risk label
// after any profile or skill mutation.
type recomputer struct {
	profiles repository.CandidateProfileRepository
	skills   repository.SkillRepository
	enricher *enrichment.Enricher
	logger   *log.Logger
	now      func() time.Time
}

func (r *recomputer) recompute(ctx context.Context, userID uuid.UUID) error {
	profile, err := r.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	skills, err := r.skills.FindByCandidateID(ctx, userID)
	if err != nil {
		return err
	}

	var signals *enrichment.Signals
	if r.enricher != nil {
		signals = r.enricher.EnrichOne(ctx, profile)
	}

	now := r.now()
	overall := scoring.CalculateOverallScore(scoringSkills(skills), profile.CGPA, profile.LastActiveDate, now, scoringSignals(signals))
	assessment := risk.Assess(riskProfile(profile), riskSkills(skills), riskGithub(signals), now)

	if err := r.profiles.UpdateDerived(ctx, userID, overall, string(assessment.Level)); err != nil {
		return err
	}
	if r.logger != nil {
		r.logger.Printf("Recompute | candidate=%s overall=%.2f risk=%s factors=%d", userID, overall, assessment.Level, len(assessment.Factors))
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
