package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/job"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/matching"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/risk"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"
	"github.com/Chidwan3578/Veridex-Local/internal/enrichment"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrInvalidJob   = errors.New("invalid job input")
	ErrJobForbidden = errors.New("job belongs to another recruiter")
)

// MatchNotifier receives the re-ranked result set after a matching pass so
// connected dashboards can refresh without polling.
type MatchNotifier interface {
	MatchesUpdated(jobID uuid.UUID, results []job.MatchResult)
}

type CreateJobInput struct {
	Title         string
	Description   string
	Weights       matching.JobWeights
	MinThreshold  float64
	CGPAThreshold *float64
	CGPACondition matching.CGPACondition
	MaxApplicants int
}

type JobUsecase interface {
	Create(ctx context.Context, recruiterID uuid.UUID, in CreateJobInput) (job.Posting, []job.MatchResult, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Posting, error)
	ListAll(ctx context.Context) ([]job.Posting, error)
	Get(ctx context.Context, id uuid.UUID) (job.Posting, error)
	Rematch(ctx context.Context, recruiterID, jobID uuid.UUID) ([]job.MatchResult, error)
}

type Job struct {
	users    user.Repository
	profiles repository.CandidateProfileRepository
	skills   repository.SkillRepository
	jobs     repository.JobRepository
	matches  repository.MatchResultRepository
	enricher *enrichment.Enricher
	notifier MatchNotifier
	logger   *log.Logger
	now      func() time.Time
}

func NewJobUsecase(
	users user.Repository,
	profiles repository.CandidateProfileRepository,
	skills repository.SkillRepository,
	jobs repository.JobRepository,
	matches repository.MatchResultRepository,
	enricher *enrichment.Enricher,
	notifier MatchNotifier,
	logger *log.Logger,
) *Job {
	return &Job{
		users:    users,
		profiles: profiles,
		skills:   skills,
		jobs:     jobs,
		matches:  matches,
		enricher: enricher,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create stores the posting and immediately runs the full matching pass over
// every candidate, replacing any prior results for the job.
func (u *Job) Create(ctx context.Context, recruiterID uuid.UUID, in CreateJobInput) (job.Posting, []job.MatchResult, error) {
	if err := validateJobInput(in); err != nil {
		return job.Posting{}, nil, err
	}

	posting := job.Posting{
		ID:            uuid.New(),
		RecruiterID:   recruiterID,
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Weights:       in.Weights,
		MinThreshold:  in.MinThreshold,
		CGPAThreshold: in.CGPAThreshold,
		CGPACondition: in.CGPACondition,
		MaxApplicants: in.MaxApplicants,
		CreatedAt:     u.now(),
	}
	if err := u.jobs.Create(ctx, posting); err != nil {
		return job.Posting{}, nil, ErrInternal
	}

	results, err := u.runMatching(ctx, posting)
	if err != nil {
		return job.Posting{}, nil, err
	}
	return posting, results, nil
}

func (u *Job) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Posting, error) {
	postings, err := u.jobs.FindByRecruiterID(ctx, recruiterID)
	if err != nil {
		return nil, ErrInternal
	}
	return postings, nil
}

// ListAll backs the candidate-facing job board.
func (u *Job) ListAll(ctx context.Context) ([]job.Posting, error) {
	postings, err := u.jobs.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return postings, nil
}

func (u *Job) Get(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	posting, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return posting, nil
}

// Rematch reruns the matching pass for an existing posting, picking up skill
// and profile changes made since the last pass.
func (u *Job) Rematch(ctx context.Context, recruiterID, jobID uuid.UUID) ([]job.MatchResult, error) {
	posting, err := u.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if posting.RecruiterID != recruiterID {
		return nil, ErrJobForbidden
	}
	return u.runMatching(ctx, posting)
}

func (u *Job) runMatching(ctx context.Context, posting job.Posting) ([]job.MatchResult, error) {
	profiles, err := u.profiles.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	candidates, err := u.users.ListByRole(ctx, user.RoleCandidate)
	if err != nil {
		return nil, ErrInternal
	}
	names := make(map[uuid.UUID]string, len(candidates))
	for _, c := range candidates {
		names[c.ID] = c.Name
	}

	var signals map[uuid.UUID]*enrichment.Signals
	if u.enricher != nil {
		signals = u.enricher.EnrichAll(ctx, profiles)
	}

	now := u.now()
	pool := make([]matching.Candidate, 0, len(profiles))
	for _, p := range profiles {
		skills, err := u.skills.FindByCandidateID(ctx, p.UserID)
		if err != nil {
			return nil, ErrInternal
		}
		assessment := risk.Assess(riskProfile(p), riskSkills(skills), riskGithub(signals[p.UserID]), now)
		pool = append(pool, matching.Candidate{
			ID:        p.UserID,
			Name:      names[p.UserID],
			CGPA:      p.CGPA,
			Skills:    matchingSkills(skills),
			RiskLevel: string(assessment.Level),
		})
	}

	ranked := matching.MatchCandidates(matchingJob(posting), pool)

	results := make([]job.MatchResult, 0, len(ranked))
	for _, m := range ranked {
		results = append(results, job.MatchResult{
			ID:          uuid.New(),
			JobID:       posting.ID,
			CandidateID: m.CandidateID,
			FitScore:    m.FitScore,
			RiskLevel:   m.RiskLevel,
			GapSummary:  m.GapSummary,
			Breakdown:   m.Breakdown,
			CreatedAt:   now,
		})
	}

	if err := u.matches.ReplaceForJob(ctx, posting.ID, results); err != nil {
		return nil, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("Matching | job=%s candidates=%d matched=%d", posting.ID, len(pool), len(results))
	}
	if u.notifier != nil {
		u.notifier.MatchesUpdated(posting.ID, results)
	}
	return results, nil
}

func matchingJob(p job.Posting) matching.Job {
	return matching.Job{
		Weights:       p.Weights,
		MinThreshold:  p.MinThreshold,
		CGPAThreshold: p.CGPAThreshold,
		CGPACondition: p.CGPACondition,
		MaxApplicants: p.MaxApplicants,
	}
}

func validateJobInput(in CreateJobInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidJob
	}
	if in.MinThreshold < 0 || in.MinThreshold > 100 {
		return ErrInvalidJob
	}
	if in.CGPAThreshold != nil {
		if *in.CGPAThreshold < 0 || *in.CGPAThreshold > 10 {
			return ErrInvalidJob
		}
		if in.CGPACondition != matching.CGPAAbove && in.CGPACondition != matching.CGPABelow {
			return ErrInvalidJob
		}
	}
	if in.MaxApplicants < 0 {
		return ErrInvalidJob
	}
	for _, w := range []matching.WeightSpec{
		in.Weights.Complexity, in.Weights.Consistency, in.Weights.Collaboration,
		in.Weights.Recency, in.Weights.Impact, in.Weights.CGPA,
	} {
		if w.Kind == matching.WeightNumeric && (w.Fraction < 0 || w.Fraction > 1) {
			return ErrInvalidJob
		}
	}
	return nil
}
