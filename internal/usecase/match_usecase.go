package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/job"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
)

// MatchView joins a persisted result with the candidate's display name.
type MatchView struct {
	Result        job.MatchResult
	CandidateName string
}

type MatchUsecase interface {
	ListForJob(ctx context.Context, recruiterID, jobID uuid.UUID) (job.Posting, []MatchView, error)
}

type Match struct {
	users   user.Repository
	jobs    repository.JobRepository
	matches repository.MatchResultRepository
}

func NewMatchUsecase(users user.Repository, jobs repository.JobRepository, matches repository.MatchResultRepository) *Match {
	return &Match{users: users, jobs: jobs, matches: matches}
}

func (u *Match) ListForJob(ctx context.Context, recruiterID, jobID uuid.UUID) (job.Posting, []MatchView, error) {
	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, nil, ErrJobNotFound
		}
		return job.Posting{}, nil, ErrInternal
	}
	if posting.RecruiterID != recruiterID {
		return job.Posting{}, nil, ErrJobForbidden
	}

	results, err := u.matches.FindByJobID(ctx, jobID)
	if err != nil {
		return job.Posting{}, nil, ErrInternal
	}

	views := make([]MatchView, 0, len(results))
	for _, m := range results {
		name := ""
		if usr, err := u.users.GetByID(ctx, m.CandidateID); err == nil {
			name = usr.Name
		}
		views = append(views, MatchView{Result: m, CandidateName: name})
	}
	return posting, views, nil
}
