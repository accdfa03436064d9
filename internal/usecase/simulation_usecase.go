package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/matching"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
)

type SimulationInput struct {
	Weights      matching.JobWeights
	MinThreshold float64
}

type SimulationUsecase interface {
	Simulate(ctx context.Context, jobID uuid.UUID, in SimulationInput) ([]matching.CandidateMatch, error)
}

// Simulation re-ranks a job's persisted match snapshots under hypothetical
// weights without touching stored results. The candidate pool is frozen to
// whoever survived the original pass; the CGPA gate is re-applied from the
// live profile so a gated candidate cannot sneak back in through a snapshot.
type Simulation struct {
	users    user.Repository
	jobs     repository.JobRepository
	matches  repository.MatchResultRepository
	profiles repository.CandidateProfileRepository
}

func NewSimulationUsecase(users user.Repository, jobs repository.JobRepository, matches repository.MatchResultRepository, profiles repository.CandidateProfileRepository) *Simulation {
	return &Simulation{users: users, jobs: jobs, matches: matches, profiles: profiles}
}

func (u *Simulation) Simulate(ctx context.Context, jobID uuid.UUID, in SimulationInput) ([]matching.CandidateMatch, error) {
	if in.MinThreshold < 0 || in.MinThreshold > 100 {
		return nil, ErrInvalidInput
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	results, err := u.matches.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}

	gate := matching.Job{
		CGPAThreshold: posting.CGPAThreshold,
		CGPACondition: posting.CGPACondition,
	}

	snapshots := make([]matching.SimulationCandidate, 0, len(results))
	for _, m := range results {
		if posting.CGPAThreshold != nil {
			profile, err := u.profiles.FindByUserID(ctx, m.CandidateID)
			if err == nil && !matching.PassesCGPAGate(gate, profile.CGPA) {
				continue
			}
		}
		name := ""
		if usr, err := u.users.GetByID(ctx, m.CandidateID); err == nil {
			name = usr.Name
		}
		snapshots = append(snapshots, matching.SimulationCandidate{
			CandidateID:   m.CandidateID,
			CandidateName: name,
			RiskLevel:     m.RiskLevel,
			GapSummary:    m.GapSummary,
			Breakdown:     m.Breakdown,
		})
	}

	return matching.SimulateRanking(snapshots, in.Weights, in.MinThreshold), nil
}
