package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/scoring"
	"github.com/Chidwan3578/Veridex-Local/internal/enrichment"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
)

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSkillForbidden  = errors.New("skill belongs to another candidate")
	ErrInvalidSkill    = errors.New("invalid skill input")
	ErrDuplicateSkill  = errors.New("skill already tracked")
	ErrInvalidDimScore = errors.New("dimension scores must be between 0 and 100")
)

type SkillInput struct {
	Name               string
	ComplexityScore    float64
	ConsistencyScore   float64
	CollaborationScore float64
	RecencyScore       float64
	ImpactScore        float64
	CertificationBonus float64
}

// SkillView pairs a stored skill with its live score breakdown and its
// monthly trend, the shape the skills dashboard renders.
type SkillView struct {
	Skill     candidate.Skill
	Breakdown scoring.Breakdown
	History   []candidate.HistoryPoint
}

type SkillUsecase interface {
	List(ctx context.Context, candidateID uuid.UUID) ([]SkillView, error)
	Add(ctx context.Context, candidateID uuid.UUID, in SkillInput) (SkillView, error)
	Update(ctx context.Context, candidateID, skillID uuid.UUID, in SkillInput) (SkillView, error)
	Delete(ctx context.Context, candidateID, skillID uuid.UUID) error
}

type Skill struct {
	profiles repository.CandidateProfileRepository
	skills   repository.SkillRepository
	enricher *enrichment.Enricher
	rec      *recomputer
	now      func() time.Time
}

func NewSkillUsecase(profiles repository.CandidateProfileRepository, skills repository.SkillRepository, enricher *enrichment.Enricher, logger *log.Logger) *Skill {
	now := func() time.Time { return time.Now().UTC() }
	return &Skill{
		profiles: profiles,
		skills:   skills,
		enricher: enricher,
		rec: &recomputer{
			profiles: profiles,
			skills:   skills,
			enricher: enricher,
			logger:   logger,
			now:      now,
		},
		now: now,
	}
}

func (u *Skill) List(ctx context.Context, candidateID uuid.UUID) ([]SkillView, error) {
	profile, err := u.profiles.FindByUserID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}
	skills, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}

	var signals *enrichment.Signals
	if u.enricher != nil {
		signals = u.enricher.EnrichOne(ctx, profile)
	}
	extSignals := scoringSignals(signals)
	now := u.now()

	out := make([]SkillView, 0, len(skills))
	for _, s := range skills {
		history, err := u.skills.FindHistory(ctx, s.ID)
		if err != nil {
			return nil, ErrInternal
		}
		breakdown := scoring.CalculateSkillScore(scoringSkill(s), profile.CGPA, profile.LastActiveDate, now, extSignals)
		out = append(out, SkillView{Skill: s, Breakdown: breakdown, History: history})
	}
	return out, nil
}

func (u *Skill) Add(ctx context.Context, candidateID uuid.UUID, in SkillInput) (SkillView, error) {
	if err := validateSkillInput(in); err != nil {
		return SkillView{}, err
	}

	existing, err := u.skills.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return SkillView{}, ErrInternal
	}
	name := strings.TrimSpace(in.Name)
	for _, s := range existing {
		if strings.EqualFold(s.Name, name) {
			return SkillView{}, ErrDuplicateSkill
		}
	}

	skill := candidate.Skill{
		ID:                 uuid.New(),
		CandidateID:        candidateID,
		Name:               name,
		Score:              dimensionMean(in),
		ComplexityScore:    in.ComplexityScore,
		ConsistencyScore:   in.ConsistencyScore,
		CollaborationScore: in.CollaborationScore,
		RecencyScore:       in.RecencyScore,
		ImpactScore:        in.ImpactScore,
		CertificationBonus: in.CertificationBonus,
	}
	created, err := u.skills.Create(ctx, skill)
	if err != nil {
		return SkillView{}, ErrInternal
	}

	point := candidate.HistoryPoint{
		ID:      uuid.New(),
		SkillID: created.ID,
		Month:   u.now().Format("Jan"),
		Score:   created.Score,
	}
	if err := u.skills.AppendHistory(ctx, point); err != nil {
		return SkillView{}, ErrInternal
	}

	return u.finishMutation(ctx, candidateID, created)
}

func (u *Skill) Update(ctx context.Context, candidateID, skillID uuid.UUID, in SkillInput) (SkillView, error) {
	if err := validateSkillInput(in); err != nil {
		return SkillView{}, err
	}

	current, err := u.skills.FindByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillView{}, ErrSkillNotFound
		}
		return SkillView{}, ErrInternal
	}
	if current.CandidateID != candidateID {
		return SkillView{}, ErrSkillForbidden
	}

	current.Score = dimensionMean(in)
	current.ComplexityScore = in.ComplexityScore
	current.ConsistencyScore = in.ConsistencyScore
	current.CollaborationScore = in.CollaborationScore
	current.RecencyScore = in.RecencyScore
	current.ImpactScore = in.ImpactScore
	current.CertificationBonus = in.CertificationBonus

	updated, err := u.skills.Update(ctx, current)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillView{}, ErrSkillNotFound
		}
		return SkillView{}, ErrInternal
	}

	point := candidate.HistoryPoint{
		ID:      uuid.New(),
		SkillID: updated.ID,
		Month:   u.now().Format("Jan"),
		Score:   updated.Score,
	}
	if err := u.skills.AppendHistory(ctx, point); err != nil {
		return SkillView{}, ErrInternal
	}

	return u.finishMutation(ctx, candidateID, updated)
}

func (u *Skill) Delete(ctx context.Context, candidateID, skillID uuid.UUID) error {
	if err := u.skills.Delete(ctx, skillID, candidateID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillNotFound):
			return ErrSkillNotFound
		case errors.Is(err, repository.ErrSkillForbidden):
			return ErrSkillForbidden
		default:
			return ErrInternal
		}
	}
	if err := u.rec.recompute(ctx, candidateID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Skill) finishMutation(ctx context.Context, candidateID uuid.UUID, skill candidate.Skill) (SkillView, error) {
	if err := u.rec.recompute(ctx, candidateID); err != nil {
		return SkillView{}, ErrInternal
	}

	profile, err := u.profiles.FindByUserID(ctx, candidateID)
	if err != nil {
		return SkillView{}, ErrInternal
	}
	history, err := u.skills.FindHistory(ctx, skill.ID)
	if err != nil {
		return SkillView{}, ErrInternal
	}

	var signals *enrichment.Signals
	if u.enricher != nil {
		signals = u.enricher.EnrichOne(ctx, profile)
	}
	breakdown := scoring.CalculateSkillScore(scoringSkill(skill), profile.CGPA, profile.LastActiveDate, u.now(), scoringSignals(signals))
	return SkillView{Skill: skill, Breakdown: breakdown, History: history}, nil
}

func scoringSkill(s candidate.Skill) scoring.Skill {
	return scoring.Skill{
		Name:               s.Name,
		Score:              s.Score,
		ComplexityScore:    s.ComplexityScore,
		ConsistencyScore:   s.ConsistencyScore,
		CollaborationScore: s.CollaborationScore,
		RecencyScore:       s.RecencyScore,
		ImpactScore:        s.ImpactScore,
		CertificationBonus: s.CertificationBonus,
	}
}

func validateSkillInput(in SkillInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidSkill
	}
	for _, v := range []float64{
		in.ComplexityScore, in.ConsistencyScore, in.CollaborationScore,
		in.RecencyScore, in.ImpactScore, in.CertificationBonus,
	} {
		if v < 0 || v > 100 {
			return ErrInvalidDimScore
		}
	}
	return nil
}

func dimensionMean(in SkillInput) float64 {
	sum := in.ComplexityScore + in.ConsistencyScore + in.CollaborationScore + in.RecencyScore + in.ImpactScore
	return round2(sum / 5)
}
