package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"
	"github.com/Chidwan3578/Veridex-Local/internal/enrichment"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
)

var (
	ErrProfileNotFound = errors.New("candidate profile not found")
	ErrInvalidCGPA     = errors.New("cgpa must be between 0 and 10")
)

type ProfileUpdateInput struct {
	Name             *string
	CGPA             *float64
	GithubUsername   *string
	LeetcodeUsername *string
	LinkedinURL      *string
	ResumeText       *string
}

type ProfileView struct {
	Profile candidate.Profile
	User    user.User
	Skills  []candidate.Skill
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (ProfileView, error)
	Update(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (ProfileView, error)
}

type Profile struct {
	users    user.Repository
	profiles repository.CandidateProfileRepository
	skills   repository.SkillRepository
	rec      *recomputer
}

func NewProfileUsecase(users user.Repository, profiles repository.CandidateProfileRepository, skills repository.SkillRepository, enricher *enrichment.Enricher, logger *log.Logger) *Profile {
	return &Profile{
		users:    users,
		profiles: profiles,
		skills:   skills,
		rec: &recomputer{
			profiles: profiles,
			skills:   skills,
			enricher: enricher,
			logger:   logger,
			now:      func() time.Time { return time.Now().UTC() },
		},
	}
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (ProfileView, error) {
	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ProfileView{}, ErrProfileNotFound
		}
		return ProfileView{}, ErrInternal
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return ProfileView{}, ErrInternal
	}
	skills, err := u.skills.FindByCandidateID(ctx, userID)
	if err != nil {
		return ProfileView{}, ErrInternal
	}
	return ProfileView{Profile: profile, User: usr, Skills: skills}, nil
}

func (u *Profile) Update(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (ProfileView, error) {
	if in.CGPA != nil && (*in.CGPA < 0 || *in.CGPA > 10) {
		return ProfileView{}, ErrInvalidCGPA
	}

	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ProfileView{}, ErrProfileNotFound
		}
		return ProfileView{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return ProfileView{}, ErrInvalidInput
		}
		if err := u.users.UpdateName(ctx, userID, name); err != nil {
			return ProfileView{}, ErrInternal
		}
	}

	if in.CGPA != nil {
		profile.CGPA = *in.CGPA
	}
	if in.GithubUsername != nil {
		profile.GithubUsername = strings.TrimSpace(*in.GithubUsername)
	}
	if in.LeetcodeUsername != nil {
		profile.LeetcodeUsername = strings.TrimSpace(*in.LeetcodeUsername)
	}
	if in.LinkedinURL != nil {
		profile.LinkedinURL = strings.TrimSpace(*in.LinkedinURL)
	}
	if in.ResumeText != nil {
		profile.ResumeText = *in.ResumeText
	}

	// Any edit counts as candidate activity for the recency decay.
	profile.LastActiveDate = time.Now().UTC()

	skills, err := u.skills.FindByCandidateID(ctx, userID)
	if err != nil {
		return ProfileView{}, ErrInternal
	}
	profile.DataCompleteness = DataCompleteness(profile, len(skills))

	if err := u.profiles.Update(ctx, profile); err != nil {
		return ProfileView{}, ErrInternal
	}

	if err := u.rec.recompute(ctx, userID); err != nil {
		return ProfileView{}, ErrInternal
	}

	return u.Get(ctx, userID)
}

// DataCompleteness grades how much of the assessable record is filled in,
// as a 0-100 percentage over six weighted slots.
func DataCompleteness(p candidate.Profile, skillCount int) float64 {
	filled := 0
	if p.CGPA > 0 {
		filled++
	}
	if skillCount > 0 {
		filled++
	}
	if p.GithubUsername != "" {
		filled++
	}
	if p.LeetcodeUsername != "" {
		filled++
	}
	if p.LinkedinURL != "" {
		filled++
	}
	if strings.TrimSpace(p.ResumeText) != "" {
		filled++
	}
	return round2(float64(filled) / 6.0 * 100)
}
