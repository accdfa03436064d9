package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"
)

func seedProfileUser(t *testing.T, users *fakeUserRepo, profiles *fakeProfileRepo, cgpa float64) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	if err := users.Create(ctx, user.User{ID: id, Name: "Asha", Email: "asha@example.com", Role: user.RoleCandidate}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := profiles.Create(ctx, candidate.Profile{
		ID:             uuid.New(),
		UserID:         id,
		CGPA:           cgpa,
		LastActiveDate: time.Now().UTC().AddDate(0, -1, 0),
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return id
}

func TestProfileUpdateCGPAValidation(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	skills := newFakeSkillRepo()
	id := seedProfileUser(t, users, profiles, 7.0)

	uc := NewProfileUsecase(users, profiles, skills, nil, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		cgpa float64
		ok   bool
	}{
		{"lower bound", 0, true},
		{"upper bound", 10, true},
		{"below range", -0.1, false},
		{"above range", 10.1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.cgpa
			_, err := uc.Update(ctx, id, ProfileUpdateInput{CGPA: &v})
			if tc.ok && err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidCGPA) {
				t.Fatalf("err = %v, want ErrInvalidCGPA", err)
			}
		})
	}
}

func TestProfileUpdateRecomputesDerivedFields(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	skills := newFakeSkillRepo()
	id := seedProfileUser(t, users, profiles, 0)

	_, err := skills.Create(context.Background(), candidate.Skill{
		ID:                 uuid.New(),
		CandidateID:        id,
		Name:               "Go",
		Score:              80,
		ComplexityScore:    80,
		ConsistencyScore:   80,
		CollaborationScore: 80,
		RecencyScore:       80,
		ImpactScore:        80,
	})
	if err != nil {
		t.Fatalf("seed skill: %v", err)
	}

	uc := NewProfileUsecase(users, profiles, skills, nil, nil)
	cgpa := 8.0
	gh := "asha-dev"
	view, err := uc.Update(context.Background(), id, ProfileUpdateInput{CGPA: &cgpa, GithubUsername: &gh})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if view.Profile.OverallScore <= 0 {
		t.Fatalf("overall score not recomputed: %v", view.Profile.OverallScore)
	}
	if view.Profile.RiskLabel == "" {
		t.Fatal("risk label not recomputed")
	}
	if view.Profile.LastActiveDate.Before(time.Now().UTC().Add(-time.Minute)) {
		t.Fatalf("last active not refreshed: %v", view.Profile.LastActiveDate)
	}
	// cgpa + skills + github fill three of six completeness slots.
	if view.Profile.DataCompleteness != 50 {
		t.Fatalf("completeness = %v, want 50", view.Profile.DataCompleteness)
	}
}

func TestProfileUpdateName(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	id := seedProfileUser(t, users, profiles, 7.0)

	uc := NewProfileUsecase(users, profiles, newFakeSkillRepo(), nil, nil)
	ctx := context.Background()

	blank := "   "
	if _, err := uc.Update(ctx, id, ProfileUpdateInput{Name: &blank}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name err = %v, want ErrInvalidInput", err)
	}

	name := "  Asha M  "
	view, err := uc.Update(ctx, id, ProfileUpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if view.User.Name != "Asha M" {
		t.Fatalf("name = %q, want trimmed", view.User.Name)
	}
}

func TestProfileGetUnknownUser(t *testing.T) {
	uc := NewProfileUsecase(newFakeUserRepo(), newFakeProfileRepo(), newFakeSkillRepo(), nil, nil)
	if _, err := uc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestDataCompleteness(t *testing.T) {
	empty := candidate.Profile{}
	if got := DataCompleteness(empty, 0); got != 0 {
		t.Fatalf("empty profile = %v, want 0", got)
	}

	full := candidate.Profile{
		CGPA:             8.0,
		GithubUsername:   "gh",
		LeetcodeUsername: "lc",
		LinkedinURL:      "https://linkedin.com/in/x",
		ResumeText:       "resume",
	}
	if got := DataCompleteness(full, 3); got != 100 {
		t.Fatalf("full profile = %v, want 100", got)
	}

	partial := candidate.Profile{CGPA: 8.0}
	if got := DataCompleteness(partial, 0); got != 16.67 {
		t.Fatalf("one slot = %v, want 16.67", got)
	}
}
