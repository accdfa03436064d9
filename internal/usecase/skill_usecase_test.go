package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"
)

func newSkillFixture(t *testing.T) (*Skill, *fakeProfileRepo, *fakeSkillRepo, uuid.UUID) {
	t.Helper()
	profiles := newFakeProfileRepo()
	skills := newFakeSkillRepo()

	id := uuid.New()
	err := profiles.Create(context.Background(), candidate.Profile{
		ID:             uuid.New(),
		UserID:         id,
		CGPA:           8.0,
		LastActiveDate: time.Now().UTC().AddDate(0, -1, 0),
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return NewSkillUsecase(profiles, skills, nil, nil), profiles, skills, id
}

func validSkillInput() SkillInput {
	return SkillInput{
		Name:               "Go",
		ComplexityScore:    80,
		ConsistencyScore:   70,
		CollaborationScore: 60,
		RecencyScore:       90,
		ImpactScore:        75,
	}
}

func TestSkillAdd(t *testing.T) {
	uc, profiles, skills, id := newSkillFixture(t)
	ctx := context.Background()

	view, err := uc.Add(ctx, id, validSkillInput())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if view.Skill.Score != 75 {
		t.Fatalf("score = %v, want dimension mean 75", view.Skill.Score)
	}
	if view.Breakdown.FinalScore <= 0 {
		t.Fatalf("breakdown not computed: %+v", view.Breakdown)
	}
	if len(view.History) != 1 {
		t.Fatalf("history points = %d, want 1", len(view.History))
	}
	if view.History[0].Month != time.Now().UTC().Format("Jan") {
		t.Fatalf("history month = %q", view.History[0].Month)
	}

	stored, _ := skills.FindByCandidateID(ctx, id)
	if len(stored) != 1 {
		t.Fatalf("stored skills = %d, want 1", len(stored))
	}

	p, _ := profiles.FindByUserID(ctx, id)
	if p.OverallScore <= 0 || p.RiskLabel == "" {
		t.Fatalf("derived fields not recomputed: score=%v label=%q", p.OverallScore, p.RiskLabel)
	}
}

func TestSkillAddDuplicateName(t *testing.T) {
	uc, _, _, id := newSkillFixture(t)
	ctx := context.Background()

	if _, err := uc.Add(ctx, id, validSkillInput()); err != nil {
		t.Fatalf("first add: %v", err)
	}
	dup := validSkillInput()
	dup.Name = "  gO "
	if _, err := uc.Add(ctx, id, dup); !errors.Is(err, ErrDuplicateSkill) {
		t.Fatalf("err = %v, want ErrDuplicateSkill", err)
	}
}

func TestSkillValidation(t *testing.T) {
	uc, _, _, id := newSkillFixture(t)
	ctx := context.Background()

	blank := validSkillInput()
	blank.Name = "  "
	if _, err := uc.Add(ctx, id, blank); !errors.Is(err, ErrInvalidSkill) {
		t.Fatalf("blank name err = %v, want ErrInvalidSkill", err)
	}

	over := validSkillInput()
	over.ComplexityScore = 101
	if _, err := uc.Add(ctx, id, over); !errors.Is(err, ErrInvalidDimScore) {
		t.Fatalf("over-range err = %v, want ErrInvalidDimScore", err)
	}

	under := validSkillInput()
	under.CertificationBonus = -1
	if _, err := uc.Add(ctx, id, under); !errors.Is(err, ErrInvalidDimScore) {
		t.Fatalf("negative bonus err = %v, want ErrInvalidDimScore", err)
	}
}

func TestSkillUpdateOwnership(t *testing.T) {
	uc, _, _, id := newSkillFixture(t)
	ctx := context.Background()

	view, err := uc.Add(ctx, id, validSkillInput())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := uc.Update(ctx, uuid.New(), view.Skill.ID, validSkillInput()); !errors.Is(err, ErrSkillForbidden) {
		t.Fatalf("foreign update err = %v, want ErrSkillForbidden", err)
	}
	if _, err := uc.Update(ctx, id, uuid.New(), validSkillInput()); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("unknown skill err = %v, want ErrSkillNotFound", err)
	}

	in := validSkillInput()
	in.ComplexityScore = 95
	updated, err := uc.Update(ctx, id, view.Skill.ID, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Skill.ComplexityScore != 95 {
		t.Fatalf("complexity = %v, want 95", updated.Skill.ComplexityScore)
	}
	if updated.Skill.Score != 78 {
		t.Fatalf("score = %v, want recomputed mean 78", updated.Skill.Score)
	}
	if len(updated.History) != 2 {
		t.Fatalf("history points = %d, want 2 (add + update)", len(updated.History))
	}
}

func TestSkillDelete(t *testing.T) {
	uc, _, skills, id := newSkillFixture(t)
	ctx := context.Background()

	view, err := uc.Add(ctx, id, validSkillInput())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := uc.Delete(ctx, uuid.New(), view.Skill.ID); !errors.Is(err, ErrSkillForbidden) {
		t.Fatalf("foreign delete err = %v, want ErrSkillForbidden", err)
	}
	if err := uc.Delete(ctx, id, view.Skill.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, id, view.Skill.ID); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("second delete err = %v, want ErrSkillNotFound", err)
	}

	stored, _ := skills.FindByCandidateID(ctx, id)
	if len(stored) != 0 {
		t.Fatalf("stored skills = %d, want 0", len(stored))
	}
}

func TestSkillList(t *testing.T) {
	uc, _, _, id := newSkillFixture(t)
	ctx := context.Background()

	if _, err := uc.Add(ctx, id, validSkillInput()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	second := validSkillInput()
	second.Name = "Postgres"
	if _, err := uc.Add(ctx, id, second); err != nil {
		t.Fatalf("Add: %v", err)
	}

	views, err := uc.List(ctx, id)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
	for _, v := range views {
		if v.Breakdown.FinalScore <= 0 {
			t.Fatalf("breakdown missing for %s", v.Skill.Name)
		}
		if len(v.History) != 1 {
			t.Fatalf("history points = %d for %s, want 1", len(v.History), v.Skill.Name)
		}
	}
}

func TestSkillListUnknownCandidate(t *testing.T) {
	uc, _, _, _ := newSkillFixture(t)
	if _, err := uc.List(context.Background(), uuid.New()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}
