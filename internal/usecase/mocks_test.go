package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/job"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"
	"github.com/Chidwan3578/Veridex-Local/internal/pkg/jwt"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateName(_ context.Context, id uuid.UUID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Name = name
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]user.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]candidate.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]candidate.Profile{}}
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (candidate.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return candidate.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) FindAll(_ context.Context) ([]candidate.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]candidate.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, p candidate.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p candidate.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.UserID]; !ok {
		return repository.ErrProfileNotFound
	}
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) UpdateDerived(_ context.Context, userID uuid.UUID, overall float64, riskLabel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.OverallScore = overall
	p.RiskLabel = riskLabel
	r.profiles[userID] = p
	return nil
}

type fakeSkillRepo struct {
	mu      sync.Mutex
	skills  map[uuid.UUID]candidate.Skill
	history map[uuid.UUID][]candidate.HistoryPoint
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{
		skills:  map[uuid.UUID]candidate.Skill{},
		history: map[uuid.UUID][]candidate.HistoryPoint{},
	}
}

func (r *fakeSkillRepo) FindByCandidateID(_ context.Context, candidateID uuid.UUID) ([]candidate.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]candidate.Skill, 0)
	for _, s := range r.skills {
		if s.CandidateID == candidateID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) FindByID(_ context.Context, id uuid.UUID) (candidate.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.skills[id]
	if !ok {
		return candidate.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (r *fakeSkillRepo) Create(_ context.Context, s candidate.Skill) (candidate.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skills[s.ID] = s
	return s, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, s candidate.Skill) (candidate.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[s.ID]; !ok {
		return candidate.Skill{}, repository.ErrSkillNotFound
	}
	r.skills[s.ID] = s
	return s, nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id uuid.UUID, candidateID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.skills[id]
	if !ok {
		return repository.ErrSkillNotFound
	}
	if s.CandidateID != candidateID {
		return repository.ErrSkillForbidden
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeSkillRepo) FindHistory(_ context.Context, skillID uuid.UUID) ([]candidate.HistoryPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[skillID], nil
}

func (r *fakeSkillRepo) AppendHistory(_ context.Context, h candidate.HistoryPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history[h.SkillID] = append(r.history[h.SkillID], h)
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]job.Posting
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]job.Posting{}}
}

func (r *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.jobs[id]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

func (r *fakeJobRepo) FindByRecruiterID(_ context.Context, recruiterID uuid.UUID) ([]job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]job.Posting, 0)
	for _, p := range r.jobs {
		if p.RecruiterID == recruiterID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindAll(_ context.Context) ([]job.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]job.Posting, 0, len(r.jobs))
	for _, p := range r.jobs {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeJobRepo) Create(_ context.Context, p job.Posting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[p.ID] = p
	return nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	results map[uuid.UUID][]job.MatchResult

	replaceCalls int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{results: map[uuid.UUID][]job.MatchResult{}}
}

func (r *fakeMatchRepo) FindByJobID(_ context.Context, jobID uuid.UUID) ([]job.MatchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.results[jobID], nil
}

func (r *fakeMatchRepo) ReplaceForJob(_ context.Context, jobID uuid.UUID, results []job.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceCalls++
	r.results[jobID] = results
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	jobIDs []uuid.UUID
	counts []int
}

func (n *fakeNotifier) MatchesUpdated(jobID uuid.UUID, results []job.MatchResult) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.jobIDs = append(n.jobIDs, jobID)
	n.counts = append(n.counts, len(results))
}

type fakeJWT struct {
	lastRole string
}

func (f *fakeJWT) GenerateAccessToken(userID uuid.UUID, email, role string) (string, error) {
	f.lastRole = role
	return "access-" + userID.String(), nil
}

func (f *fakeJWT) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return "refresh-" + userID.String(), nil
}

func (f *fakeJWT) ValidateToken(tokenString string) (jwt.Claims, error) {
	if strings.HasPrefix(tokenString, "refresh-") {
		id, err := uuid.Parse(strings.TrimPrefix(tokenString, "refresh-"))
		if err != nil {
			return jwt.Claims{}, jwt.ErrTokenInvalid
		}
		return jwt.Claims{UserID: id, TokenType: jwt.TokenTypeRefresh}, nil
	}
	if strings.HasPrefix(tokenString, "access-") {
		id, err := uuid.Parse(strings.TrimPrefix(tokenString, "access-"))
		if err != nil {
			return jwt.Claims{}, jwt.ErrTokenInvalid
		}
		return jwt.Claims{UserID: id, TokenType: jwt.TokenTypeAccess}, nil
	}
	return jwt.Claims{}, jwt.ErrTokenInvalid
}

func (f *fakeJWT) IsRefreshToken(claims jwt.Claims) bool {
	return claims.TokenType == jwt.TokenTypeRefresh
}
