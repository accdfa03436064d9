package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"
	"github.com/Chidwan3578/Veridex-Local/internal/pkg/jwt"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
)

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     user.Role
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users    user.Repository
	profiles repository.CandidateProfileRepository
	jwt      jwt.Service
}

func NewAuthUsecase(users user.Repository, profiles repository.CandidateProfileRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, profiles: profiles, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || !isValidPassword(in.Password) {
		return user.User{}, "", "", ErrInvalidInput
	}
	if in.Role != user.RoleCandidate && in.Role != user.RoleRecruiter {
		return user.User{}, "", "", ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	if exists {
		return user.User{}, "", "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}

	usr := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return user.User{}, "", "", ErrInternal
	}

	// Candidates start with a zeroed profile; every derived field is filled
	// in by the first recompute.
	if usr.Role == user.RoleCandidate {
		profile := candidate.Profile{
			ID:             uuid.New(),
			UserID:         usr.ID,
			RiskLabel:      "Low",
			LastActiveDate: time.Now().UTC(),
		}
		if err := u.profiles.Create(ctx, profile); err != nil {
			return user.User{}, "", "", ErrInternal
		}
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return usr, access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", "", ErrInvalidCredentials
		}
		return user.User{}, "", "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) issueTokens(usr user.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return "", "", err
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}

func isValidPassword(pw string) bool {
	return len(pw) >= 8
}
