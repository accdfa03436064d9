package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/middleware"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

// mapUsecaseError translates usecase sentinels into transport errors. Unknown
// errors deliberately collapse to 500 without leaking their cause.
func mapUsecaseError(err error) *middleware.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidCGPA),
		errors.Is(err, usecase.ErrInvalidSkill),
		errors.Is(err, usecase.ErrInvalidDimScore),
		errors.Is(err, usecase.ErrInvalidJob):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidRefreshToken),
		errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrSkillForbidden),
		errors.Is(err, usecase.ErrJobForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound),
		errors.Is(err, usecase.ErrSkillNotFound),
		errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered),
		errors.Is(err, usecase.ErrDuplicateSkill):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	return id, ok
}

func parseIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "invalid "+name, nil, err)
	}
	return id, nil
}
