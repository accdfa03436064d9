package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/dto"
	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/middleware"
	"github.com/Chidwan3578/Veridex-Local/internal/pkg/response"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Get)
	r.Put("/profile", h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	view, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(view))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	view, err := h.uc.Update(c.Context(), userID, usecase.ProfileUpdateInput{
		Name:             req.Name,
		CGPA:             req.CGPA,
		GithubUsername:   req.GithubUsername,
		LeetcodeUsername: req.LeetcodeUsername,
		LinkedinURL:      req.LinkedinURL,
		ResumeText:       req.ResumeText,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(view))
}
