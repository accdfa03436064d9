package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/dto"
	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/middleware"
	"github.com/Chidwan3578/Veridex-Local/internal/pkg/response"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.List)
	r.Post("/skills", h.Add)
	r.Put("/skills/:id", h.Update)
	r.Delete("/skills/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	views, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillListResponse(views))
}

func (h *SkillHandler) Add(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.SkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	view, err := h.uc.Add(c.Context(), userID, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewSkillResponse(view))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	skillID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	view, err := h.uc.Update(c.Context(), userID, skillID, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(view))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	skillID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
