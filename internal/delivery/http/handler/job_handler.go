package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/dto"
	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/middleware"
	"github.com/Chidwan3578/Veridex-Local/internal/pkg/response"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs", h.Create)
	r.Get("/jobs", h.List)
	r.Get("/jobs/:id", h.Get)
	r.Post("/jobs/:id/rematch", h.Rematch)
}

// RegisterBrowseRoutes exposes the read-only job board to candidates.
func (h *JobHandler) RegisterBrowseRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.Browse)
	r.Get("/jobs/:id", h.Get)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	recruiterID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	posting, results, err := h.uc.Create(c.Context(), recruiterID, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{
		"job":           dto.NewJobResponse(posting),
		"matched_count": len(results),
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, data)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	recruiterID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	postings, err := h.uc.ListByRecruiter(c.Context(), recruiterID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(postings))
}

func (h *JobHandler) Browse(c fiber.Ctx) error {
	postings, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(postings))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	posting, err := h.uc.Get(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(posting))
}

func (h *JobHandler) Rematch(c fiber.Ctx) error {
	recruiterID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.uc.Rematch(c.Context(), recruiterID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{"matched_count": len(results)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
