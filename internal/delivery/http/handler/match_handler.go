package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/dto"
	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/middleware"
	"github.com/Chidwan3578/Veridex-Local/internal/pkg/response"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

type MatchHandler struct {
	matches    usecase.MatchUsecase
	simulation usecase.SimulationUsecase
}

func NewMatchHandler(matches usecase.MatchUsecase, simulation usecase.SimulationUsecase) *MatchHandler {
	return &MatchHandler{matches: matches, simulation: simulation}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs/:id/matches", h.ListForJob)
	r.Post("/jobs/:id/simulate", h.Simulate)
}

func (h *MatchHandler) ListForJob(c fiber.Ctx) error {
	recruiterID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	posting, views, err := h.matches.ListForJob(c.Context(), recruiterID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := dto.JobMatchesResponse{
		Job:     dto.NewJobResponse(posting),
		Matches: dto.NewMatchResponses(views),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *MatchHandler) Simulate(c fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SimulationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ranked, err := h.simulation.Simulate(c.Context(), jobID, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSimulationResponse(ranked))
}
