package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/handler"
	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/middleware"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"
	"github.com/Chidwan3578/Veridex-Local/internal/ws"
)

// Registry wires every handler under /api/v1. Auth and health are public;
// candidate routes require the candidate role, recruiter routes the
// recruiter role.
type Registry struct {
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Skill   *handler.SkillHandler
	Job     *handler.JobHandler
	Match   *handler.MatchHandler
	Health  *handler.HealthHandler
	WS      *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	v1 := app.Group("/api/v1")

	if r.Health != nil {
		r.Health.RegisterRoutes(v1)
	}
	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}

	if r.AuthMW == nil {
		return
	}

	candidate := v1.Group("/candidate", r.AuthMW.Middleware(), r.AuthMW.RequireRole(string(user.RoleCandidate)))
	if r.Profile != nil {
		r.Profile.RegisterRoutes(candidate)
	}
	if r.Skill != nil {
		r.Skill.RegisterRoutes(candidate)
	}
	if r.Job != nil {
		r.Job.RegisterBrowseRoutes(candidate)
	}

	recruiter := v1.Group("/recruiter", r.AuthMW.Middleware(), r.AuthMW.RequireRole(string(user.RoleRecruiter)))
	if r.Job != nil {
		r.Job.RegisterRoutes(recruiter)
	}
	if r.Match != nil {
		r.Match.RegisterRoutes(recruiter)
	}

	if r.WS != nil {
		v1.Get("/ws/simulate/:job_id", r.WS.HandleSimulateWS)
	}
}
