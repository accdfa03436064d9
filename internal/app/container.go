package app

import (
	"context"
	"log"
	"time"

	"github.com/Chidwan3578/Veridex-Local/internal/config"
	"github.com/Chidwan3578/Veridex-Local/internal/database"
	"github.com/Chidwan3578/Veridex-Local/internal/database/migration"
	dbpostgres "github.com/Chidwan3578/Veridex-Local/internal/database/postgres"
	"github.com/Chidwan3578/Veridex-Local/internal/enrichment"
	"github.com/Chidwan3578/Veridex-Local/internal/infrastructure/cache"
	"github.com/Chidwan3578/Veridex-Local/internal/infrastructure/github"
	"github.com/Chidwan3578/Veridex-Local/internal/infrastructure/leetcode"
	"github.com/Chidwan3578/Veridex-Local/internal/infrastructure/linkedin"
	"github.com/Chidwan3578/Veridex-Local/internal/pkg/jwt"
	"github.com/Chidwan3578/Veridex-Local/internal/repository"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
	"github.com/Chidwan3578/Veridex-Local/internal/ws"
)

// Container holds every long-lived dependency in construction order. Close
// releases them in reverse.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis

	Enricher *enrichment.Enricher
	Hub      *ws.Hub

	JWT      jwt.Service
	Usecases Usecases
}

// Usecases is the full application service set exposed to delivery.
type Usecases struct {
	Auth       usecase.AuthUsecase
	Profile    usecase.ProfileUsecase
	Skill      usecase.SkillUsecase
	Job        usecase.JobUsecase
	Match      usecase.MatchUsecase
	Simulation usecase.SimulationUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	githubClient := github.NewClient(logger)
	leetcodeClient := leetcode.NewClient(logger)
	linkedinFetcher := linkedin.NewFetcher(logger, cfg.Fetchers.LinkedinEnabled)
	enricher := enrichment.NewEnricher(githubClient, leetcodeClient, linkedinFetcher, redisCache, cfg.Fetchers, logger)

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresCandidateProfileRepository(db)
	skills := repository.NewPostgresSkillRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	matches := repository.NewPostgresMatchResultRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	ucs := Usecases{
		Auth:       usecase.NewAuthUsecase(users, profiles, jwtSvc),
		Profile:    usecase.NewProfileUsecase(users, profiles, skills, enricher, logger),
		Skill:      usecase.NewSkillUsecase(profiles, skills, enricher, logger),
		Job:        usecase.NewJobUsecase(users, profiles, skills, jobs, matches, enricher, notifier, logger),
		Match:      usecase.NewMatchUsecase(users, jobs, matches),
		Simulation: usecase.NewSimulationUsecase(users, jobs, matches, profiles),
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Enricher: enricher,
		Hub:      hub,
		JWT:      jwtSvc,
		Usecases: ucs,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
