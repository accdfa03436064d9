package enrichment

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/config"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"
	"github.com/Chidwan3578/Veridex-Local/internal/infrastructure/github"
	"github.com/Chidwan3578/Veridex-Local/internal/infrastructure/leetcode"
	"github.com/Chidwan3578/Veridex-Local/internal/infrastructure/linkedin"
)

// Signals is the combined best-effort enrichment record for one candidate.
// Any field can be nil/empty; the risk and scoring engines treat absence as
// its own signal rather than an error.
type Signals struct {
	Github         *github.Data `json:"github"`
	LeetcodeScore  *float64     `json:"leetcode_score"`
	LeetcodeRank   *int         `json:"leetcode_rank"`
	Certifications []string     `json:"certifications"`
}

type SignalCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Enricher runs the external credential fetchers for a batch of candidates
// concurrently. Each candidate is one task; a failed or disabled fetcher
// degrades to absent signals for that candidate only.
type Enricher struct {
	github   github.Client
	leetcode leetcode.Client
	linkedin linkedin.Fetcher
	cache    SignalCache
	cfg      config.FetcherConfig
	logger   *log.Logger
}

func NewEnricher(gh github.Client, lc leetcode.Client, li linkedin.Fetcher, cache SignalCache, cfg config.FetcherConfig, logger *log.Logger) *Enricher {
	return &Enricher{github: gh, leetcode: lc, linkedin: li, cache: cache, cfg: cfg, logger: logger}
}

// EnrichAll fetches signals for every profile in parallel and returns them
// keyed by candidate user id. The map always has an entry per profile.
func (e *Enricher) EnrichAll(ctx context.Context, profiles []candidate.Profile) map[uuid.UUID]*Signals {
	out := make(map[uuid.UUID]*Signals, len(profiles))
	if len(profiles) == 0 {
		return out
	}

	var mu sync.Mutex
	pool := NewWorkerPool(e.cfg.Workers, len(profiles))
	results := pool.Run(ctx)

	for _, p := range profiles {
		p := p
		pool.Submit(func(taskCtx context.Context) error {
			sig := e.EnrichOne(taskCtx, p)
			mu.Lock()
			out[p.UserID] = sig
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	for range results {
	}
	return out
}

// EnrichOne fetches signals for a single candidate, consulting the cache
// first. Never returns nil.
func (e *Enricher) EnrichOne(ctx context.Context, p candidate.Profile) *Signals {
	key := "signals:" + p.UserID.String()

	if e.cache != nil {
		var cached Signals
		if ok, err := e.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return &cached
		}
	}

	sig := &Signals{}

	if e.cfg.GithubEnabled && p.GithubUsername != "" && e.github != nil {
		sig.Github = e.github.Fetch(ctx, p.GithubUsername)
	}

	if e.cfg.LeetcodeEnabled && p.LeetcodeUsername != "" && e.leetcode != nil {
		if data := e.leetcode.Fetch(ctx, p.LeetcodeUsername); data != nil {
			score := data.Score
			rank := data.Rank
			sig.LeetcodeScore = &score
			sig.LeetcodeRank = &rank
		}
	}

	if e.cfg.LinkedinEnabled && p.LinkedinURL != "" && e.linkedin != nil {
		sig.Certifications = e.linkedin.FetchCertifications(ctx, p.LinkedinURL)
	}

	// Profiles keep a local copy of credential data from earlier syncs; fall
	// back to it when a live fetch yields nothing.
	if sig.LeetcodeScore == nil && p.LeetcodeScore != nil {
		score := *p.LeetcodeScore
		sig.LeetcodeScore = &score
		sig.LeetcodeRank = p.LeetcodeRank
	}
	if len(sig.Certifications) == 0 && p.LinkedinCertsJSON != "" {
		var stored []string
		if err := json.Unmarshal([]byte(p.LinkedinCertsJSON), &stored); err == nil {
			sig.Certifications = stored
		}
	}

	if e.cache != nil {
		if err := e.cache.SetJSON(ctx, key, sig, e.cfg.SignalCacheTTL); err != nil && e.logger != nil {
			e.logger.Printf("Enrichment cache write failed | candidate=%s err=%v", p.UserID, err)
		}
	}

	return sig
}
