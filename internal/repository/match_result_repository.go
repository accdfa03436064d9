package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Chidwan3578/Veridex-Local/internal/database"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/job"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchResultRepository interface {
	FindByJobID(ctx context.Context, jobID uuid.UUID) ([]job.MatchResult, error)
	// ReplaceForJob clears all prior results for the job and inserts the new
	// batch, inside one transaction. Results are never merged.
	ReplaceForJob(ctx context.Context, jobID uuid.UUID, results []job.MatchResult) error
}

type PostgresMatchResultRepository struct {
	db database.DB
}

func NewPostgresMatchResultRepository(db database.DB) *PostgresMatchResultRepository {
	return &PostgresMatchResultRepository{db: db}
}

func (r *PostgresMatchResultRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) ([]job.MatchResult, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, candidate_id, fit_score, risk_level, gap_summary, breakdown, created_at
		 FROM match_results
		 WHERE job_id = $1
		 ORDER BY fit_score DESC, created_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.MatchResult, 0)
	for rows.Next() {
		var (
			m   job.MatchResult
			raw []byte
		)
		if err := rows.Scan(&m.ID, &m.JobID, &m.CandidateID, &m.FitScore, &m.RiskLevel, &m.GapSummary, &raw, &m.CreatedAt); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			var b matching.Breakdown
			if err := json.Unmarshal(raw, &b); err != nil {
				return nil, fmt.Errorf("decode breakdown for match %s: %w", m.ID, err)
			}
			m.Breakdown = b
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchResultRepository) ReplaceForJob(ctx context.Context, jobID uuid.UUID, results []job.MatchResult) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM match_results WHERE job_id = $1`, jobID); err != nil {
		return err
	}

	for _, m := range results {
		raw, err := json.Marshal(m.Breakdown)
		if err != nil {
			return fmt.Errorf("encode breakdown for candidate %s: %w", m.CandidateID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO match_results (id, job_id, candidate_id, fit_score, risk_level, gap_summary, breakdown, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			m.ID, jobID, m.CandidateID, m.FitScore, m.RiskLevel, m.GapSummary, raw, m.CreatedAt,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit match replace: %w", err)
	}
	return nil
}
