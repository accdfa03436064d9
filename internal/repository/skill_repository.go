package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Chidwan3578/Veridex-Local/internal/database"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSkillNotFound  = errors.New("skill not found")
	ErrSkillForbidden = errors.New("forbidden")
)

type SkillRepository interface {
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]candidate.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (candidate.Skill, error)
	Create(ctx context.Context, s candidate.Skill) (candidate.Skill, error)
	Update(ctx context.Context, s candidate.Skill) (candidate.Skill, error)
	Delete(ctx context.Context, id uuid.UUID, candidateID uuid.UUID) error
	FindHistory(ctx context.Context, skillID uuid.UUID) ([]candidate.HistoryPoint, error)
	AppendHistory(ctx context.Context, h candidate.HistoryPoint) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, candidate_id, name, score, complexity_score, consistency_score,
	 collaboration_score, recency_score, impact_score, certification_bonus`

func (r *PostgresSkillRepository) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]candidate.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE candidate_id = $1 ORDER BY name ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Skill, 0)
	for rows.Next() {
		var s candidate.Skill
		if err := rows.Scan(
			&s.ID, &s.CandidateID, &s.Name, &s.Score, &s.ComplexityScore, &s.ConsistencyScore,
			&s.CollaborationScore, &s.RecencyScore, &s.ImpactScore, &s.CertificationBonus,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (candidate.Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1`,
		id,
	)
	var s candidate.Skill
	if err := row.Scan(
		&s.ID, &s.CandidateID, &s.Name, &s.Score, &s.ComplexityScore, &s.ConsistencyScore,
		&s.CollaborationScore, &s.RecencyScore, &s.ImpactScore, &s.CertificationBonus,
	); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Skill{}, ErrSkillNotFound
		}
		return candidate.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s candidate.Skill) (candidate.Skill, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, candidate_id, name, score, complexity_score, consistency_score,
		  collaboration_score, recency_score, impact_score, certification_bonus)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		s.ID, s.CandidateID, s.Name, s.Score, s.ComplexityScore, s.ConsistencyScore,
		s.CollaborationScore, s.RecencyScore, s.ImpactScore, s.CertificationBonus,
	)
	if err != nil {
		return candidate.Skill{}, err
	}
	return r.FindByID(ctx, s.ID)
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s candidate.Skill) (candidate.Skill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE skills
		 SET score = $3, complexity_score = $4, consistency_score = $5, collaboration_score = $6,
		     recency_score = $7, impact_score = $8, certification_bonus = $9
		 WHERE id = $1 AND candidate_id = $2`,
		s.ID, s.CandidateID, s.Score, s.ComplexityScore, s.ConsistencyScore,
		s.CollaborationScore, s.RecencyScore, s.ImpactScore, s.CertificationBonus,
	)
	if err != nil {
		return candidate.Skill{}, err
	}
	if affected == 0 {
		return candidate.Skill{}, ErrSkillNotFound
	}
	return r.FindByID(ctx, s.ID)
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID, candidateID uuid.UUID) error {
	var owner uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT candidate_id FROM skills WHERE id = $1`, id)
	if err := row.Scan(&owner); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return ErrSkillNotFound
		}
		return err
	}
	if owner != candidateID {
		return ErrSkillForbidden
	}

	_, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return err
}

func (r *PostgresSkillRepository) FindHistory(ctx context.Context, skillID uuid.UUID) ([]candidate.HistoryPoint, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, skill_id, month, score FROM skill_history WHERE skill_id = $1 ORDER BY position ASC`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.HistoryPoint, 0)
	for rows.Next() {
		var h candidate.HistoryPoint
		if err := rows.Scan(&h.ID, &h.SkillID, &h.Month, &h.Score); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) AppendHistory(ctx context.Context, h candidate.HistoryPoint) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_history (id, skill_id, month, score, position)
		 VALUES ($1, $2, $3, $4, COALESCE((SELECT MAX(position) + 1 FROM skill_history WHERE skill_id = $2), 0))`,
		h.ID, h.SkillID, h.Month, h.Score,
	)
	return err
}
