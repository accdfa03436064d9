package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Chidwan3578/Veridex-Local/internal/database"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/job"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	FindByRecruiterID(ctx context.Context, recruiterID uuid.UUID) ([]job.Posting, error)
	FindAll(ctx context.Context) ([]job.Posting, error)
	Create(ctx context.Context, p job.Posting) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, recruiter_id, title, description,
	 complexity_weight, consistency_weight, collaboration_weight, recency_weight, impact_weight, cgpa_weight,
	 min_threshold, cgpa_threshold, COALESCE(cgpa_condition, ''), COALESCE(max_applicants, 0), created_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	p, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) FindByRecruiterID(ctx context.Context, recruiterID uuid.UUID) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) FindAll(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) error {
	var condition any
	if p.CGPACondition != "" {
		condition = string(p.CGPACondition)
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs
		 (id, recruiter_id, title, description,
		  complexity_weight, consistency_weight, collaboration_weight, recency_weight, impact_weight, cgpa_weight,
		  min_threshold, cgpa_threshold, cgpa_condition, max_applicants, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		p.ID, p.RecruiterID, p.Title, p.Description,
		p.Weights.Complexity.String(), p.Weights.Consistency.String(), p.Weights.Collaboration.String(),
		p.Weights.Recency.String(), p.Weights.Impact.String(), p.Weights.CGPA.String(),
		p.MinThreshold, p.CGPAThreshold, condition, p.MaxApplicants, p.CreatedAt,
	)
	return err
}

func scanJob(row database.Row) (job.Posting, error) {
	var (
		p         job.Posting
		rawWeight [6]string
		condition string
	)
	if err := row.Scan(
		&p.ID, &p.RecruiterID, &p.Title, &p.Description,
		&rawWeight[0], &rawWeight[1], &rawWeight[2], &rawWeight[3], &rawWeight[4], &rawWeight[5],
		&p.MinThreshold, &p.CGPAThreshold, &condition, &p.MaxApplicants, &p.CreatedAt,
	); err != nil {
		return job.Posting{}, err
	}
	w, err := parseStoredWeights(rawWeight)
	if err != nil {
		return job.Posting{}, err
	}
	p.Weights = w
	p.CGPACondition = matching.CGPACondition(condition)
	return p, nil
}

func collectJobs(rows database.Rows) ([]job.Posting, error) {
	defer rows.Close()
	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stored weight fields are text and may hold either a tier literal or a
// decimal fraction; parsing branches per field.
func parseStoredWeights(raw [6]string) (matching.JobWeights, error) {
	specs := make([]matching.WeightSpec, 6)
	for i, s := range raw {
		spec, err := matching.ParseWeightSpec(s)
		if err != nil {
			return matching.JobWeights{}, err
		}
		specs[i] = spec
	}
	return matching.JobWeights{
		Complexity:    specs[0],
		Consistency:   specs[1],
		Collaboration: specs[2],
		Recency:       specs[3],
		Impact:        specs[4],
		CGPA:          specs[5],
	}, nil
}
