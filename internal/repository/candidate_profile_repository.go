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

var ErrProfileNotFound = errors.New("candidate profile not found")

type CandidateProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	FindAll(ctx context.Context) ([]candidate.Profile, error)
	Create(ctx context.Context, p candidate.Profile) error
	Update(ctx context.Context, p candidate.Profile) error
	UpdateDerived(ctx context.Context, userID uuid.UUID, overallScore float64, riskLabel string) error
}

type PostgresCandidateProfileRepository struct {
	db database.DB
}

func NewPostgresCandidateProfileRepository(db database.DB) *PostgresCandidateProfileRepository {
	return &PostgresCandidateProfileRepository{db: db}
}

const profileColumns = `id, user_id, cgpa, overall_score, risk_label, data_completeness, last_active_date,
	 COALESCE(github_username, ''), COALESCE(leetcode_username, ''), leetcode_score, leetcode_rank,
	 COALESCE(linkedin_url, ''), linkedin_cert_count, COALESCE(linkedin_certs, ''), COALESCE(resume_text, '')`

func (r *PostgresCandidateProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM candidate_profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresCandidateProfileRepository) FindAll(ctx context.Context) ([]candidate.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM candidate_profiles ORDER BY user_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Profile, 0)
	for rows.Next() {
		p, err := scanProfileRows(rows)
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

func (r *PostgresCandidateProfileRepository) Create(ctx context.Context, p candidate.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_profiles
		 (id, user_id, cgpa, overall_score, risk_label, data_completeness, last_active_date,
		  github_username, leetcode_username, leetcode_score, leetcode_rank,
		  linkedin_url, linkedin_cert_count, linkedin_certs, resume_text)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		p.ID, p.UserID, p.CGPA, p.OverallScore, p.RiskLabel, p.DataCompleteness, p.LastActiveDate,
		p.GithubUsername, p.LeetcodeUsername, p.LeetcodeScore, p.LeetcodeRank,
		p.LinkedinURL, p.LinkedinCertCount, p.LinkedinCertsJSON, p.ResumeText,
	)
	return err
}

func (r *PostgresCandidateProfileRepository) Update(ctx context.Context, p candidate.Profile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles
		 SET cgpa = $2, overall_score = $3, risk_label = $4, data_completeness = $5, last_active_date = $6,
		     github_username = $7, leetcode_username = $8, leetcode_score = $9, leetcode_rank = $10,
		     linkedin_url = $11, linkedin_cert_count = $12, linkedin_certs = $13, resume_text = $14
		 WHERE user_id = $1`,
		p.UserID, p.CGPA, p.OverallScore, p.RiskLabel, p.DataCompleteness, p.LastActiveDate,
		p.GithubUsername, p.LeetcodeUsername, p.LeetcodeScore, p.LeetcodeRank,
		p.LinkedinURL, p.LinkedinCertCount, p.LinkedinCertsJSON, p.ResumeText,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *PostgresCandidateProfileRepository) UpdateDerived(ctx context.Context, userID uuid.UUID, overallScore float64, riskLabel string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET overall_score = $2, risk_label = $3 WHERE user_id = $1`,
		userID, overallScore, riskLabel,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func scanProfile(row database.Row) (candidate.Profile, error) {
	var p candidate.Profile
	if err := row.Scan(
		&p.ID, &p.UserID, &p.CGPA, &p.OverallScore, &p.RiskLabel, &p.DataCompleteness, &p.LastActiveDate,
		&p.GithubUsername, &p.LeetcodeUsername, &p.LeetcodeScore, &p.LeetcodeRank,
		&p.LinkedinURL, &p.LinkedinCertCount, &p.LinkedinCertsJSON, &p.ResumeText,
	); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrProfileNotFound
		}
		return candidate.Profile{}, err
	}
	return p, nil
}

func scanProfileRows(rows database.Rows) (candidate.Profile, error) {
	var p candidate.Profile
	err := rows.Scan(
		&p.ID, &p.UserID, &p.CGPA, &p.OverallScore, &p.RiskLabel, &p.DataCompleteness, &p.LastActiveDate,
		&p.GithubUsername, &p.LeetcodeUsername, &p.LeetcodeScore, &p.LeetcodeRank,
		&p.LinkedinURL, &p.LinkedinCertCount, &p.LinkedinCertsJSON, &p.ResumeText,
	)
	if err != nil {
		return candidate.Profile{}, err
	}
	return p, nil
}
