package seeder

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Chidwan3578/Veridex-Local/internal/database"
)

// DemoUsersSeeder inserts a recruiter plus a small candidate pool with
// profiles, skills and trend history, enough to exercise every screen.
// Existing emails are left alone, so reruns are safe.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

type demoSkill struct {
	Name          string
	Complexity    float64
	Consistency   float64
	Collaboration float64
	Recency       float64
	Impact        float64
	CertBonus     float64
	History       []float64
}

type demoCandidate struct {
	Name           string
	Email          string
	CGPA           float64
	GithubUsername string
	MonthsInactive int
	Skills         []demoSkill
}

var demoCandidates = []demoCandidate{
	{
		Name:           "Arjun Mehta",
		Email:          "arjun@example.com",
		CGPA:           8.7,
		GithubUsername: "arjunm-dev",
		Skills: []demoSkill{
			{Name: "Go", Complexity: 85, Consistency: 90, Collaboration: 78, Recency: 92, Impact: 80, History: []float64{70, 74, 79, 83, 85}},
			{Name: "PostgreSQL", Complexity: 72, Consistency: 80, Collaboration: 70, Recency: 85, Impact: 68, CertBonus: 15, History: []float64{60, 65, 68, 70, 72}},
		},
	},
	{
		Name:           "Priya Sharma",
		Email:          "priya@example.com",
		CGPA:           9.2,
		GithubUsername: "priyash",
		Skills: []demoSkill{
			{Name: "Python", Complexity: 90, Consistency: 85, Collaboration: 88, Recency: 95, Impact: 87, History: []float64{78, 82, 85, 88, 90}},
			{Name: "Machine Learning", Complexity: 82, Consistency: 75, Collaboration: 65, Recency: 90, Impact: 85, History: []float64{60, 68, 73, 78, 82}},
			{Name: "SQL", Complexity: 70, Consistency: 88, Collaboration: 72, Recency: 80, Impact: 66, History: []float64{62, 65, 67, 69, 70}},
		},
	},
	{
		Name:           "Rahul Verma",
		Email:          "rahul@example.com",
		CGPA:           6.8,
		MonthsInactive: 8,
		Skills: []demoSkill{
			{Name: "Java", Complexity: 65, Consistency: 55, Collaboration: 48, Recency: 40, Impact: 52, History: []float64{68, 66, 63, 60, 58}},
		},
	},
}

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "name", "email", "password_hash", "role"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "candidate_profiles", "user_id", "cgpa", "last_active_date"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role)
		 VALUES (gen_random_uuid(), $1, $2, $3, 'recruiter')
		 ON CONFLICT (email) DO NOTHING`,
		"Nisha Rao", "nisha@example.com", string(hash),
	); err != nil {
		return err
	}

	now := time.Now().UTC()
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	for _, c := range demoCandidates {
		var exists bool
		row := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, c.Email)
		if err := row.Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, name, email, password_hash, role)
			 VALUES (gen_random_uuid(), $1, $2, $3, 'candidate')`,
			c.Name, c.Email, string(hash),
		); err != nil {
			return err
		}

		lastActive := now.AddDate(0, -c.MonthsInactive, 0)
		if _, err := tx.Exec(ctx,
			`INSERT INTO candidate_profiles
			 (id, user_id, cgpa, overall_score, risk_label, data_completeness, last_active_date, github_username)
			 SELECT gen_random_uuid(), id, $2, 0, 'Low', 0, $3, NULLIF($4, '')
			 FROM users WHERE email = $1`,
			c.Email, c.CGPA, lastActive, c.GithubUsername,
		); err != nil {
			return err
		}

		for _, s := range c.Skills {
			score := (s.Complexity + s.Consistency + s.Collaboration + s.Recency + s.Impact) / 5
			if _, err := tx.Exec(ctx,
				`INSERT INTO skills
				 (id, candidate_id, name, score, complexity_score, consistency_score, collaboration_score,
				  recency_score, impact_score, certification_bonus)
				 SELECT gen_random_uuid(), id, $2, $3, $4, $5, $6, $7, $8, $9
				 FROM users WHERE email = $1`,
				c.Email, s.Name, score, s.Complexity, s.Consistency, s.Collaboration,
				s.Recency, s.Impact, s.CertBonus,
			); err != nil {
				return err
			}

			for i, h := range s.History {
				month := months[i%len(months)]
				if _, err := tx.Exec(ctx,
					`INSERT INTO skill_history (id, skill_id, month, score, position)
					 SELECT gen_random_uuid(), sk.id, $3, $4, $5
					 FROM skills sk JOIN users u ON u.id = sk.candidate_id
					 WHERE u.email = $1 AND sk.name = $2`,
					c.Email, s.Name, month, h, i,
				); err != nil {
					return err
				}
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
