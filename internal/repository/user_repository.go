package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Chidwan3578/Veridex-Local/internal/database"
	"github.com/Chidwan3578/Veridex-Local/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role),
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET name = $2, updated_at = NOW() WHERE id = $1`,
		id, name,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE role = $1 ORDER BY created_at ASC`,
		string(role),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var (
			u user.User
			r string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &r, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		u.Role = user.Role(r)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u    user.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
