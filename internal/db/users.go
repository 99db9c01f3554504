package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/model"
)

func (db *Postgres) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return db.Pool.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.IsAdmin,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, name, password_hash, is_admin, created_at, updated_at, last_login_at
		FROM users
		WHERE email = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
		SELECT id, email, name, password_hash, is_admin, created_at, updated_at, last_login_at
		FROM users
		WHERE id = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) (*model.User, error) {
	query := `
		UPDATE users
		SET last_login_at = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, name, password_hash, is_admin, created_at, updated_at, last_login_at
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, id, at).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	query := `
		UPDATE users
		SET is_admin = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := db.Pool.Exec(ctx, query, id, isAdmin)
	return err
}

func (db *Postgres) ListUsersWithJobCounts(ctx context.Context) ([]model.UserWithJobCount, error) {
	query := `
		SELECT u.id, u.email, u.name, u.is_admin, u.last_login_at, u.created_at, u.updated_at,
		       COUNT(j.id)
		FROM users u
		LEFT JOIN jobs j ON j.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.UserWithJobCount
	for rows.Next() {
		var u model.UserWithJobCount
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.Name,
			&u.IsAdmin,
			&u.LastLoginAt,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.JobCount,
		); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	if list == nil {
		list = []model.UserWithJobCount{}
	}
	return list, rows.Err()
}
