package repository

import (
	"context"

	"github.com/costariann/gye-nyame-hotel/internal/model"
)

// CreateUser inserts an admin account. Duplicate usernames or emails
// surface as ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (user_id, username, email, password_hash, role, created_at)
               VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.db.ExecContext(ctx, q, u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	return mapPQError(err)
}

// UserByEmail returns the account for a login attempt, or
// sql.ErrNoRows.
func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT user_id, username, email, password_hash, role, created_at
               FROM users WHERE email = $1`
	var u model.User
	err := s.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
