package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventpoll/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Upsert(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, created_at
	`
	u.Email = domain.NormalizeEmail(u.Email)
	return r.DB.QueryRowContext(ctx, query, u.Username, u.Email).Scan(&u.ID, &u.CreatedAt)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, username, email, created_at
		FROM users
		WHERE email = $1
	`
	return r.get(ctx, query, domain.NormalizeEmail(email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, email, created_at
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

func (r *userRepository) get(ctx context.Context, query string, arg string) (*domain.User, error) {
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pqCode(err) == codeInvalidTextRepr {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
