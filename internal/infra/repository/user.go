package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webhooknest/internal/infra"
	"webhooknest/internal/usecase/queries"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, email, name, passwordHash, apiKey string) (*queries.UserView, error) {
	id := uuid.New()

	const sql = `
		INSERT INTO users (id, email, name, password_hash, api_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, api_key`

	var view queries.UserView
	err := r.pool.QueryRow(ctx, sql, id, email, name, passwordHash, apiKey).
		Scan(&view.ID, &view.Email, &view.APIKey)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return &view, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	const sql = `
		SELECT id, email, api_key, password_hash
		FROM users
		WHERE email = $1`

	var (
		view queries.UserView
		hash string
	)
	err := r.pool.QueryRow(ctx, sql, email).Scan(&view.ID, &view.Email, &view.APIKey, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const sql = `
		SELECT id, email, api_key
		FROM users
		WHERE id = $1`

	var view queries.UserView
	err := r.pool.QueryRow(ctx, sql, id).Scan(&view.ID, &view.Email, &view.APIKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}
