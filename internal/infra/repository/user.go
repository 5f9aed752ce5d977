package repository

import (
	"context"

	"groupcart/internal/infra"
	"groupcart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	var u commands.UserSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, email, name FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &u, nil
}
