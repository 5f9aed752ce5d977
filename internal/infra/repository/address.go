package repository

import (
	"context"

	"groupcart/internal/infra"
	"groupcart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AddressRepository struct {
	db *pgxpool.Pool
}

func NewAddressRepository(db *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.AddressSnapshot, error) {
	var a commands.AddressSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, recipient, line1, line2, city, state, postal_code, country, phone
		FROM addresses WHERE id = $1`, id).
		Scan(&a.ID, &a.UserID, &a.Recipient, &a.Line1, &a.Line2, &a.City, &a.State, &a.PostalCode, &a.Country, &a.Phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find address", err)
	}
	return &a, nil
}
