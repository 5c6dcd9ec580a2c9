package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
)

type UserCardRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.UserCard, error)
	GetByID(ctx context.Context, id int64) (*models.UserCard, error)
	MarkUsed(ctx context.Context, userID, cardID int64) error
}

type userCardRepository struct {
	*BaseRepository
}

func NewUserCardRepository(db *bun.DB) UserCardRepository {
	return &userCardRepository{BaseRepository: NewBaseRepository(db)}
}

// ListByUser returns the user's inventory, unused cards first, newest
// first within each group.
func (r *userCardRepository) ListByUser(ctx context.Context, userID int64) ([]*models.UserCard, error) {
	var cards []*models.UserCard
	err := r.db.NewSelect().
		Model(&cards).
		Where("user_id = ?", userID).
		Order("used ASC", "id DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_by_user", "user_card", err)
	}
	return cards, nil
}

func (r *userCardRepository) GetByID(ctx context.Context, id int64) (*models.UserCard, error) {
	card := new(models.UserCard)
	err := r.db.NewSelect().
		Model(card).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "user_card", id, err)
	}
	return card, nil
}

// MarkUsed redeems a card. Ownership is part of the predicate, so a
// caller can never mark someone else's card; a second redemption
// reports a conflict.
func (r *userCardRepository) MarkUsed(ctx context.Context, userID, cardID int64) error {
	res, err := r.db.NewUpdate().
		Model((*models.UserCard)(nil)).
		Set("used = TRUE").
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND user_id = ? AND used = FALSE", cardID, userID).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("mark_used", "user_card", cardID, err)
	}
	affected, _ := res.RowsAffected()
	if affected > 0 {
		return nil
	}

	card := new(models.UserCard)
	err = r.db.NewSelect().
		Model(card).
		Where("id = ? AND user_id = ?", cardID, userID).
		Scan(ctx)
	if err != nil {
		return &NotFoundError{Entity: "user_card", ID: cardID}
	}
	return &ConflictError{Entity: "user_card", Field: "used", Value: cardID}
}
