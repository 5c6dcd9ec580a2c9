package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
)

type CustomCardRepository interface {
	Create(ctx context.Context, ownerID int64, rarity, text string) (*models.CustomCard, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.CustomCard, error)
	ListEnabledTexts(ctx context.Context, ownerID int64, rarity string) ([]string, error)
	SoftDelete(ctx context.Context, ownerID, cardID int64) error
}

type customCardRepository struct {
	*BaseRepository
}

func NewCustomCardRepository(db *bun.DB) CustomCardRepository {
	return &customCardRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *customCardRepository) Create(ctx context.Context, ownerID int64, rarity, text string) (*models.CustomCard, error) {
	card := &models.CustomCard{
		OwnerID:   ownerID,
		Rarity:    rarity,
		Text:      text,
		Enabled:   true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := r.db.NewInsert().Model(card).Exec(ctx); err != nil {
		return nil, r.HandleError("create", "custom_card", err)
	}
	return card, nil
}

func (r *customCardRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.CustomCard, error) {
	var cards []*models.CustomCard
	err := r.db.NewSelect().
		Model(&cards).
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_by_owner", "custom_card", err)
	}
	return cards, nil
}

// ListEnabledTexts returns the owner's enabled card texts for one tier,
// descending id, matching the display convention used elsewhere.
func (r *customCardRepository) ListEnabledTexts(ctx context.Context, ownerID int64, rarity string) ([]string, error) {
	var texts []string
	err := r.db.NewSelect().
		Model((*models.CustomCard)(nil)).
		Column("text").
		Where("owner_id = ? AND rarity = ? AND enabled = TRUE", ownerID, rarity).
		Order("id DESC").
		Scan(ctx, &texts)
	if err != nil {
		return nil, r.HandleError("list_enabled_texts", "custom_card", err)
	}
	return texts, nil
}

// SoftDelete disables a card without removing the row.
func (r *customCardRepository) SoftDelete(ctx context.Context, ownerID, cardID int64) error {
	res, err := r.db.NewUpdate().
		Model((*models.CustomCard)(nil)).
		Set("enabled = FALSE").
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND owner_id = ?", cardID, ownerID).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("soft_delete", "custom_card", cardID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return &NotFoundError{Entity: "custom_card", ID: cardID}
	}
	return nil
}
