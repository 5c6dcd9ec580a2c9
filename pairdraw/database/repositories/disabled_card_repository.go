package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
)

type DisabledCardRepository interface {
	Disable(ctx context.Context, userID int64, rarity, text string) error
	Enable(ctx context.Context, userID int64, rarity, text string) error
	ListByUser(ctx context.Context, userID int64) ([]*models.DisabledDefaultCard, error)
	ListTexts(ctx context.Context, userID int64, rarity string) ([]string, error)
}

type disabledCardRepository struct {
	*BaseRepository
}

func NewDisabledCardRepository(db *bun.DB) DisabledCardRepository {
	return &disabledCardRepository{BaseRepository: NewBaseRepository(db)}
}

// Disable hides one default card for the user. The (user, rarity, text)
// constraint makes repeat disables a no-op.
func (r *disabledCardRepository) Disable(ctx context.Context, userID int64, rarity, text string) error {
	entry := &models.DisabledDefaultCard{
		UserID:    userID,
		Rarity:    rarity,
		Text:      text,
		CreatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(entry).
		On("CONFLICT (user_id, rarity, text) DO NOTHING").
		Exec(ctx)
	return r.HandleError("disable", "disabled_default_card", err)
}

func (r *disabledCardRepository) Enable(ctx context.Context, userID int64, rarity, text string) error {
	_, err := r.db.NewDelete().
		Model((*models.DisabledDefaultCard)(nil)).
		Where("user_id = ? AND rarity = ? AND text = ?", userID, rarity, text).
		Exec(ctx)
	return r.HandleError("enable", "disabled_default_card", err)
}

func (r *disabledCardRepository) ListByUser(ctx context.Context, userID int64) ([]*models.DisabledDefaultCard, error) {
	var entries []*models.DisabledDefaultCard
	err := r.db.NewSelect().
		Model(&entries).
		Where("user_id = ?", userID).
		Order("id DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_by_user", "disabled_default_card", err)
	}
	return entries, nil
}

func (r *disabledCardRepository) ListTexts(ctx context.Context, userID int64, rarity string) ([]string, error) {
	var texts []string
	err := r.db.NewSelect().
		Model((*models.DisabledDefaultCard)(nil)).
		Column("text").
		Where("user_id = ? AND rarity = ?", userID, rarity).
		Scan(ctx, &texts)
	if err != nil {
		return nil, r.HandleError("list_texts", "disabled_default_card", err)
	}
	return texts, nil
}
