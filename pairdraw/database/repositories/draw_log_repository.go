package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
)

type DrawLogRepository interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]*models.DrawLog, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}

type drawLogRepository struct {
	*BaseRepository
}

func NewDrawLogRepository(db *bun.DB) DrawLogRepository {
	return &drawLogRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *drawLogRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.DrawLog, error) {
	var logs []*models.DrawLog
	err := r.db.NewSelect().
		Model(&logs).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_by_user", "draw_log", err)
	}
	return logs, nil
}

func (r *drawLogRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.DrawLog)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
	return count, r.HandleError("count_by_user", "draw_log", err)
}
