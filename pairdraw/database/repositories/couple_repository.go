package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
)

// CoupleRepository is the binding registry: symmetric, non-exclusive
// partner relationships.
type CoupleRepository interface {
	Bind(ctx context.Context, userID, partnerID int64) (*models.Couple, error)
	IsBound(ctx context.Context, userID, partnerID int64) (bool, error)
	ListPartnerIDs(ctx context.Context, userID int64) ([]int64, error)
}

type coupleRepository struct {
	*BaseRepository
}

func NewCoupleRepository(db *bun.DB) CoupleRepository {
	return &coupleRepository{BaseRepository: NewBaseRepository(db)}
}

// Bind creates the pair row unless one already exists in either order.
// Re-binding an existing pair returns the existing row. Lookup and
// insert run in one transaction so two racing binds cannot duplicate
// the pair.
func (r *coupleRepository) Bind(ctx context.Context, userID, partnerID int64) (*models.Couple, error) {
	if userID == partnerID {
		return nil, &InvalidArgumentError{Field: "partner", Reason: "cannot bind to yourself"}
	}

	couple := new(models.Couple)
	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(couple).
			Where("(user_a_id = ? AND user_b_id = ?) OR (user_a_id = ? AND user_b_id = ?)",
				userID, partnerID, partnerID, userID).
			Limit(1).
			Scan(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		couple.UserAID = userID
		couple.UserBID = partnerID
		couple.CreatedAt = time.Now()
		_, err = tx.NewInsert().Model(couple).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, r.HandleError("bind", "couple", err)
	}
	return couple, nil
}

func (r *coupleRepository) IsBound(ctx context.Context, userID, partnerID int64) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Couple)(nil)).
		Where("(user_a_id = ? AND user_b_id = ?) OR (user_a_id = ? AND user_b_id = ?)",
			userID, partnerID, partnerID, userID).
		Exists(ctx)
	return exists, r.HandleError("is_bound", "couple", err)
}

// ListPartnerIDs returns direct partners in the order the bindings were
// created. Pool resolution depends on this order being stable.
func (r *coupleRepository) ListPartnerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var couples []*models.Couple
	err := r.db.NewSelect().
		Model(&couples).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_partners", "couple", err)
	}

	partners := make([]int64, 0, len(couples))
	for _, c := range couples {
		if id := c.PartnerOf(userID); id != 0 {
			partners = append(partners, id)
		}
	}
	return partners, nil
}
