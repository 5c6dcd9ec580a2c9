package gacha

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
)

// SQLStore backs the engine with PostgreSQL, reusing the per-entity
// repositories for plain reads and owning the draw transaction itself.
type SQLStore struct {
	db       *bun.DB
	couples  repositories.CoupleRepository
	requests repositories.DrawRequestRepository
	custom   repositories.CustomCardRepository
	disabled repositories.DisabledCardRepository
}

func NewSQLStore(
	db *bun.DB,
	couples repositories.CoupleRepository,
	requests repositories.DrawRequestRepository,
	custom repositories.CustomCardRepository,
	disabled repositories.DisabledCardRepository,
) *SQLStore {
	return &SQLStore{
		db:       db,
		couples:  couples,
		requests: requests,
		custom:   custom,
		disabled: disabled,
	}
}

func (s *SQLStore) IsBound(ctx context.Context, userID, partnerID int64) (bool, error) {
	return s.couples.IsBound(ctx, userID, partnerID)
}

func (s *SQLStore) ListPartnerIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.couples.ListPartnerIDs(ctx, userID)
}

func (s *SQLStore) CreateRequest(ctx context.Context, requesterID, partnerID int64) (*models.DrawRequest, error) {
	return s.requests.Create(ctx, requesterID, partnerID)
}

func (s *SQLStore) GetRequest(ctx context.Context, id int64) (*models.DrawRequest, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *SQLStore) ApproveRequest(ctx context.Context, id int64) error {
	return s.requests.Approve(ctx, id)
}

func (s *SQLStore) OldestApprovedRequest(ctx context.Context, requesterID int64) (*models.DrawRequest, error) {
	return s.requests.OldestApproved(ctx, requesterID)
}

func (s *SQLStore) ListDisabledTexts(ctx context.Context, userID int64, rarity Rarity) ([]string, error) {
	return s.disabled.ListTexts(ctx, userID, string(rarity))
}

func (s *SQLStore) ListEnabledCustomTexts(ctx context.Context, ownerID int64, rarity Rarity) ([]string, error) {
	return s.custom.ListEnabledTexts(ctx, ownerID, string(rarity))
}

// ExecuteDraw applies the four draw mutations in one transaction. The
// request consume is a compare-and-swap on the used flag: when a
// concurrent draw already consumed the request, zero rows match, the
// transaction rolls back and the caller gets a ConflictError.
func (s *SQLStore) ExecuteDraw(ctx context.Context, requestID, userID int64, card Card) (*models.User, error) {
	user := new(models.User)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.DrawRequest)(nil)).
			Set("used = TRUE").
			Where("id = ? AND used = FALSE", requestID).
			Exec(ctx)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return &repositories.ConflictError{Entity: "draw_request", Field: "used", Value: requestID}
		}

		if _, err := tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("draw_count = draw_count + 1").
			Set("updated_at = ?", time.Now()).
			Where("id = ?", userID).
			Exec(ctx); err != nil {
			return err
		}

		log := &models.DrawLog{
			UserID:    userID,
			CardText:  card.Text,
			Rarity:    string(card.Rarity),
			CreatedAt: time.Now(),
		}
		if _, err := tx.NewInsert().Model(log).Exec(ctx); err != nil {
			return err
		}

		owned := &models.UserCard{
			UserID:     userID,
			CardText:   card.Text,
			Rarity:     string(card.Rarity),
			ObtainedAt: time.Now(),
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if _, err := tx.NewInsert().Model(owned).Exec(ctx); err != nil {
			return err
		}

		return tx.NewSelect().
			Model(user).
			Where("id = ?", userID).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
