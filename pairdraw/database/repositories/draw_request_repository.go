package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
)

type DrawRequestRepository interface {
	Create(ctx context.Context, requesterID, partnerID int64) (*models.DrawRequest, error)
	GetByID(ctx context.Context, id int64) (*models.DrawRequest, error)
	Approve(ctx context.Context, id int64) error
	OldestApproved(ctx context.Context, requesterID int64) (*models.DrawRequest, error)
	ListRecentForUser(ctx context.Context, userID int64, limit int) ([]*models.DrawRequest, error)
}

type drawRequestRepository struct {
	*BaseRepository
}

func NewDrawRequestRepository(db *bun.DB) DrawRequestRepository {
	return &drawRequestRepository{BaseRepository: NewBaseRepository(db)}
}

// Create inserts a new pending request: the requester side is confirmed
// by the act of asking. Duplicate outstanding requests to the same
// partner are allowed.
func (r *drawRequestRepository) Create(ctx context.Context, requesterID, partnerID int64) (*models.DrawRequest, error) {
	request := &models.DrawRequest{
		RequesterID:        requesterID,
		PartnerID:          partnerID,
		RequesterConfirmed: true,
		PartnerConfirmed:   false,
		Used:               false,
		CreatedAt:          time.Now(),
	}
	if _, err := r.db.NewInsert().Model(request).Exec(ctx); err != nil {
		return nil, r.HandleError("create", "draw_request", err)
	}
	return request, nil
}

func (r *drawRequestRepository) GetByID(ctx context.Context, id int64) (*models.DrawRequest, error) {
	request := new(models.DrawRequest)
	err := r.db.NewSelect().
		Model(request).
		Where("dr.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "draw_request", id, err)
	}
	return request, nil
}

// Approve flips partner_confirmed on an unused request. The update is
// idempotent: approving an already-approved request succeeds without
// changing state. Consumed requests report a conflict.
func (r *drawRequestRepository) Approve(ctx context.Context, id int64) error {
	res, err := r.db.NewUpdate().
		Model((*models.DrawRequest)(nil)).
		Set("partner_confirmed = TRUE").
		Where("id = ? AND used = FALSE", id).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("approve", "draw_request", id, err)
	}
	affected, _ := res.RowsAffected()
	if affected > 0 {
		return nil
	}

	// No row matched: either the request is gone or already consumed.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return &ConflictError{Entity: "draw_request", Field: "used", Value: id}
}

// OldestApproved returns the lowest-id approved, unconsumed request for
// the requester. FIFO order keeps consumption fair when several
// approvals are queued.
func (r *drawRequestRepository) OldestApproved(ctx context.Context, requesterID int64) (*models.DrawRequest, error) {
	request := new(models.DrawRequest)
	err := r.db.NewSelect().
		Model(request).
		Where("requester_id = ? AND requester_confirmed = TRUE AND partner_confirmed = TRUE AND used = FALSE", requesterID).
		Order("id ASC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &InvalidStateError{Entity: "draw_request", Reason: "no approved request to consume"}
	}
	if err != nil {
		return nil, r.HandleError("oldest_approved", "draw_request", err)
	}
	return request, nil
}

// ListRecentForUser returns requests where the user is either side,
// newest first, with display names joined on.
func (r *drawRequestRepository) ListRecentForUser(ctx context.Context, userID int64, limit int) ([]*models.DrawRequest, error) {
	var requests []*models.DrawRequest
	err := r.db.NewSelect().
		Model(&requests).
		ColumnExpr("dr.*").
		ColumnExpr("u1.name AS requester_name").
		ColumnExpr("u2.name AS partner_name").
		Join("JOIN users AS u1 ON u1.id = dr.requester_id").
		Join("JOIN users AS u2 ON u2.id = dr.partner_id").
		Where("dr.requester_id = ? OR dr.partner_id = ?", userID, userID).
		Order("dr.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_recent", "draw_request", err)
	}
	return requests, nil
}
