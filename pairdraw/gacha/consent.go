package gacha

import (
	"context"
	"log/slog"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
)

// ConsentManager runs the two-party handshake that gates every draw:
// pending (requester asked) -> approved (partner agreed) -> consumed
// (draw executed, terminal). There is deliberately no cancel or expiry
// transition.
type ConsentManager struct {
	store Store
}

func NewConsentManager(store Store) *ConsentManager {
	return &ConsentManager{store: store}
}

// Request opens a pending request against a bound partner. Any number
// of simultaneous requests may be outstanding, duplicates included.
func (m *ConsentManager) Request(ctx context.Context, requesterID, partnerID int64) (*models.DrawRequest, error) {
	bound, err := m.store.IsBound(ctx, requesterID, partnerID)
	if err != nil {
		return nil, err
	}
	if !bound {
		return nil, &repositories.InvalidArgumentError{
			Field:  "partnerId",
			Reason: "not bound to this partner",
		}
	}

	request, err := m.store.CreateRequest(ctx, requesterID, partnerID)
	if err != nil {
		return nil, err
	}

	slog.Info("Draw request opened",
		slog.Int64("request_id", request.ID),
		slog.Int64("requester_id", requesterID),
		slog.Int64("partner_id", partnerID))
	return request, nil
}

// Approve transitions pending -> approved. Only the named partner may
// approve; approving twice is a no-op success; a consumed request is a
// conflict.
func (m *ConsentManager) Approve(ctx context.Context, callerID, requestID int64) error {
	request, err := m.store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.PartnerID != callerID {
		return &repositories.ForbiddenError{
			Action: "approve draw request",
			Reason: "caller is not the request's partner",
		}
	}
	if request.Used {
		return &repositories.ConflictError{Entity: "draw_request", Field: "used", Value: requestID}
	}

	return m.store.ApproveRequest(ctx, requestID)
}

// Consumable returns the request a draw by this user would consume:
// the oldest approved one where the user is the requester. A partner
// cannot trigger a draw on a request they merely approved.
func (m *ConsentManager) Consumable(ctx context.Context, requesterID int64) (*models.DrawRequest, error) {
	return m.store.OldestApprovedRequest(ctx, requesterID)
}
