package gacha

import (
	"context"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
)

//go:generate mockgen -destination=mock/store.go -package=mock . Store

// Card is a drawn outcome.
type Card struct {
	Rarity Rarity `json:"rarity"`
	Text   string `json:"text"`
}

// Store is everything the engine needs from persistent state. The SQL
// implementation lives in this package; tests substitute mocks or an
// in-memory fake.
type Store interface {
	// Binding registry reads.
	IsBound(ctx context.Context, userID, partnerID int64) (bool, error)
	ListPartnerIDs(ctx context.Context, userID int64) ([]int64, error)

	// Consent request state.
	CreateRequest(ctx context.Context, requesterID, partnerID int64) (*models.DrawRequest, error)
	GetRequest(ctx context.Context, id int64) (*models.DrawRequest, error)
	ApproveRequest(ctx context.Context, id int64) error
	OldestApprovedRequest(ctx context.Context, requesterID int64) (*models.DrawRequest, error)

	// Pool inputs.
	ListDisabledTexts(ctx context.Context, userID int64, rarity Rarity) ([]string, error)
	ListEnabledCustomTexts(ctx context.Context, ownerID int64, rarity Rarity) ([]string, error)

	// ExecuteDraw atomically consumes the gating request, increments the
	// user's draw counter, appends the draw log entry and the owned
	// card. Loses with a ConflictError when a concurrent draw consumed
	// the request first; in that case nothing is written.
	ExecuteDraw(ctx context.Context, requestID, userID int64, card Card) (*models.User, error)
}
