package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DrawRequest is the two-party consent record gating a single draw.
// Lifecycle: pending (requester confirmed) -> approved (both confirmed)
// -> consumed (used, terminal). There is no cancel or expiry transition.
type DrawRequest struct {
	bun.BaseModel `bun:"table:draw_requests,alias:dr"`

	ID                 int64 `bun:"id,pk,autoincrement"`
	RequesterID        int64 `bun:"requester_id,notnull"`
	PartnerID          int64 `bun:"partner_id,notnull"`
	RequesterConfirmed bool  `bun:"requester_confirmed,notnull,default:false"`
	PartnerConfirmed   bool  `bun:"partner_confirmed,notnull,default:false"`
	Used               bool  `bun:"used,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`

	// Joined display names, populated by status queries only.
	RequesterName string `bun:"requester_name,scanonly"`
	PartnerName   string `bun:"partner_name,scanonly"`
}

type DrawRequestStatus string

const (
	DrawRequestPending  DrawRequestStatus = "pending"
	DrawRequestApproved DrawRequestStatus = "approved"
	DrawRequestConsumed DrawRequestStatus = "consumed"
)

func (r *DrawRequest) Status() DrawRequestStatus {
	switch {
	case r.Used:
		return DrawRequestConsumed
	case r.RequesterConfirmed && r.PartnerConfirmed:
		return DrawRequestApproved
	default:
		return DrawRequestPending
	}
}
