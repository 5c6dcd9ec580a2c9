package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Couple is a symmetric binding between two users. Either column may be
// queried as "self"; rows are never updated or deleted.
type Couple struct {
	bun.BaseModel `bun:"table:couples,alias:cp"`

	ID      int64 `bun:"id,pk,autoincrement"`
	UserAID int64 `bun:"user_a_id,notnull"`
	UserBID int64 `bun:"user_b_id,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// PartnerOf returns the other side of the pair, or 0 when userID is not
// part of this couple.
func (c *Couple) PartnerOf(userID int64) int64 {
	switch userID {
	case c.UserAID:
		return c.UserBID
	case c.UserBID:
		return c.UserAID
	}
	return 0
}
