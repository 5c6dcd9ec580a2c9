package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserCard is an owned card instance produced by a draw. Distinct from
// the draw log: the owner can redeem it later by marking it used.
type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID       int64  `bun:"id,pk,autoincrement"`
	UserID   int64  `bun:"user_id,notnull"`
	CardText string `bun:"card_text,notnull"`
	Rarity   string `bun:"rarity,notnull"`
	Used     bool   `bun:"used,notnull,default:false"`

	ObtainedAt time.Time `bun:"obtained_at,notnull,default:current_timestamp"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt  time.Time `bun:"updated_at,notnull"`
}
