package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DisabledDefaultCard hides one system default card (identified by
// rarity + exact text) from the owning user's draw pool. Unique on
// (user_id, rarity, text).
type DisabledDefaultCard struct {
	bun.BaseModel `bun:"table:disabled_default_cards,alias:ddc"`

	ID     int64  `bun:"id,pk,autoincrement"`
	UserID int64  `bun:"user_id,notnull,unique:uq_disabled_default_card"`
	Rarity string `bun:"rarity,notnull,unique:uq_disabled_default_card"`
	Text   string `bun:"text,notnull,unique:uq_disabled_default_card"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
