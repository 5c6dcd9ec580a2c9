package models

import (
	"time"

	"github.com/uptrace/bun"
)

// CustomCard is a user-authored pool entry. Soft-deleted via enabled
// rather than removed, so past draw logs keep referring to real text.
type CustomCard struct {
	bun.BaseModel `bun:"table:custom_cards,alias:cc"`

	ID      int64  `bun:"id,pk,autoincrement"`
	OwnerID int64  `bun:"owner_id,notnull"`
	Rarity  string `bun:"rarity,notnull"`
	Text    string `bun:"text,notnull"`
	Enabled bool   `bun:"enabled,notnull,default:true"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
