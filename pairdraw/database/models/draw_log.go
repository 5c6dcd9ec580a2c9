package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DrawLog is the append-only audit trail of successful draws. Rows are
// never updated or deleted.
type DrawLog struct {
	bun.BaseModel `bun:"table:draw_logs,alias:dl"`

	ID       int64  `bun:"id,pk,autoincrement"`
	UserID   int64  `bun:"user_id,notnull"`
	CardText string `bun:"card_text,notnull"`
	Rarity   string `bun:"rarity,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
