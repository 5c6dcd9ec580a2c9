package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64  `bun:"id,pk,autoincrement"`
	Name      string `bun:"name,notnull,unique"`
	DrawCount int64  `bun:"draw_count,notnull,default:0"`
	AvatarURL string `bun:"avatar_url,type:text,default:''"`

	// Opaque credential adopted on first login. Never serialized to
	// API responses.
	Credential string `bun:"credential,type:text,default:''"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
