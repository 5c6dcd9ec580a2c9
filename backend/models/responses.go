package models

import (
	"time"

	dbmodels "github.com/pairdraw/pairdraw/pairdraw/database/models"
	"github.com/pairdraw/pairdraw/pairdraw/gacha"
)

// APIResponse is the uniform JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func NewSuccessResponse(data interface{}, message string) *APIResponse {
	return &APIResponse{Success: true, Message: message, Data: data}
}

func NewErrorResponse(code, message string, details map[string]string) *APIResponse {
	return &APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message, Details: details},
	}
}

// UserResponse is the public view of a user. The stored credential is
// deliberately absent.
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	DrawCount int64  `json:"drawCount"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func NewUserResponse(u *dbmodels.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		DrawCount: u.DrawCount,
		AvatarURL: u.AvatarURL,
	}
}

func NewUserResponses(users []*dbmodels.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = NewUserResponse(u)
	}
	return out
}

type LoginResponse struct {
	User     *UserResponse   `json:"user"`
	Partners []*UserResponse `json:"partners"`
}

type DrawRequestResponse struct {
	ID            int64     `json:"id"`
	RequesterID   int64     `json:"requesterId"`
	PartnerID     int64     `json:"partnerId"`
	RequesterName string    `json:"requesterName,omitempty"`
	PartnerName   string    `json:"partnerName,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewDrawRequestResponse(r *dbmodels.DrawRequest) *DrawRequestResponse {
	return &DrawRequestResponse{
		ID:            r.ID,
		RequesterID:   r.RequesterID,
		PartnerID:     r.PartnerID,
		RequesterName: r.RequesterName,
		PartnerName:   r.PartnerName,
		Status:        string(r.Status()),
		CreatedAt:     r.CreatedAt,
	}
}

type StatusResponse struct {
	User     *UserResponse          `json:"user"`
	Partners []*UserResponse        `json:"partners"`
	Requests []*DrawRequestResponse `json:"requests"`
}

type DrawResponse struct {
	Card *CardResponse `json:"card"`
	User *UserResponse `json:"user"`
}

type CardResponse struct {
	Rarity string `json:"rarity"`
	Text   string `json:"text"`
}

type UserCardResponse struct {
	ID         int64     `json:"id"`
	Rarity     string    `json:"rarity"`
	Text       string    `json:"text"`
	Used       bool      `json:"used"`
	ObtainedAt time.Time `json:"obtainedAt"`
}

func NewUserCardResponse(c *dbmodels.UserCard) *UserCardResponse {
	return &UserCardResponse{
		ID:         c.ID,
		Rarity:     c.Rarity,
		Text:       c.CardText,
		Used:       c.Used,
		ObtainedAt: c.ObtainedAt,
	}
}

type CustomCardResponse struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"ownerId"`
	Rarity  string `json:"rarity"`
	Text    string `json:"text"`
	Enabled bool   `json:"enabled"`
}

func NewCustomCardResponse(c *dbmodels.CustomCard) *CustomCardResponse {
	return &CustomCardResponse{
		ID:      c.ID,
		OwnerID: c.OwnerID,
		Rarity:  c.Rarity,
		Text:    c.Text,
		Enabled: c.Enabled,
	}
}

type DrawLogResponse struct {
	ID        int64     `json:"id"`
	Rarity    string    `json:"rarity"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewDrawLogResponse(l *dbmodels.DrawLog) *DrawLogResponse {
	return &DrawLogResponse{
		ID:        l.ID,
		Rarity:    l.Rarity,
		Text:      l.CardText,
		CreatedAt: l.CreatedAt,
	}
}

type DrawLogListResponse struct {
	Logs  []*DrawLogResponse `json:"logs"`
	Total int                `json:"total"`
}

// PoolEntry is one drawable line in the card-pool view. Default entries
// carry a disabled flag instead of disappearing, so the pool editor can
// offer re-enabling; custom entries carry owner attribution.
type PoolEntry struct {
	Text     string `json:"text"`
	Source   string `json:"source"` // "default" or "custom"
	OwnerID  int64  `json:"ownerId,omitempty"`
	CardID   int64  `json:"cardId,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

type CardPoolResponse map[gacha.Rarity][]PoolEntry

type DisabledCardResponse struct {
	Rarity string `json:"rarity"`
	Text   string `json:"text"`
}
