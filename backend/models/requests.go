package models

// Request payloads for the JSON API. Callers identify themselves by
// userId in the body or query; session handling is out of scope.

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SetAvatarRequest struct {
	UserID    int64  `json:"userId"`
	AvatarURL string `json:"avatarUrl"`
}

type BindRequest struct {
	UserID      int64  `json:"userId"`
	PartnerName string `json:"partnerName"`
}

type RequestDrawRequest struct {
	UserID    int64 `json:"userId"`
	PartnerID int64 `json:"partnerId"`
}

type ApproveDrawRequest struct {
	UserID    int64 `json:"userId"`
	RequestID int64 `json:"requestId"`
}

type DrawRequest struct {
	UserID int64 `json:"userId"`
}

type UseCardRequest struct {
	UserID int64 `json:"userId"`
	CardID int64 `json:"cardId"`
}

type AddCustomCardRequest struct {
	UserID int64  `json:"userId"`
	Rarity string `json:"rarity"`
	Text   string `json:"text"`
}

type DeleteCustomCardRequest struct {
	UserID int64 `json:"userId"`
	CardID int64 `json:"cardId"`
}

type ToggleDefaultCardRequest struct {
	UserID int64  `json:"userId"`
	Rarity string `json:"rarity"`
	Text   string `json:"text"`
}
