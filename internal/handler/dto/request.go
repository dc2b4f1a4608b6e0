package dto

// SlotRequest is not validated here: a bad address is a per-slot outcome.
type SlotRequest struct {
	Letter string `json:"letter"`
	Number int    `json:"number"`
}

type ReserveRequest struct {
	MemberID  string        `json:"member_id" binding:"required,uuid"`
	Slots     []SlotRequest `json:"slots" binding:"required,min=1,dive"`
	ExpiresAt *string       `json:"expires_at"`
}

type ReleaseRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}

type ListSlotsQuery struct {
	Letter   string `form:"letter"`
	Number   int    `form:"number" binding:"gte=0"`
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"gte=0"`
	PageSize int    `form:"page_size" binding:"gte=0"`
}

type CreateMemberRequest struct {
	DisplayName    string `json:"display_name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
