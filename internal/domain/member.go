package domain

import "time"

// Member is a džemat member that can hold grave reservations.
type Member struct {
	ID             string    `json:"id"`
	DisplayName    string    `json:"display_name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateMemberInput struct {
	DisplayName    string
	TelegramChatID *int64
}
