package domain

import "time"

// User is read-only here; accounts are managed by the identity service.
type User struct {
	ID             string    `json:"id"`
	DisplayName    string    `json:"display_name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Identity is the authenticated caller, passed explicitly into every core operation.
type Identity struct {
	UserID string
	Admin  bool
}
