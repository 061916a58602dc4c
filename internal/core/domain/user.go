package domain

import "time"

// DefaultUserID identifies the demo user when no authentication is present.
const DefaultUserID = "user-1"

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	WalletAddress *string   `json:"walletAddress"`
	DisplayName   string    `json:"displayName"`
	AvatarURL     string    `json:"avatarUrl"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
