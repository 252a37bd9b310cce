package models

import "time"

// Token is the persisted bearer token for a user. Authorization reuses the
// existing key instead of minting a new one on every login.
type Token struct {
	Key       string `gorm:"primaryKey;size:512"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Token) TableName() string {
	return "auth_tokens"
}
