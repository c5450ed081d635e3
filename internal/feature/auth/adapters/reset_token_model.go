package adapters

import (
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// ResetTokenModel is the GORM model for the password_reset_tokens table.
type ResetTokenModel struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"index;size:36;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *ResetTokenModel) ToEntity() *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		Token:     m.Token,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// ResetTokenModelFromEntity converts a domain entity to a GORM model.
func ResetTokenModelFromEntity(t *entity.PasswordResetToken) *ResetTokenModel {
	return &ResetTokenModel{
		Token:     t.Token,
		UserID:    t.UserID,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}
