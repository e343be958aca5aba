package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the GORM model backing dashboard sessions.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email          string         `gorm:"type:varchar(256);not null;uniqueIndex" json:"email"`
	PasswordHash   string         `gorm:"type:varchar(256);not null" json:"-"`
	EmailConfirmed bool           `gorm:"not null;default:false" json:"email_confirmed"`
	ConfirmToken   string         `gorm:"type:varchar(64);index" json:"-"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
