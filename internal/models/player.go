package models

import "time"

type Player struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	IdentityKey string     `gorm:"size:100;not null;uniqueIndex" json:"-"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Career      string     `gorm:"size:100;not null" json:"career"`
	Age         int        `gorm:"not null" json:"age"`
	Total       int        `gorm:"not null;default:0" json:"total"`
	Reason      *string    `json:"reason"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}
