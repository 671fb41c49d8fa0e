package entities

import "time"

// Contact is the sender of messages, keyed naturally by phone number.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Phone     string    `json:"phone" gorm:"type:varchar(32);uniqueIndex;not null"`
	IsGroup   bool      `json:"isGroup" gorm:"not null;default:false"`
	GroupName *string   `json:"groupName" gorm:"type:varchar(255)"`
	Avatar    *string   `json:"avatar" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
