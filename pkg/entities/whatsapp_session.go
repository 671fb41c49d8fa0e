package entities

import (
	"time"
)

// WhatsAppSessionID is the fixed key of the single linked-device session.
const WhatsAppSessionID uint = 1

// WhatsAppSession tracks the linked WhatsApp account so the status survives
// restarts. The device keys themselves live in the whatsmeow store.
type WhatsAppSession struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	IsConnected  bool      `json:"isConnected" gorm:"default:false"`
	IsLoggedIn   bool      `json:"isLoggedIn" gorm:"default:false"`
	PhoneNumber  string    `json:"phoneNumber" gorm:"type:varchar(32)"`
	LastActiveAt time.Time `json:"lastActiveAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
