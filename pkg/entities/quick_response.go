package entities

import (
	"time"

	"gorm.io/datatypes"
)

// QuickResponse is a canned reply offered when one of its keywords shows up
// in an incoming message.
type QuickResponse struct {
	ID         uint                        `json:"id" gorm:"primaryKey"`
	Title      string                      `json:"title" gorm:"type:varchar(255);not null;index"`
	Content    string                      `json:"content" gorm:"type:text;not null"`
	Category   string                      `json:"category" gorm:"type:varchar(100)"`
	Keywords   datatypes.JSONSlice[string] `json:"keywords"`
	IsActive   bool                        `json:"isActive" gorm:"not null;default:true;index"`
	UsageCount int                         `json:"usageCount" gorm:"not null;default:0"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

func (q QuickResponse) KeywordList() []string {
	return q.Keywords
}
