package entities

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultTagColor = "#3B82F6"

type Tag struct {
	ID          uint                        `json:"id" gorm:"primaryKey"`
	Name        string                      `json:"name" gorm:"type:varchar(100);not null;index"`
	Color       string                      `json:"color" gorm:"type:varchar(16);not null;default:'#3B82F6'"`
	Description *string                     `json:"description" gorm:"type:text"`
	Keywords    datatypes.JSONSlice[string] `json:"keywords"`
	IsAutomatic bool                        `json:"isAutomatic" gorm:"not null;default:false;index"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (t Tag) KeywordList() []string {
	return t.Keywords
}
