package entities

import (
	"time"
)

type MessageType string

const (
	MessageTypeText     MessageType = "TEXT"
	MessageTypeImage    MessageType = "IMAGE"
	MessageTypeVideo    MessageType = "VIDEO"
	MessageTypeDocument MessageType = "DOCUMENT"
)

type MessageStatus string

const (
	StatusPending    MessageStatus = "PENDING"
	StatusRead       MessageStatus = "READ"
	StatusResponded  MessageStatus = "RESPONDED"
	StatusInProgress MessageStatus = "IN_PROGRESS"
	StatusArchived   MessageStatus = "ARCHIVED"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

type Category string

const (
	CategoryPersonal     Category = "PERSONAL"
	CategoryProfessional Category = "PROFESSIONAL"
	CategorySales        Category = "SALES"
	CategorySupport      Category = "SUPPORT"
	CategoryMarketing    Category = "MARKETING"
	CategoryOther        Category = "OTHER"
)

// Message is a single text received from (or sent to) a contact.
type Message struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Content     string        `json:"content" gorm:"type:text;not null"`
	Type        MessageType   `json:"type" gorm:"type:varchar(20);not null;default:'TEXT'"`
	Status      MessageStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Priority    Priority      `json:"priority" gorm:"type:varchar(20);not null;default:'NORMAL';index"`
	Category    Category      `json:"category" gorm:"type:varchar(20);not null;default:'OTHER';index"`
	IsFromUser  bool          `json:"isFromUser" gorm:"not null;default:false"`
	ContactID   uint          `json:"contactId" gorm:"not null;index"`
	RespondedAt *time.Time    `json:"respondedAt"`
	CreatedAt   time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Relations
	Contact *Contact     `json:"contact,omitempty" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
	Tags    []MessageTag `json:"tags" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

// MessageTag associates a message with a tag. The composite primary key makes
// repeated associations a no-op.
type MessageTag struct {
	MessageID uint      `json:"messageId" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint      `json:"tagId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Tag *Tag `json:"tag,omitempty" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeVideo, MessageTypeDocument:
		return true
	}
	return false
}

func (s MessageStatus) Valid() bool {
	switch s {
	case StatusPending, StatusRead, StatusResponded, StatusInProgress, StatusArchived:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryProfessional, CategorySales, CategorySupport, CategoryMarketing, CategoryOther:
		return true
	}
	return false
}
