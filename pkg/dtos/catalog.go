package dtos

import "github.com/msgdesk/pkg/entities"

type CreateContactDTO struct {
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone" binding:"required,isphone"`
	IsGroup   bool    `json:"isGroup"`
	GroupName *string `json:"groupName"`
	Avatar    *string `json:"avatar"`
}

type CreateTagDTO struct {
	Name        string   `json:"name" binding:"required"`
	Color       string   `json:"color" binding:"omitempty,iscolor"`
	Description *string  `json:"description"`
	Keywords    []string `json:"keywords"`
	IsAutomatic bool     `json:"isAutomatic"`
}

type CreateQuickResponseDTO struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// UpdateSettingsDTO is a partial update: nil fields are left untouched.
type UpdateSettingsDTO struct {
	AlertTimeMinutes         *int    `json:"alertTimeMinutes" binding:"omitempty,min=1,max=1440"`
	EnablePushNotifications  *bool   `json:"enablePushNotifications"`
	EnableEmailNotifications *bool   `json:"enableEmailNotifications"`
	WorkingHoursStart        *string `json:"workingHoursStart" binding:"omitempty,hhmm"`
	WorkingHoursEnd          *string `json:"workingHoursEnd" binding:"omitempty,hhmm"`
	AutoTagging              *bool   `json:"autoTagging"`
	AISuggestions            *bool   `json:"aiSuggestions"`
	Theme                    *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	Language                 *string `json:"language" binding:"omitempty,min=2,max=8"`
}

type SimulatorDTO struct {
	Action      string `json:"action" binding:"required"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Content     string `json:"content"`
	MessageType string `json:"messageType"`
}

type DemoDataDTO struct {
	Message  string `json:"message"`
	Contacts int    `json:"contacts"`
	Messages int    `json:"messages"`
}

type ContactSummaryDTO struct {
	entities.Contact
	MessageCount int64             `json:"messageCount"`
	LastMessage  *entities.Message `json:"lastMessage"`
}

type TagSummaryDTO struct {
	entities.Tag
	MessageCount int64 `json:"messageCount"`
}
