package dtos

import (
	"time"

	"github.com/msgdesk/pkg/entities"
)

type CreateMessageDTO struct {
	Content    string `json:"content"`
	ContactID  uint   `json:"contactId"`
	IsFromUser bool   `json:"isFromUser"`
	Type       string `json:"type"`
}

// UpdateMessageDTO is a partial update: nil fields are left untouched.
type UpdateMessageDTO struct {
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"`
	RespondedAt *time.Time `json:"respondedAt"`
}

type ListMessagesQuery struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Category string `form:"category"`
	Search   string `form:"search"`
}

type ClassifyDTO struct {
	MessageID *uint  `json:"messageId"`
	Content   string `json:"content"`
}

type ClassificationDTO struct {
	Priority string   `json:"priority"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type SuggestResponseDTO struct {
	Content        string   `json:"content"`
	ContactName    string   `json:"contactName"`
	MessageHistory []string `json:"messageHistory"`
}

type SuggestionDTO struct {
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
}

type SuggestionsDTO struct {
	Suggestions []SuggestionDTO `json:"suggestions"`
}

type ReplyDTO struct {
	Content         string `json:"content"`
	QuickResponseID *uint  `json:"quickResponseId"`
}

type ReplyResultDTO struct {
	Original  *entities.Message `json:"original"`
	Reply     *entities.Message `json:"reply"`
	Delivered bool              `json:"delivered"`
}
