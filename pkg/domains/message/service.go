package message

import (
	"context"
	"strings"
	"time"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"github.com/msgdesk/pkg/metrics"
)

type Service interface {
	Create(ctx context.Context, req dtos.CreateMessageDTO) (*entities.Message, error)
	Get(ctx context.Context, id uint) (*entities.Message, error)
	List(ctx context.Context, filter Filter) ([]entities.Message, error)
	Update(ctx context.Context, id uint, req dtos.UpdateMessageDTO) (*entities.Message, error)
	Delete(ctx context.Context, id uint) error
	// Respond stores content as an outbound READ message to the original's
	// contact and marks the original RESPONDED. Both writes succeed or
	// neither does.
	Respond(ctx context.Context, originalID uint, content string) (original, reply *entities.Message, err error)
	History(ctx context.Context, contactID uint, limit int) ([]string, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

// Create stores an inbound or outbound message with status PENDING,
// priority NORMAL and category OTHER. Content and contact are checked before
// anything is written.
func (s *service) Create(ctx context.Context, req dtos.CreateMessageDTO) (*entities.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.Validation("content", "is required")
	}
	if req.ContactID == 0 {
		return nil, apperrors.Validation("contactId", "is required")
	}

	msgType := entities.MessageTypeText
	if req.Type != "" {
		msgType = entities.MessageType(strings.ToUpper(req.Type))
		if !msgType.Valid() {
			return nil, apperrors.Validation("type", "unknown value "+req.Type)
		}
	}

	exists, err := s.repository.ContactExists(ctx, req.ContactID)
	if err != nil {
		return nil, apperrors.Internal(err, "look up contact")
	}
	if !exists {
		return nil, apperrors.Reference("contact", req.ContactID)
	}

	msg := &entities.Message{
		Content:    req.Content,
		Type:       msgType,
		Status:     entities.StatusPending,
		Priority:   entities.PriorityNormal,
		Category:   entities.CategoryOther,
		IsFromUser: req.IsFromUser,
		ContactID:  req.ContactID,
	}
	if err := s.repository.Create(ctx, msg); err != nil {
		return nil, apperrors.FromStore(err, "create message", "contact", req.ContactID)
	}

	source := "inbound"
	if req.IsFromUser {
		source = "outbound"
	}
	metrics.MessagesIngested.WithLabelValues(source).Inc()

	return s.Get(ctx, msg.ID)
}

func (s *service) Get(ctx context.Context, id uint) (*entities.Message, error) {
	msg, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, apperrors.FromStore(err, "get message", "message", id)
	}
	return msg, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]entities.Message, error) {
	messages, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal(err, "list messages")
	}
	return messages, nil
}

// Update applies the non-nil fields. Moving to RESPONDED stamps respondedAt
// unless the caller supplied one.
func (s *service) Update(ctx context.Context, id uint, req dtos.UpdateMessageDTO) (*entities.Message, error) {
	fields := make(map[string]any)

	if req.Status != nil {
		status := entities.MessageStatus(strings.ToUpper(*req.Status))
		if !status.Valid() {
			return nil, apperrors.Validation("status", "unknown value "+*req.Status)
		}
		fields["status"] = status
		if status == entities.StatusResponded && req.RespondedAt == nil {
			fields["responded_at"] = time.Now().UTC()
		}
	}
	if req.Priority != nil {
		priority := entities.Priority(strings.ToUpper(*req.Priority))
		if !priority.Valid() {
			return nil, apperrors.Validation("priority", "unknown value "+*req.Priority)
		}
		fields["priority"] = priority
	}
	if req.Category != nil {
		category := entities.Category(strings.ToUpper(*req.Category))
		if !category.Valid() {
			return nil, apperrors.Validation("category", "unknown value "+*req.Category)
		}
		fields["category"] = category
	}
	if req.RespondedAt != nil {
		fields["responded_at"] = req.RespondedAt.UTC()
	}

	if len(fields) == 0 {
		return s.Get(ctx, id)
	}
	if err := s.repository.Update(ctx, id, fields); err != nil {
		return nil, apperrors.FromStore(err, "update message", "message", id)
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return apperrors.FromStore(s.repository.Delete(ctx, id), "delete message", "message", id)
}

func (s *service) Respond(ctx context.Context, originalID uint, content string) (*entities.Message, *entities.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil, apperrors.Validation("content", "is required")
	}

	original, err := s.Get(ctx, originalID)
	if err != nil {
		return nil, nil, err
	}

	reply := &entities.Message{
		Content:    content,
		Type:       entities.MessageTypeText,
		Status:     entities.StatusRead,
		Priority:   entities.PriorityNormal,
		Category:   entities.CategoryOther,
		IsFromUser: true,
		ContactID:  original.ContactID,
	}
	if err := s.repository.Respond(ctx, originalID, reply, time.Now().UTC()); err != nil {
		return nil, nil, apperrors.FromStore(err, "respond to message", "message", originalID)
	}
	metrics.MessagesIngested.WithLabelValues("outbound").Inc()

	if original, err = s.Get(ctx, originalID); err != nil {
		return nil, nil, err
	}
	if reply, err = s.Get(ctx, reply.ID); err != nil {
		return nil, nil, err
	}
	return original, reply, nil
}

func (s *service) History(ctx context.Context, contactID uint, limit int) ([]string, error) {
	contents, err := s.repository.RecentContents(ctx, contactID, limit)
	if err != nil {
		return nil, apperrors.Internal(err, "load message history")
	}
	return contents, nil
}
