// Package inbox routes messages between contacts and the store: inbound
// texts are stored and classified, replies are stored and handed to the
// outbound channel when one is connected.
package inbox

import (
	"context"
	"strings"
	"sync"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/domains/classification"
	"github.com/msgdesk/pkg/domains/contact"
	"github.com/msgdesk/pkg/domains/message"
	"github.com/msgdesk/pkg/domains/quickresponse"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"go.uber.org/zap"
)

// Sender delivers a text to a phone number over an external channel.
type Sender interface {
	Ready() bool
	SendText(ctx context.Context, phone, text string) error
}

type Service interface {
	// Receive upserts the sender by phone, stores the text and classifies it.
	Receive(ctx context.Context, name, phone, content string, msgType entities.MessageType) (*entities.Message, error)
	// Deliver stores a text from an already known phone and classifies it.
	Deliver(ctx context.Context, phone, content, msgType string) (*entities.Message, error)
	Reply(ctx context.Context, messageID uint, req dtos.ReplyDTO) (*dtos.ReplyResultDTO, error)
	SetSender(sender Sender)
}

type service struct {
	contacts       contact.Service
	messages       message.Service
	classifier     classification.Service
	quickResponses quickresponse.Service
	logger         *zap.Logger

	mu     sync.RWMutex
	sender Sender
}

func NewService(contacts contact.Service, messages message.Service, classifier classification.Service, quickResponses quickresponse.Service, logger *zap.Logger) Service {
	return &service{
		contacts:       contacts,
		messages:       messages,
		classifier:     classifier,
		quickResponses: quickResponses,
		logger:         logger,
	}
}

func (s *service) SetSender(sender Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = sender
}

func (s *service) Receive(ctx context.Context, name, phone, content string, msgType entities.MessageType) (*entities.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("content", "is required")
	}
	c, err := s.contacts.Upsert(ctx, name, phone)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, c.ID, content, string(msgType))
}

func (s *service) Deliver(ctx context.Context, phone, content, msgType string) (*entities.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("content", "is required")
	}
	c, err := s.contacts.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, c.ID, content, msgType)
}

// store creates the message and classifies it. A failed classification is
// logged and the unclassified message is returned.
func (s *service) store(ctx context.Context, contactID uint, content, msgType string) (*entities.Message, error) {
	msg, err := s.messages.Create(ctx, dtos.CreateMessageDTO{
		Content:   content,
		ContactID: contactID,
		Type:      msgType,
	})
	if err != nil {
		return nil, err
	}

	classified, err := s.classifier.ClassifyMessage(ctx, msg.ID, content)
	if err != nil {
		s.logger.Warn("automatic classification failed",
			zap.Uint("message_id", msg.ID),
			zap.Error(err))
		return msg, nil
	}
	return classified, nil
}

// Reply stores an outbound message (status READ) to the original's contact
// and marks the original RESPONDED in one transaction, then counts the quick
// response as used. The text is sent through the Sender when one is ready;
// a send failure is logged and reported as not delivered.
func (s *service) Reply(ctx context.Context, messageID uint, req dtos.ReplyDTO) (*dtos.ReplyResultDTO, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.Validation("content", "is required")
	}

	original, reply, err := s.messages.Respond(ctx, messageID, req.Content)
	if err != nil {
		return nil, err
	}

	if req.QuickResponseID != nil {
		if err := s.quickResponses.MarkUsed(ctx, *req.QuickResponseID); err != nil {
			s.logger.Warn("could not count quick response usage",
				zap.Uint("quick_response_id", *req.QuickResponseID),
				zap.Error(err))
		}
	}

	result := &dtos.ReplyResultDTO{Original: original, Reply: reply}

	s.mu.RLock()
	sender := s.sender
	s.mu.RUnlock()
	if sender != nil && sender.Ready() && original.Contact != nil {
		if err := sender.SendText(ctx, original.Contact.Phone, req.Content); err != nil {
			s.logger.Error("reply not delivered",
				zap.Uint("message_id", messageID),
				zap.Error(err))
		} else {
			result.Delivered = true
		}
	}
	return result, nil
}
