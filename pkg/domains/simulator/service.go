package simulator

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/domains/contact"
	"github.com/msgdesk/pkg/domains/inbox"
	"github.com/msgdesk/pkg/domains/message"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"github.com/msgdesk/pkg/seed"
)

const (
	ActionCreateContact = "create_contact"
	ActionSendMessage   = "send_message"
)

type Service interface {
	CreateContact(ctx context.Context, name, phone string) (*entities.Contact, error)
	SendMessage(ctx context.Context, phone, content, msgType string) (*entities.Message, error)
	// GenerateDemo upserts the demo contacts and adds a batch of random
	// messages spread over the recent past.
	GenerateDemo(ctx context.Context) (*dtos.DemoDataDTO, error)
}

type service struct {
	contacts contact.Service
	messages message.Repository
	inbox    inbox.Service

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(contacts contact.Service, messages message.Repository, inbox inbox.Service, rng *rand.Rand) Service {
	return &service{
		contacts: contacts,
		messages: messages,
		inbox:    inbox,
		rng:      rng,
	}
}

func (s *service) CreateContact(ctx context.Context, name, phone string) (*entities.Contact, error) {
	if name == "" {
		return nil, apperrors.Validation("contactName", "is required")
	}
	return s.contacts.Upsert(ctx, name, phone)
}

func (s *service) SendMessage(ctx context.Context, phone, content, msgType string) (*entities.Message, error) {
	if phone == "" {
		return nil, apperrors.Validation("phone", "is required")
	}
	return s.inbox.Deliver(ctx, phone, content, msgType)
}

func (s *service) GenerateDemo(ctx context.Context) (*dtos.DemoDataDTO, error) {
	data, err := seed.Load()
	if err != nil {
		return nil, apperrors.Internal(err, "load demo data")
	}

	for _, c := range data.Simulator.Contacts {
		if _, err := s.contacts.Save(ctx, c.Entity()); err != nil {
			return nil, err
		}
	}

	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 || len(data.Messages) == 0 {
		return &dtos.DemoDataDTO{Message: "Nenhum dado de demonstração disponível"}, nil
	}

	statuses := []entities.MessageStatus{entities.StatusPending, entities.StatusRead, entities.StatusResponded}
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < data.Simulator.MessagesPerRun; i++ {
		// PENDING half of the time, READ and RESPONDED a quarter each.
		status := statuses[0]
		if s.rng.Float64() <= 0.5 {
			status = statuses[1+s.rng.IntN(2)]
		}

		msg := &entities.Message{
			Content:    data.Messages[s.rng.IntN(len(data.Messages))].Content,
			Type:       entities.MessageTypeText,
			Status:     status,
			Priority:   entities.PriorityNormal,
			Category:   entities.CategoryOther,
			IsFromUser: s.rng.Float64() > 0.7,
			ContactID:  contacts[s.rng.IntN(len(contacts))].ID,
			CreatedAt:  now.Add(-time.Duration(s.rng.IntN(data.Simulator.WindowMinutes)) * time.Minute),
		}
		if err := s.messages.Create(ctx, msg); err != nil {
			return nil, apperrors.Internal(err, "create demo message")
		}
	}

	return &dtos.DemoDataDTO{
		Message:  "Dados de demonstração criados com sucesso",
		Contacts: len(contacts),
		Messages: data.Simulator.MessagesPerRun,
	}, nil
}
