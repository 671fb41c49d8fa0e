package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context) ([]dtos.ContactSummaryDTO, error)
	Create(ctx context.Context, req dtos.CreateContactDTO) (*entities.Contact, error)
	// Upsert creates the contact or renames the one already holding phone.
	// A blank name never renames; a new contact is then named after its phone.
	Upsert(ctx context.Context, name, phone string) (*entities.Contact, error)
	// Save creates the contact or overwrites name and group fields of the one
	// already holding its phone.
	Save(ctx context.Context, contact entities.Contact) (*entities.Contact, error)
	FindByPhone(ctx context.Context, phone string) (*entities.Contact, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

// List returns every contact, most recently updated first, with its message
// count and latest message.
func (s *service) List(ctx context.Context) ([]dtos.ContactSummaryDTO, error) {
	contacts, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "list contacts")
	}
	counts, err := s.repository.MessageCounts(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "count contact messages")
	}
	latest, err := s.repository.LatestMessages(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "load latest messages")
	}

	summaries := make([]dtos.ContactSummaryDTO, 0, len(contacts))
	for _, c := range contacts {
		summary := dtos.ContactSummaryDTO{Contact: c, MessageCount: counts[c.ID]}
		if msg, ok := latest[c.ID]; ok {
			summary.LastMessage = &msg
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *service) Create(ctx context.Context, req dtos.CreateContactDTO) (*entities.Contact, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name", "is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, apperrors.Validation("phone", "is required")
	}

	contact := &entities.Contact{
		Name:      req.Name,
		Phone:     strings.TrimSpace(req.Phone),
		IsGroup:   req.IsGroup,
		GroupName: req.GroupName,
		Avatar:    req.Avatar,
	}
	if err := s.repository.Create(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation("phone", "already registered")
		}
		return nil, apperrors.Internal(err, "create contact")
	}
	return contact, nil
}

func (s *service) Upsert(ctx context.Context, name, phone string) (*entities.Contact, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperrors.Validation("phone", "is required")
	}

	var columns []string
	name = strings.TrimSpace(name)
	if name == "" {
		name = phone
	} else {
		columns = append(columns, "name")
	}

	contact := &entities.Contact{Name: name, Phone: phone}
	if err := s.repository.Upsert(ctx, contact, columns...); err != nil {
		return nil, apperrors.Internal(err, "upsert contact")
	}
	return contact, nil
}

func (s *service) Save(ctx context.Context, contact entities.Contact) (*entities.Contact, error) {
	contact.Phone = strings.TrimSpace(contact.Phone)
	if contact.Phone == "" {
		return nil, apperrors.Validation("phone", "is required")
	}
	if strings.TrimSpace(contact.Name) == "" {
		return nil, apperrors.Validation("name", "is required")
	}

	if err := s.repository.Upsert(ctx, &contact, "name", "is_group", "group_name"); err != nil {
		return nil, apperrors.Internal(err, "save contact")
	}
	return &contact, nil
}

func (s *service) FindByPhone(ctx context.Context, phone string) (*entities.Contact, error) {
	contact, err := s.repository.FindByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, apperrors.FromStore(err, "find contact", "contact", phone)
	}
	return contact, nil
}
