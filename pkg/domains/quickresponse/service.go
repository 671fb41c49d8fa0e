package quickresponse

import (
	"context"
	"strings"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
)

type Service interface {
	ListActive(ctx context.Context) ([]entities.QuickResponse, error)
	Create(ctx context.Context, req dtos.CreateQuickResponseDTO) (*entities.QuickResponse, error)
	MarkUsed(ctx context.Context, id uint) error
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

// ListActive returns the active responses, most used first.
func (s *service) ListActive(ctx context.Context) ([]entities.QuickResponse, error) {
	responses, err := s.repository.ListActive(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "list quick responses")
	}
	return responses, nil
}

func (s *service) Create(ctx context.Context, req dtos.CreateQuickResponseDTO) (*entities.QuickResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.Validation("title", "is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.Validation("content", "is required")
	}

	qr := &entities.QuickResponse{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Keywords: cleanKeywords(req.Keywords),
		IsActive: true,
	}
	if err := s.repository.Create(ctx, qr); err != nil {
		return nil, apperrors.Internal(err, "create quick response")
	}
	return qr, nil
}

func (s *service) MarkUsed(ctx context.Context, id uint) error {
	return apperrors.FromStore(s.repository.IncrementUsage(ctx, id), "mark quick response used", "quick response", id)
}

func cleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
