package tag

import (
	"context"
	"strings"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
)

type Service interface {
	List(ctx context.Context) ([]dtos.TagSummaryDTO, error)
	Create(ctx context.Context, req dtos.CreateTagDTO) (*entities.Tag, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

// List returns all tags by name with the number of messages carrying each.
func (s *service) List(ctx context.Context) ([]dtos.TagSummaryDTO, error) {
	tags, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "list tags")
	}
	counts, err := s.repository.MessageCounts(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "count tag messages")
	}

	summaries := make([]dtos.TagSummaryDTO, 0, len(tags))
	for _, t := range tags {
		summaries = append(summaries, dtos.TagSummaryDTO{Tag: t, MessageCount: counts[t.ID]})
	}
	return summaries, nil
}

func (s *service) Create(ctx context.Context, req dtos.CreateTagDTO) (*entities.Tag, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name", "is required")
	}

	color := req.Color
	if color == "" {
		color = entities.DefaultTagColor
	}
	keywords := make([]string, 0, len(req.Keywords))
	for _, k := range req.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	tag := &entities.Tag{
		Name:        strings.TrimSpace(req.Name),
		Color:       color,
		Description: req.Description,
		Keywords:    keywords,
		IsAutomatic: req.IsAutomatic,
	}
	if err := s.repository.Create(ctx, tag); err != nil {
		return nil, apperrors.Internal(err, "create tag")
	}
	return tag, nil
}
