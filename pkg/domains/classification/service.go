package classification

import (
	"context"
	"strings"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/entities"
	"github.com/msgdesk/pkg/keywords"
	"github.com/msgdesk/pkg/llm"
	"github.com/msgdesk/pkg/metrics"
	"go.uber.org/zap"
)

type Service interface {
	// Classify asks the model for a verdict on content. Only a transport
	// failure is returned as an error; an unreadable reply yields Default().
	Classify(ctx context.Context, content string) (Classification, error)
	// ClassifyMessage classifies content, stores the verdict on the message,
	// attaches every automatic tag whose keywords occur in content and
	// returns the reloaded message.
	ClassifyMessage(ctx context.Context, messageID uint, content string) (*entities.Message, error)
}

type service struct {
	repository Repository
	completer  llm.Completer
	logger     *zap.Logger
}

func NewService(r Repository, completer llm.Completer, logger *zap.Logger) Service {
	return &service{
		repository: r,
		completer:  completer,
		logger:     logger,
	}
}

func (s *service) Classify(ctx context.Context, content string) (Classification, error) {
	if strings.TrimSpace(content) == "" {
		return Classification{}, apperrors.Validation("content", "is required")
	}

	system, user := llm.ClassifyPrompts(content)
	raw, err := s.completer.Complete(ctx, "classify", system, user)
	if err != nil {
		return Classification{}, err
	}

	var decoded reply
	if err := llm.Decode(raw, &decoded); err != nil {
		metrics.ClassificationFallbacks.Inc()
		s.logger.Warn("unreadable classification reply, using default",
			zap.Error(err),
			zap.String("reply", raw))
		return Default(), nil
	}

	verdict := decoded.normalize()
	if string(verdict.Priority) != strings.ToUpper(strings.TrimSpace(decoded.Priority)) ||
		string(verdict.Category) != strings.ToUpper(strings.TrimSpace(decoded.Category)) {
		s.logger.Info("normalized off-vocabulary classification",
			zap.String("priority", decoded.Priority),
			zap.String("category", decoded.Category),
			zap.String("normalized_priority", string(verdict.Priority)),
			zap.String("normalized_category", string(verdict.Category)))
	}
	return verdict, nil
}

func (s *service) ClassifyMessage(ctx context.Context, messageID uint, content string) (*entities.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("content", "is required")
	}

	exists, err := s.repository.MessageExists(ctx, messageID)
	if err != nil {
		return nil, apperrors.Internal(err, "look up message")
	}
	if !exists {
		return nil, apperrors.Reference("message", messageID)
	}

	verdict, err := s.Classify(ctx, content)
	if err != nil {
		return nil, err
	}

	if err := s.repository.SaveVerdict(ctx, messageID, verdict.Priority, verdict.Category); err != nil {
		return nil, apperrors.FromStore(err, "save classification", "message", messageID)
	}
	if err := s.applyAutomaticTags(ctx, messageID, content); err != nil {
		return nil, err
	}

	msg, err := s.repository.LoadMessage(ctx, messageID)
	if err != nil {
		return nil, apperrors.FromStore(err, "reload message", "message", messageID)
	}
	return msg, nil
}

func (s *service) applyAutomaticTags(ctx context.Context, messageID uint, content string) error {
	tags, err := s.repository.AutomaticTags(ctx)
	if err != nil {
		return apperrors.Internal(err, "load automatic tags")
	}

	matched := keywords.Match(content, tags)
	tagIDs := make([]uint, 0, len(matched))
	for _, tag := range matched {
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := s.repository.AttachTags(ctx, messageID, tagIDs); err != nil {
		return apperrors.FromStore(err, "attach tags", "message", messageID)
	}
	metrics.TagsApplied.Add(float64(len(tagIDs)))
	return nil
}
