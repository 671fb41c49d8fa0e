package suggestion

import (
	"context"
	"strings"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"github.com/msgdesk/pkg/keywords"
	"github.com/msgdesk/pkg/llm"
	"github.com/msgdesk/pkg/metrics"
	"go.uber.org/zap"
)

const (
	TypeQuickResponse = "quick_response"
	TypeDefault       = "default"

	quickResponseConfidence = 0.9
	modelConfidence         = 0.8
	defaultConfidence       = 0.6
)

// QuickResponses supplies the candidates for keyword matching.
type QuickResponses interface {
	ListActive(ctx context.Context) ([]entities.QuickResponse, error)
}

type Service interface {
	// Suggest returns reply candidates for content, preferred first. It only
	// fails on empty content or when quick responses cannot be loaded; the
	// result always holds at least two suggestions. The canned defaults are
	// appended whenever fewer than two candidates were found, not only when
	// none were, so a lone quick-response match comes back with both
	// defaults after it (three entries).
	Suggest(ctx context.Context, req dtos.SuggestResponseDTO) ([]dtos.SuggestionDTO, error)
}

type service struct {
	quickResponses QuickResponses
	completer      llm.Completer
	logger         *zap.Logger
}

func NewService(quickResponses QuickResponses, completer llm.Completer, logger *zap.Logger) Service {
	return &service{
		quickResponses: quickResponses,
		completer:      completer,
		logger:         logger,
	}
}

type modelReply struct {
	Suggestions []struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"suggestions"`
}

func Defaults() []dtos.SuggestionDTO {
	return []dtos.SuggestionDTO{
		{
			Type:       TypeDefault,
			Title:      "Resposta Padrão",
			Content:    "Obrigado pela sua mensagem. Vou analisar e retorno em breve.",
			Confidence: defaultConfidence,
		},
		{
			Type:       TypeDefault,
			Title:      "Saudação",
			Content:    "Olá! Recebi sua mensagem. Como posso ajudá-lo?",
			Confidence: defaultConfidence,
		},
	}
}

func (s *service) Suggest(ctx context.Context, req dtos.SuggestResponseDTO) ([]dtos.SuggestionDTO, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.Validation("content", "is required")
	}

	active, err := s.quickResponses.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dtos.SuggestionDTO, 0, 4)
	for _, qr := range keywords.Match(req.Content, active) {
		suggestions = append(suggestions, dtos.SuggestionDTO{
			Type:       TypeQuickResponse,
			Title:      qr.Title,
			Content:    qr.Content,
			Confidence: quickResponseConfidence,
		})
	}

	suggestions = append(suggestions, s.fromModel(ctx, req)...)

	if len(suggestions) < 2 {
		suggestions = append(suggestions, Defaults()...)
	}

	for _, suggestion := range suggestions {
		metrics.SuggestionsServed.WithLabelValues(suggestion.Type).Inc()
	}
	return suggestions, nil
}

// fromModel never fails: transport and decode errors are logged and
// contribute nothing.
func (s *service) fromModel(ctx context.Context, req dtos.SuggestResponseDTO) []dtos.SuggestionDTO {
	system, user := llm.SuggestPrompts(req.Content, strings.TrimSpace(req.ContactName), req.MessageHistory)
	raw, err := s.completer.Complete(ctx, "suggest", system, user)
	if err != nil {
		s.logger.Warn("suggestion request failed", zap.Error(err))
		return nil
	}

	var decoded modelReply
	if err := llm.Decode(raw, &decoded); err != nil {
		s.logger.Warn("unreadable suggestion reply", zap.Error(err), zap.String("reply", raw))
		return nil
	}

	out := make([]dtos.SuggestionDTO, 0, len(decoded.Suggestions))
	for _, item := range decoded.Suggestions {
		if strings.TrimSpace(item.Content) == "" {
			continue
		}
		out = append(out, dtos.SuggestionDTO{
			Type:       item.Type,
			Title:      item.Title,
			Content:    item.Content,
			Confidence: modelConfidence,
		})
	}
	return out
}
