// Package llm talks to the OpenAI-compatible chat-completion endpoint used
// for message classification and reply suggestions.
package llm

import (
	"context"
	"time"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/config"
	"github.com/msgdesk/pkg/metrics"
	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Completer sends one system/user prompt pair and returns the raw reply text.
type Completer interface {
	Complete(ctx context.Context, operation, system, user string) (string, error)
}

type Client struct {
	client *openai.Client
	logger *zap.Logger
}

func NewClient(cfg config.LLM, logger *zap.Logger) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.APIKey == "" {
		logger.Warn("ABACUSAI_API_KEY is not set, chat completion requests will be rejected")
	}
	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		logger: logger,
	}
}

// Complete issues a single request without retry. Any transport failure or
// non-2xx status is returned as a KindTransport error.
func (c *Client) Complete(ctx context.Context, operation, system, user string) (string, error) {
	ctx, span := otel.Tracer("msgdesk/llm").Start(ctx, "llm."+operation,
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", Model))

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	metrics.LLMLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.LLMRequests.WithLabelValues(operation, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "chat completion failed")
		c.logger.Error("chat completion failed",
			zap.String("operation", operation),
			zap.Error(err))
		return "", apperrors.Transport(err).WithContext("operation", operation)
	}
	metrics.LLMRequests.WithLabelValues(operation, "ok").Inc()

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
