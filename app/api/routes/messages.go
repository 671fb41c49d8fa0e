package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/constant"
	"github.com/msgdesk/pkg/domains/classification"
	"github.com/msgdesk/pkg/domains/inbox"
	"github.com/msgdesk/pkg/domains/message"
	"github.com/msgdesk/pkg/domains/suggestion"
	"github.com/msgdesk/pkg/dtos"
	"go.uber.org/zap"
)

// MessageServices groups what the /messages routes call into.
type MessageServices struct {
	Messages   message.Service
	Classifier classification.Service
	Suggester  suggestion.Service
	Inbox      inbox.Service
	Logger     *zap.Logger
}

func MessageRoutes(r *gin.RouterGroup, s MessageServices) {
	r.GET("", listMessages(s.Messages, s.Logger))
	r.POST("", createMessage(s.Messages, s.Logger))
	r.POST("/classify", classifyMessage(s.Classifier, s.Logger))
	r.POST("/suggest-response", suggestResponse(s.Suggester, s.Logger))
	r.GET("/:id", getMessage(s.Messages, s.Logger))
	r.PATCH("/:id", updateMessage(s.Messages, s.Logger))
	r.DELETE("/:id", deleteMessage(s.Messages, s.Logger))
	r.POST("/:id/reply", replyMessage(s.Inbox, s.Logger))
}

// @Summary List messages
// @Tags messages
// @Produce json
// @Param status query string false "PENDING, READ, RESPONDED, IN_PROGRESS, ARCHIVED or all"
// @Param priority query string false "LOW, NORMAL, HIGH, URGENT or all"
// @Param category query string false "PERSONAL, PROFESSIONAL, SALES, SUPPORT, MARKETING, OTHER or all"
// @Param search query string false "matches content or contact name"
// @Success 200 {array} entities.Message
// @Router /messages [get]
func listMessages(s message.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var query dtos.ListMessagesQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			respondBindError(c, err)
			return
		}

		filter, err := message.ParseFilter(query)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		messages, err := s.List(c, filter)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, messages)
	}
}

// @Summary Create a message
// @Tags messages
// @Accept json
// @Produce json
// @Param body body dtos.CreateMessageDTO true "message"
// @Success 201 {object} entities.Message
// @Router /messages [post]
func createMessage(s message.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.CreateMessageDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		msg, err := s.Create(c, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(201, msg)
	}
}

// @Summary Classify a text or a stored message
// @Description Without messageId the verdict is returned. With messageId the verdict and matching automatic tags are stored and the message is returned.
// @Tags messages
// @Accept json
// @Produce json
// @Param body body dtos.ClassifyDTO true "text to classify"
// @Success 200 {object} dtos.ClassificationDTO
// @Failure 502 {object} map[string]string
// @Router /messages/classify [post]
func classifyMessage(s classification.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ClassifyDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		if req.MessageID != nil {
			msg, err := s.ClassifyMessage(c, *req.MessageID, req.Content)
			if err != nil {
				respondError(c, logger, err)
				return
			}
			c.JSON(200, msg)
			return
		}

		verdict, err := s.Classify(c, req.Content)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, dtos.ClassificationDTO{
			Priority: string(verdict.Priority),
			Category: string(verdict.Category),
			Tags:     verdict.Tags,
		})
	}
}

// @Summary Suggest replies
// @Tags messages
// @Accept json
// @Produce json
// @Param body body dtos.SuggestResponseDTO true "incoming text"
// @Success 200 {object} dtos.SuggestionsDTO
// @Router /messages/suggest-response [post]
func suggestResponse(s suggestion.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.SuggestResponseDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		suggestions, err := s.Suggest(c, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, dtos.SuggestionsDTO{Suggestions: suggestions})
	}
}

// @Summary Get a message
// @Tags messages
// @Produce json
// @Param id path int true "message id"
// @Success 200 {object} entities.Message
// @Failure 404 {object} map[string]string
// @Router /messages/{id} [get]
func getMessage(s message.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}

		msg, err := s.Get(c, id)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, msg)
	}
}

// @Summary Update status, priority or category
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "message id"
// @Param body body dtos.UpdateMessageDTO true "fields to change"
// @Success 200 {object} entities.Message
// @Router /messages/{id} [patch]
func updateMessage(s message.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}

		var req dtos.UpdateMessageDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		msg, err := s.Update(c, id, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, msg)
	}
}

// @Summary Delete a message
// @Tags messages
// @Produce json
// @Param id path int true "message id"
// @Success 200 {object} map[string]string
// @Router /messages/{id} [delete]
func deleteMessage(s message.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}

		if err := s.Delete(c, id); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, gin.H{"message": constant.MESSAGE_DELETED})
	}
}

// @Summary Reply to a message
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "message id"
// @Param body body dtos.ReplyDTO true "reply"
// @Success 201 {object} dtos.ReplyResultDTO
// @Router /messages/{id}/reply [post]
func replyMessage(s inbox.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}

		var req dtos.ReplyDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		result, err := s.Reply(c, id, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(201, result)
	}
}
