package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/constant"
	"github.com/msgdesk/pkg/domains/simulator"
	"github.com/msgdesk/pkg/dtos"
	"go.uber.org/zap"
)

func SimulatorRoutes(r *gin.RouterGroup, s simulator.Service, logger *zap.Logger) {
	r.POST("", simulate(s, logger))
	r.GET("", generateDemoData(s, logger))
}

// @Summary Simulate an incoming contact or message
// @Description action "create_contact" upserts a contact by phone, "send_message" stores and classifies a message from a known phone.
// @Tags simulator
// @Accept json
// @Produce json
// @Param body body dtos.SimulatorDTO true "action"
// @Success 200 {object} entities.Message
// @Router /simulator [post]
func simulate(s simulator.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.SimulatorDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		switch req.Action {
		case simulator.ActionCreateContact:
			created, err := s.CreateContact(c, req.ContactName, req.Phone)
			if err != nil {
				respondError(c, logger, err)
				return
			}
			c.JSON(200, created)
		case simulator.ActionSendMessage:
			msg, err := s.SendMessage(c, req.Phone, req.Content, req.MessageType)
			if err != nil {
				respondError(c, logger, err)
				return
			}
			c.JSON(200, msg)
		default:
			respondError(c, logger, apperrors.Validation("action", constant.UNKNOWN_ACTION))
		}
	}
}

// @Summary Generate demo contacts and messages
// @Tags simulator
// @Produce json
// @Success 200 {object} dtos.DemoDataDTO
// @Router /simulator [get]
func generateDemoData(s simulator.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		demo, err := s.GenerateDemo(c)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, demo)
	}
}
