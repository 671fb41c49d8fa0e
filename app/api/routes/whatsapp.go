package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/constant"
	"github.com/msgdesk/pkg/domains/whatsapp"
	"github.com/msgdesk/pkg/dtos"
	"go.uber.org/zap"
)

func WhatsAppRoutes(r *gin.RouterGroup, s whatsapp.Service, logger *zap.Logger) {
	r.POST("/connect", connect(s, logger))
	r.POST("/disconnect", disconnect(s, logger))
	r.POST("/send-message", sendMessage(s, logger))
	r.GET("/qr-code", getQRCode(s, logger))
	r.GET("/status", getStatus(s, logger))
}

// @Summary Reconnect a paired session
// @Tags whatsapp
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /whatsapp/connect [post]
func connect(s whatsapp.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.Connect(c); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, gin.H{
			"message": constant.WHATSAPP_CONNECTED,
		})
	}
}

// @Summary Disconnect the session
// @Tags whatsapp
// @Produce json
// @Success 200 {object} map[string]string
// @Router /whatsapp/disconnect [post]
func disconnect(s whatsapp.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.Disconnect(c); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, gin.H{
			"message": constant.WHATSAPP_DISCONNECTED,
		})
	}
}

// @Summary Send a text
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param body body dtos.SendMessageDTO true "recipient and text"
// @Success 200 {object} dtos.MessageResponseDTO
// @Router /whatsapp/send-message [post]
func sendMessage(s whatsapp.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.SendMessageDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		response, err := s.SendMessage(c, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, gin.H{
			"message": constant.MESSAGE_SENT,
			"data":    response,
		})
	}
}

// @Summary Get a pairing QR code
// @Tags whatsapp
// @Produce json
// @Success 200 {object} dtos.QRCodeDTO
// @Router /whatsapp/qr-code [get]
func getQRCode(s whatsapp.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		qrCode, err := s.GetQRCode(c)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, dtos.QRCodeDTO{
			QRCode:  qrCode,
			Message: constant.QR_CODE_SCAN,
		})
	}
}

// @Summary Session status
// @Tags whatsapp
// @Produce json
// @Success 200 {object} dtos.WhatsAppStatusDTO
// @Router /whatsapp/status [get]
func getStatus(s whatsapp.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		status, err := s.GetStatus(c)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, status)
	}
}
