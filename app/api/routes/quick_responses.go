package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/domains/quickresponse"
	"github.com/msgdesk/pkg/dtos"
	"go.uber.org/zap"
)

func QuickResponseRoutes(r *gin.RouterGroup, s quickresponse.Service, logger *zap.Logger) {
	r.GET("", listQuickResponses(s, logger))
	r.POST("", createQuickResponse(s, logger))
}

// @Summary List active quick responses, most used first
// @Tags quick-responses
// @Produce json
// @Success 200 {array} entities.QuickResponse
// @Router /quick-responses [get]
func listQuickResponses(s quickresponse.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		responses, err := s.ListActive(c)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, responses)
	}
}

// @Summary Create a quick response
// @Tags quick-responses
// @Accept json
// @Produce json
// @Param body body dtos.CreateQuickResponseDTO true "quick response"
// @Success 201 {object} entities.QuickResponse
// @Router /quick-responses [post]
func createQuickResponse(s quickresponse.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.CreateQuickResponseDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		created, err := s.Create(c, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(201, created)
	}
}
