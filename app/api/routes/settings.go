package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/domains/settings"
	"github.com/msgdesk/pkg/dtos"
	"go.uber.org/zap"
)

func SettingsRoutes(r *gin.RouterGroup, s settings.Service, logger *zap.Logger) {
	r.GET("", getSettings(s, logger))
	r.PUT("", updateSettings(s, logger))
}

// @Summary Get settings, creating the defaults on first use
// @Tags settings
// @Produce json
// @Success 200 {object} entities.UserSettings
// @Router /settings [get]
func getSettings(s settings.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		current, err := s.Get(c)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, current)
	}
}

// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Param body body dtos.UpdateSettingsDTO true "fields to change"
// @Success 200 {object} entities.UserSettings
// @Router /settings [put]
func updateSettings(s settings.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.UpdateSettingsDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		updated, err := s.Update(c, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, updated)
	}
}
