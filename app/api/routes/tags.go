package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/domains/tag"
	"github.com/msgdesk/pkg/dtos"
	"go.uber.org/zap"
)

func TagRoutes(r *gin.RouterGroup, s tag.Service, logger *zap.Logger) {
	r.GET("", listTags(s, logger))
	r.POST("", createTag(s, logger))
}

// @Summary List tags with message count
// @Tags tags
// @Produce json
// @Success 200 {array} dtos.TagSummaryDTO
// @Router /tags [get]
func listTags(s tag.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		tags, err := s.List(c)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, tags)
	}
}

// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param body body dtos.CreateTagDTO true "tag"
// @Success 201 {object} entities.Tag
// @Router /tags [post]
func createTag(s tag.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.CreateTagDTO
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
