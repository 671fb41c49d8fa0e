package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/domains/contact"
	"github.com/msgdesk/pkg/dtos"
	"go.uber.org/zap"
)

func ContactRoutes(r *gin.RouterGroup, s contact.Service, logger *zap.Logger) {
	r.GET("", listContacts(s, logger))
	r.POST("", createContact(s, logger))
}

// @Summary List contacts with message count and latest message
// @Tags contacts
// @Produce json
// @Success 200 {array} dtos.ContactSummaryDTO
// @Router /contacts [get]
func listContacts(s contact.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		contacts, err := s.List(c)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(200, contacts)
	}
}

// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param body body dtos.CreateContactDTO true "contact"
// @Success 201 {object} entities.Contact
// @Router /contacts [post]
func createContact(s contact.Service, logger *zap.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.CreateContactDTO
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
