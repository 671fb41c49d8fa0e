package database

import (
	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Contact{},
		&entities.Tag{},
		&entities.QuickResponse{},
		&entities.Message{},
		&entities.MessageTag{},
		&entities.UserSettings{},
		&entities.WhatsAppSession{},
	)
}
