package whatsapp

import (
	"context"
	"time"

	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists the linked-device status so GetStatus can report a
// session that existed before a restart.
type Repository interface {
	SaveStatus(ctx context.Context, isConnected, isLoggedIn bool, phone string) error
	Status(ctx context.Context) (*entities.WhatsAppSession, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) SaveStatus(ctx context.Context, isConnected, isLoggedIn bool, phone string) error {
	session := entities.WhatsAppSession{
		ID:           entities.WhatsAppSessionID,
		IsConnected:  isConnected,
		IsLoggedIn:   isLoggedIn,
		PhoneNumber:  phone,
		LastActiveAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_connected", "is_logged_in", "phone_number", "last_active_at", "updated_at"}),
	}).Create(&session).Error
}

func (r *repository) Status(ctx context.Context) (*entities.WhatsAppSession, error) {
	var session entities.WhatsAppSession
	if err := r.db.WithContext(ctx).First(&session, entities.WhatsAppSessionID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
