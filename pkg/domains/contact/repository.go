package contact

import (
	"context"

	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Contact, error)
	MessageCounts(ctx context.Context) (map[uint]int64, error)
	LatestMessages(ctx context.Context) (map[uint]entities.Message, error)
	Create(ctx context.Context, contact *entities.Contact) error
	Upsert(ctx context.Context, contact *entities.Contact, columns ...string) error
	FindByPhone(ctx context.Context, phone string) (*entities.Contact, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) List(ctx context.Context) ([]entities.Contact, error) {
	contacts := make([]entities.Contact, 0)
	err := r.db.WithContext(ctx).Order("updated_at DESC").Order("id DESC").Find(&contacts).Error
	return contacts, err
}

func (r *repository) MessageCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		ContactID uint
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&entities.Message{}).
		Select("contact_id, COUNT(*) AS total").
		Group("contact_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ContactID] = row.Total
	}
	return counts, nil
}

// LatestMessages returns the most recent message of every contact that has
// one.
func (r *repository) LatestMessages(ctx context.Context) (map[uint]entities.Message, error) {
	var messages []entities.Message
	newest := r.db.Table("messages AS m2").
		Select("m2.id").
		Where("m2.contact_id = messages.contact_id").
		Order("m2.created_at DESC").
		Order("m2.id DESC").
		Limit(1)
	if err := r.db.WithContext(ctx).Where("messages.id = (?)", newest).Find(&messages).Error; err != nil {
		return nil, err
	}

	byContact := make(map[uint]entities.Message, len(messages))
	for _, msg := range messages {
		byContact[msg.ContactID] = msg
	}
	return byContact, nil
}

func (r *repository) Create(ctx context.Context, contact *entities.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// Upsert inserts the contact or, when the phone is already known, overwrites
// only the given columns (updated_at is always touched). contact is reloaded
// with the stored row.
func (r *repository) Upsert(ctx context.Context, contact *entities.Contact, columns ...string) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}).Create(contact).Error
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("phone = ?", contact.Phone).First(contact).Error
}

func (r *repository) FindByPhone(ctx context.Context, phone string) (*entities.Contact, error) {
	var contact entities.Contact
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}
