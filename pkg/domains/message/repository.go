package message

import (
	"context"
	"strings"
	"time"

	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, msg *entities.Message) error
	Get(ctx context.Context, id uint) (*entities.Message, error)
	List(ctx context.Context, filter Filter) ([]entities.Message, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	Respond(ctx context.Context, originalID uint, reply *entities.Message, respondedAt time.Time) error
	ContactExists(ctx context.Context, contactID uint) (bool, error)
	RecentContents(ctx context.Context, contactID uint, limit int) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Create(ctx context.Context, msg *entities.Message) error {
	return r.db.WithContext(ctx).Omit("Contact", "Tags").Create(msg).Error
}

func (r *repository) Get(ctx context.Context, id uint) (*entities.Message, error) {
	var msg entities.Message
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Preload("Tags.Tag").
		First(&msg, id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]entities.Message, error) {
	query := r.db.WithContext(ctx).
		Joins("Contact").
		Preload("Tags.Tag")

	if filter.Status != nil {
		query = query.Where("messages.status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("messages.priority = ?", *filter.Priority)
	}
	if filter.Category != nil {
		query = query.Where("messages.category = ?", *filter.Category)
	}
	if filter.Search != "" {
		like := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(`(LOWER(messages.content) LIKE ? ESCAPE '\' OR LOWER("Contact".name) LIKE ? ESCAPE '\')`, like, like)
	}

	messages := make([]entities.Message, 0)
	err := query.
		Order("messages.created_at DESC").
		Order("messages.id DESC").
		Find(&messages).Error
	return messages, err
}

func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&entities.Message{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&entities.MessageTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Message{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Respond inserts reply and marks the original RESPONDED in one transaction.
// Nothing is written when the original does not exist.
func (r *repository) Respond(ctx context.Context, originalID uint, reply *entities.Message, respondedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Contact", "Tags").Create(reply).Error; err != nil {
			return err
		}
		result := tx.Model(&entities.Message{}).Where("id = ?", originalID).Updates(map[string]any{
			"status":       entities.StatusResponded,
			"responded_at": respondedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) ContactExists(ctx context.Context, contactID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Contact{}).Where("id = ?", contactID).Count(&count).Error
	return count > 0, err
}

// RecentContents returns up to limit message bodies for a contact, oldest
// first.
func (r *repository) RecentContents(ctx context.Context, contactID uint, limit int) ([]string, error) {
	var contents []string
	err := r.db.WithContext(ctx).Model(&entities.Message{}).
		Where("contact_id = ?", contactID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Pluck("content", &contents).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(contents)-1; i < j; i, j = i+1, j-1 {
		contents[i], contents[j] = contents[j], contents[i]
	}
	return contents, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
