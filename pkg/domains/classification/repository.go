package classification

import (
	"context"

	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	MessageExists(ctx context.Context, id uint) (bool, error)
	SaveVerdict(ctx context.Context, id uint, priority entities.Priority, category entities.Category) error
	AutomaticTags(ctx context.Context) ([]entities.Tag, error)
	AttachTags(ctx context.Context, messageID uint, tagIDs []uint) error
	LoadMessage(ctx context.Context, id uint) (*entities.Message, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) MessageExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Message{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) SaveVerdict(ctx context.Context, id uint, priority entities.Priority, category entities.Category) error {
	result := r.db.WithContext(ctx).Model(&entities.Message{}).
		Where("id = ?", id).
		Updates(map[string]any{"priority": priority, "category": category})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) AutomaticTags(ctx context.Context) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := r.db.WithContext(ctx).Where("is_automatic = ?", true).Order("id ASC").Find(&tags).Error
	return tags, err
}

// AttachTags inserts one association per tag. Existing pairs are left alone,
// so repeated and concurrent calls converge on the same set.
func (r *repository) AttachTags(ctx context.Context, messageID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]entities.MessageTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, entities.MessageTag{MessageID: messageID, TagID: tagID})
	}
	return r.db.WithContext(ctx).
		Omit("Tag").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *repository) LoadMessage(ctx context.Context, id uint) (*entities.Message, error) {
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
