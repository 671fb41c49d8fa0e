package tag

import (
	"context"

	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Tag, error)
	MessageCounts(ctx context.Context) (map[uint]int64, error)
	Create(ctx context.Context, tag *entities.Tag) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) List(ctx context.Context) ([]entities.Tag, error) {
	tags := make([]entities.Tag, 0)
	err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&tags).Error
	return tags, err
}

func (r *repository) MessageCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		TagID uint
		Total int64
	}
	err := r.db.WithContext(ctx).Model(&entities.MessageTag{}).
		Select("tag_id, COUNT(*) AS total").
		Group("tag_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.TagID] = row.Total
	}
	return counts, nil
}

func (r *repository) Create(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}
