package quickresponse

import (
	"context"

	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	ListActive(ctx context.Context) ([]entities.QuickResponse, error)
	Create(ctx context.Context, qr *entities.QuickResponse) error
	IncrementUsage(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) ListActive(ctx context.Context) ([]entities.QuickResponse, error) {
	responses := make([]entities.QuickResponse, 0)
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("usage_count DESC").
		Order("id ASC").
		Find(&responses).Error
	return responses, err
}

func (r *repository) Create(ctx context.Context, qr *entities.QuickResponse) error {
	return r.db.WithContext(ctx).Create(qr).Error
}

func (r *repository) IncrementUsage(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&entities.QuickResponse{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
