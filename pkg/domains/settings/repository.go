package settings

import (
	"context"

	"github.com/msgdesk/pkg/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// EnsureDefaults inserts the default row under entities.SettingsID if it
	// does not exist yet.
	EnsureDefaults(ctx context.Context) error
	Get(ctx context.Context) (*entities.UserSettings, error)
	Update(ctx context.Context, fields map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) EnsureDefaults(ctx context.Context) error {
	defaults := entities.DefaultUserSettings()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
}

func (r *repository) Get(ctx context.Context) (*entities.UserSettings, error) {
	var settings entities.UserSettings
	if err := r.db.WithContext(ctx).First(&settings, entities.SettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) Update(ctx context.Context, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&entities.UserSettings{}).
		Where("id = ?", entities.SettingsID).
		Updates(fields).Error
}
