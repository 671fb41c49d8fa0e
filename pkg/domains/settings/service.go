package settings

import (
	"context"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
)

type Service interface {
	Get(ctx context.Context) (*entities.UserSettings, error)
	Update(ctx context.Context, req dtos.UpdateSettingsDTO) (*entities.UserSettings, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

// Get returns the settings row, creating it with defaults on first access.
func (s *service) Get(ctx context.Context) (*entities.UserSettings, error) {
	if err := s.repository.EnsureDefaults(ctx); err != nil {
		return nil, apperrors.Internal(err, "create default settings")
	}
	settings, err := s.repository.Get(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "get settings")
	}
	return settings, nil
}

func (s *service) Update(ctx context.Context, req dtos.UpdateSettingsDTO) (*entities.UserSettings, error) {
	if err := s.repository.EnsureDefaults(ctx); err != nil {
		return nil, apperrors.Internal(err, "create default settings")
	}

	fields := make(map[string]any)
	if req.AlertTimeMinutes != nil {
		fields["alert_time_minutes"] = *req.AlertTimeMinutes
	}
	if req.EnablePushNotifications != nil {
		fields["enable_push_notifications"] = *req.EnablePushNotifications
	}
	if req.EnableEmailNotifications != nil {
		fields["enable_email_notifications"] = *req.EnableEmailNotifications
	}
	if req.WorkingHoursStart != nil {
		fields["working_hours_start"] = *req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		fields["working_hours_end"] = *req.WorkingHoursEnd
	}
	if req.AutoTagging != nil {
		fields["auto_tagging"] = *req.AutoTagging
	}
	if req.AISuggestions != nil {
		fields["ai_suggestions"] = *req.AISuggestions
	}
	if req.Theme != nil {
		fields["theme"] = *req.Theme
	}
	if req.Language != nil {
		fields["language"] = *req.Language
	}

	if len(fields) > 0 {
		if err := s.repository.Update(ctx, fields); err != nil {
			return nil, apperrors.Internal(err, "update settings")
		}
	}
	return s.Get(ctx)
}
