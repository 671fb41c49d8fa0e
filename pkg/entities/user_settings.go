package entities

import "time"

// SettingsID is the fixed primary key of the only UserSettings row.
const SettingsID uint = 1

type UserSettings struct {
	ID                       uint      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	AlertTimeMinutes         int       `json:"alertTimeMinutes" gorm:"not null"`
	EnablePushNotifications  bool      `json:"enablePushNotifications" gorm:"not null"`
	EnableEmailNotifications bool      `json:"enableEmailNotifications" gorm:"not null"`
	WorkingHoursStart        string    `json:"workingHoursStart" gorm:"type:varchar(5);not null"`
	WorkingHoursEnd          string    `json:"workingHoursEnd" gorm:"type:varchar(5);not null"`
	AutoTagging              bool      `json:"autoTagging" gorm:"not null"`
	AISuggestions            bool      `json:"aiSuggestions" gorm:"not null"`
	Theme                    string    `json:"theme" gorm:"type:varchar(16);not null"`
	Language                 string    `json:"language" gorm:"type:varchar(8);not null"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		ID:                       SettingsID,
		AlertTimeMinutes:         30,
		EnablePushNotifications:  true,
		EnableEmailNotifications: false,
		WorkingHoursStart:        "09:00",
		WorkingHoursEnd:          "18:00",
		AutoTagging:              true,
		AISuggestions:            true,
		Theme:                    "light",
		Language:                 "pt",
	}
}
