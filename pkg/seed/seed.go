// Package seed loads the default catalog (tags, quick responses) and the demo
// data shipped with the service.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/msgdesk/pkg/entities"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Tag struct {
	Name      string   `yaml:"name"`
	Color     string   `yaml:"color"`
	Automatic bool     `yaml:"automatic"`
	Keywords  []string `yaml:"keywords"`
}

type QuickResponse struct {
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

type Contact struct {
	Name      string `yaml:"name"`
	Phone     string `yaml:"phone"`
	Group     bool   `yaml:"group"`
	GroupName string `yaml:"group_name"`
}

type Message struct {
	Content  string `yaml:"content"`
	Priority string `yaml:"priority"`
	Category string `yaml:"category"`
	Status   string `yaml:"status"`
}

type Simulator struct {
	MessagesPerRun int       `yaml:"messages_per_run"`
	WindowMinutes  int       `yaml:"window_minutes"`
	Contacts       []Contact `yaml:"contacts"`
}

type Data struct {
	Tags           []Tag           `yaml:"tags"`
	QuickResponses []QuickResponse `yaml:"quick_responses"`
	Contacts       []Contact       `yaml:"contacts"`
	Messages       []Message       `yaml:"messages"`
	Simulator      Simulator       `yaml:"simulator"`
}

// Load parses the embedded defaults.
func Load() (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(defaultsYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

func (c Contact) Entity() entities.Contact {
	contact := entities.Contact{Name: c.Name, Phone: c.Phone, IsGroup: c.Group}
	if c.GroupName != "" {
		groupName := c.GroupName
		contact.GroupName = &groupName
	}
	return contact
}

// Run inserts default settings, tags, quick responses and demo contacts that
// are not present yet (matched by name, title and phone). Demo messages are
// only written into an empty messages table, so Run is safe on every start.
func Run(ctx context.Context, db *gorm.DB, rng *rand.Rand, logger *zap.Logger) error {
	data, err := Load()
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		defaults := entities.DefaultUserSettings()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}

		for _, t := range data.Tags {
			description := fmt.Sprintf("Tag automática para %s", strings.ToLower(t.Name))
			tag := entities.Tag{
				Name:        t.Name,
				Color:       t.Color,
				Description: &description,
				Keywords:    nonNil(t.Keywords),
				IsAutomatic: t.Automatic,
			}
			if err := tx.Where(entities.Tag{Name: t.Name}).FirstOrCreate(&tag).Error; err != nil {
				return fmt.Errorf("seed tag %s: %w", t.Name, err)
			}
		}

		for _, q := range data.QuickResponses {
			qr := entities.QuickResponse{
				Title:    q.Title,
				Content:  q.Content,
				Category: q.Category,
				Keywords: nonNil(q.Keywords),
				IsActive: true,
			}
			if err := tx.Where(entities.QuickResponse{Title: q.Title}).FirstOrCreate(&qr).Error; err != nil {
				return fmt.Errorf("seed quick response %s: %w", q.Title, err)
			}
		}

		for _, c := range data.Contacts {
			contact := c.Entity()
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "phone"}},
				DoUpdates: clause.AssignmentColumns([]string{"name"}),
			}).Create(&contact).Error; err != nil {
				return fmt.Errorf("seed contact %s: %w", c.Phone, err)
			}
		}

		var existing int64
		if err := tx.Model(&entities.Message{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			logger.Info("seed data applied, messages already present")
			return nil
		}

		var contactIDs []uint
		if err := tx.Model(&entities.Contact{}).Order("id ASC").Pluck("id", &contactIDs).Error; err != nil {
			return err
		}
		if len(contactIDs) == 0 {
			return nil
		}

		now := time.Now().UTC()
		messages := make([]entities.Message, 0, len(data.Messages))
		for _, m := range data.Messages {
			messages = append(messages, entities.Message{
				Content:    m.Content,
				Type:       entities.MessageTypeText,
				Status:     entities.MessageStatus(m.Status),
				Priority:   entities.Priority(m.Priority),
				Category:   entities.Category(m.Category),
				IsFromUser: rng.Float64() > 0.7,
				ContactID:  contactIDs[rng.IntN(len(contactIDs))],
				CreatedAt:  now.Add(-time.Duration(rng.IntN(2880)) * time.Minute),
			})
		}
		if err := tx.Omit("Contact", "Tags").Create(&messages).Error; err != nil {
			return fmt.Errorf("seed messages: %w", err)
		}

		logger.Info("seed data applied",
			zap.Int("tags", len(data.Tags)),
			zap.Int("quick_responses", len(data.QuickResponses)),
			zap.Int("contacts", len(data.Contacts)),
			zap.Int("messages", len(messages)))
		return nil
	})
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
