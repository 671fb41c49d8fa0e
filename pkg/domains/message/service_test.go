package message_test

import (
	"context"
	"testing"
	"time"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/database/dbtest"
	"github.com/msgdesk/pkg/domains/message"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (message.Service, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	return message.NewService(message.NewRepo(db)), db
}

func addContact(t *testing.T, db *gorm.DB, name, phone string) entities.Contact {
	t.Helper()
	contact := entities.Contact{Name: name, Phone: phone}
	require.NoError(t, db.Create(&contact).Error)
	return contact
}

func addMessage(t *testing.T, db *gorm.DB, contactID uint, content string, status entities.MessageStatus, at time.Time) entities.Message {
	t.Helper()
	msg := entities.Message{
		Content:   content,
		Type:      entities.MessageTypeText,
		Status:    status,
		Priority:  entities.PriorityNormal,
		Category:  entities.CategoryOther,
		ContactID: contactID,
		CreatedAt: at,
	}
	require.NoError(t, db.Create(&msg).Error)
	return msg
}

func ids(messages []entities.Message) []uint {
	out := make([]uint, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.ID)
	}
	return out
}

func TestCreate_AppliesDefaults(t *testing.T) {
	svc, db := newService(t)
	contact := addContact(t, db, "João Silva", "+5511999888777")

	msg, err := svc.Create(context.Background(), dtos.CreateMessageDTO{
		Content:   "Olá! Gostaria de saber mais sobre seus produtos.",
		ContactID: contact.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, msg.Status)
	assert.Equal(t, entities.PriorityNormal, msg.Priority)
	assert.Equal(t, entities.CategoryOther, msg.Category)
	assert.Equal(t, entities.MessageTypeText, msg.Type)
	assert.False(t, msg.IsFromUser)
	require.NotNil(t, msg.Contact)
	assert.Equal(t, "João Silva", msg.Contact.Name)
	assert.Empty(t, msg.Tags)
}

func TestCreate_UnknownContactIsReferenceErrorAndWritesNothing(t *testing.T) {
	svc, db := newService(t)

	_, err := svc.Create(context.Background(), dtos.CreateMessageDTO{Content: "oi", ContactID: 42})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindReference))

	var count int64
	require.NoError(t, db.Model(&entities.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreate_MissingFieldsAreValidationErrors(t *testing.T) {
	svc, db := newService(t)
	contact := addContact(t, db, "Ana", "+5511666555444")

	tests := []struct {
		name string
		req  dtos.CreateMessageDTO
	}{
		{"no content", dtos.CreateMessageDTO{ContactID: contact.ID}},
		{"blank content", dtos.CreateMessageDTO{Content: "  ", ContactID: contact.ID}},
		{"no contact", dtos.CreateMessageDTO{Content: "oi"}},
		{"bad type", dtos.CreateMessageDTO{Content: "oi", ContactID: contact.ID, Type: "AUDIO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.True(t, apperrors.Is(err, apperrors.KindValidation), "got %v", err)
		})
	}

	var count int64
	require.NoError(t, db.Model(&entities.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestList_AllSentinelReturnsEverythingNewestFirst(t *testing.T) {
	svc, db := newService(t)
	contact := addContact(t, db, "Maria Santos", "+5511888777666")
	now := time.Now().UTC()
	older := addMessage(t, db, contact.ID, "primeira", entities.StatusRead, now.Add(-2*time.Hour))
	newer := addMessage(t, db, contact.ID, "segunda", entities.StatusPending, now.Add(-time.Hour))
	newest := addMessage(t, db, contact.ID, "terceira", entities.StatusResponded, now)

	filter, err := message.ParseFilter(dtos.ListMessagesQuery{Status: "all", Priority: "all", Category: ""})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, []uint{newest.ID, newer.ID, older.ID}, ids(got))
	require.NotNil(t, got[0].Contact)
	assert.Equal(t, "Maria Santos", got[0].Contact.Name)
}

func TestList_SearchAndStatusCombine(t *testing.T) {
	svc, db := newService(t)
	pedro := addContact(t, db, "Pedro Costa", "+5511777666555")
	login := addContact(t, db, "Loginha Ferreira", "+5511444333222")
	now := time.Now().UTC()

	pending := addMessage(t, db, pedro.ID, "Problema no sistema - não consigo fazer login.", entities.StatusPending, now.Add(-time.Minute))
	addMessage(t, db, pedro.ID, "Problema no sistema - não consigo fazer login.", entities.StatusResponded, now)
	addMessage(t, db, pedro.ID, "Qual o preço do produto X?", entities.StatusPending, now)
	byName := addMessage(t, db, login.ID, "Bom dia!", entities.StatusPending, now.Add(-2*time.Minute))

	filter, err := message.ParseFilter(dtos.ListMessagesQuery{Status: "PENDING", Search: "LOGIN"})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, []uint{pending.ID, byName.ID}, ids(got))
}

func TestList_EmptyStoreReturnsEmptySlice(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.List(context.Background(), message.Filter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseFilter(t *testing.T) {
	f, err := message.ParseFilter(dtos.ListMessagesQuery{Status: "pending", Priority: "ALL", Category: "sales", Search: "  preço "})
	require.NoError(t, err)
	require.NotNil(t, f.Status)
	assert.Equal(t, entities.StatusPending, *f.Status)
	assert.Nil(t, f.Priority)
	require.NotNil(t, f.Category)
	assert.Equal(t, entities.CategorySales, *f.Category)
	assert.Equal(t, "preço", f.Search)

	_, err = message.ParseFilter(dtos.ListMessagesQuery{Priority: "MEDIUM"})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestUpdate_RespondedStampsRespondedAt(t *testing.T) {
	svc, db := newService(t)
	contact := addContact(t, db, "Ana Lima", "+5511666555444")
	msg := addMessage(t, db, contact.ID, "Obrigado!", entities.StatusPending, time.Now().UTC())

	status := "responded"
	got, err := svc.Update(context.Background(), msg.ID, dtos.UpdateMessageDTO{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, entities.StatusResponded, got.Status)
	assert.NotNil(t, got.RespondedAt)
}

func TestUpdate_InvalidPriority(t *testing.T) {
	svc, db := newService(t)
	contact := addContact(t, db, "Ana Lima", "+5511666555444")
	msg := addMessage(t, db, contact.ID, "Obrigado!", entities.StatusPending, time.Now().UTC())

	priority := "MEDIUM"
	_, err := svc.Update(context.Background(), msg.ID, dtos.UpdateMessageDTO{Priority: &priority})

	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestUpdate_UnknownMessage(t *testing.T) {
	svc, _ := newService(t)

	status := "READ"
	_, err := svc.Update(context.Background(), 99, dtos.UpdateMessageDTO{Status: &status})

	assert.True(t, apperrors.Is(err, apperrors.KindReference))
}

func TestDelete_RemovesTagAssociations(t *testing.T) {
	svc, db := newService(t)
	contact := addContact(t, db, "Ana Lima", "+5511666555444")
	msg := addMessage(t, db, contact.ID, "urgente", entities.StatusPending, time.Now().UTC())
	tag := entities.Tag{Name: "Urgente", Color: "#EF4444", IsAutomatic: true}
	require.NoError(t, db.Create(&tag).Error)
	require.NoError(t, db.Create(&entities.MessageTag{MessageID: msg.ID, TagID: tag.ID}).Error)

	require.NoError(t, svc.Delete(context.Background(), msg.ID))

	var count int64
	require.NoError(t, db.Model(&entities.MessageTag{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.True(t, apperrors.Is(svc.Delete(context.Background(), msg.ID), apperrors.KindReference))
}

func TestHistory_OldestFirst(t *testing.T) {
	svc, db := newService(t)
	contact := addContact(t, db, "Ana Lima", "+5511666555444")
	now := time.Now().UTC()
	addMessage(t, db, contact.ID, "um", entities.StatusRead, now.Add(-3*time.Minute))
	addMessage(t, db, contact.ID, "dois", entities.StatusRead, now.Add(-2*time.Minute))
	addMessage(t, db, contact.ID, "três", entities.StatusRead, now.Add(-time.Minute))

	got, err := svc.History(context.Background(), contact.ID, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"dois", "três"}, got)
}

func TestRespond_StoresReplyAndMarksOriginal(t *testing.T) {
	svc, db := newService(t)
	contact := addContact(t, db, "Maria Santos", "+5511888777666")
	incoming := addMessage(t, db, contact.ID, "Qual o preço?", entities.StatusPending, time.Now().UTC())

	original, reply, err := svc.Respond(context.Background(), incoming.ID, "Segue a tabela.")
	require.NoError(t, err)

	assert.Equal(t, entities.StatusResponded, original.Status)
	assert.NotNil(t, original.RespondedAt)
	assert.True(t, reply.IsFromUser)
	assert.Equal(t, entities.StatusRead, reply.Status)
	assert.Equal(t, contact.ID, reply.ContactID)
}

func TestRespond_RollsBackWhenOriginalMissing(t *testing.T) {
	db := dbtest.New(t)
	repo := message.NewRepo(db)
	contact := addContact(t, db, "Pedro Costa", "+5511777666555")

	reply := &entities.Message{
		Content:    "Olá!",
		Type:       entities.MessageTypeText,
		Status:     entities.StatusRead,
		Priority:   entities.PriorityNormal,
		Category:   entities.CategoryOther,
		IsFromUser: true,
		ContactID:  contact.ID,
	}
	err := repo.Respond(context.Background(), 9999, reply, time.Now().UTC())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	var count int64
	require.NoError(t, db.Model(&entities.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRespond_Validation(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Respond(context.Background(), 1, "  ")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, _, err = svc.Respond(context.Background(), 9999, "Olá!")
	assert.True(t, apperrors.Is(err, apperrors.KindReference))
}
