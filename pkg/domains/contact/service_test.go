package contact_test

import (
	"context"
	"testing"
	"time"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/database/dbtest"
	"github.com/msgdesk/pkg/domains/contact"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (contact.Service, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	return contact.NewService(contact.NewRepo(db)), db
}

func TestUpsert_SamePhoneRenames(t *testing.T) {
	svc, db := newService(t)

	first, err := svc.Upsert(context.Background(), "João", "+5511999888777")
	require.NoError(t, err)
	second, err := svc.Upsert(context.Background(), "João Silva", "+5511999888777")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "João Silva", second.Name)

	var count int64
	require.NoError(t, db.Model(&entities.Contact{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsert_BlankNameKeepsExistingName(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dtos.CreateContactDTO{Name: "João Silva", Phone: "+5511999888777"})
	require.NoError(t, err)
	again, err := svc.Upsert(ctx, "", "+5511999888777")
	require.NoError(t, err)

	assert.Equal(t, "João Silva", again.Name)
}

func TestUpsert_BlankNameForNewPhone(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Upsert(context.Background(), "  ", "+5511999888777")
	require.NoError(t, err)

	assert.Equal(t, "+5511999888777", created.Name)
}

func TestSave_UpdatesGroupFields(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.Upsert(ctx, "Projeto", "+5511555444333")
	require.NoError(t, err)

	groupName := "Projeto ABC"
	saved, err := svc.Save(ctx, entities.Contact{Name: "Grupo Projeto ABC", Phone: "+5511555444333", IsGroup: true, GroupName: &groupName})
	require.NoError(t, err)

	assert.Equal(t, "Grupo Projeto ABC", saved.Name)
	assert.True(t, saved.IsGroup)
	require.NotNil(t, saved.GroupName)
	assert.Equal(t, "Projeto ABC", *saved.GroupName)

	_, err = svc.Save(ctx, entities.Contact{Phone: "+5511555444333"})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestCreate_DuplicatePhone(t *testing.T) {
	svc, _ := newService(t)
	req := dtos.CreateContactDTO{Name: "Ana Lima", Phone: "+5511666555444"}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), req)

	assert.True(t, apperrors.Is(err, apperrors.KindValidation), "got %v", err)
}

func TestList_CountsAndLatestMessage(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	maria, err := svc.Upsert(ctx, "Maria Santos", "+5511888777666")
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "Pedro Costa", "+5511777666555")
	require.NoError(t, err)

	now := time.Now().UTC()
	for i, content := range []string{"primeira", "segunda", "última"} {
		require.NoError(t, db.Create(&entities.Message{
			Content:   content,
			Type:      entities.MessageTypeText,
			Status:    entities.StatusPending,
			Priority:  entities.PriorityNormal,
			Category:  entities.CategoryOther,
			ContactID: maria.ID,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byName := map[string]dtos.ContactSummaryDTO{}
	for _, c := range got {
		byName[c.Name] = c
	}
	assert.Equal(t, int64(3), byName["Maria Santos"].MessageCount)
	require.NotNil(t, byName["Maria Santos"].LastMessage)
	assert.Equal(t, "última", byName["Maria Santos"].LastMessage.Content)
	assert.Zero(t, byName["Pedro Costa"].MessageCount)
	assert.Nil(t, byName["Pedro Costa"].LastMessage)
}

func TestFindByPhone_Unknown(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.FindByPhone(context.Background(), "+5500000000000")

	assert.True(t, apperrors.Is(err, apperrors.KindReference))
}
