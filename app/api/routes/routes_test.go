package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/msgdesk/pkg/config"
	"github.com/msgdesk/pkg/database/dbtest"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"github.com/msgdesk/pkg/llm/llmtest"
	"github.com/msgdesk/pkg/seed"
	"github.com/msgdesk/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type api struct {
	t   *testing.T
	app *gin.Engine
	db  *gorm.DB
	llm *llmtest.Server
}

func newAPI(t *testing.T, llm *llmtest.Server) *api {
	t.Helper()
	db := dbtest.New(t)

	app := gin.New()
	app.ContextWithFallback = true
	server.RegisterRoutes(app.Group("/api/v1"), server.Deps{
		DB:        db,
		Completer: llm.Client(),
		WhatsApp:  config.WhatsApp{},
		Rand:      rand.New(rand.NewPCG(1, 2)),
		Logger:    zap.NewNop(),
	})
	return &api{t: t, app: app, db: db, llm: llm}
}

func (a *api) addContact(name, phone string) entities.Contact {
	a.t.Helper()
	contact := entities.Contact{Name: name, Phone: phone}
	require.NoError(a.t, a.db.Create(&contact).Error)
	return contact
}

func (a *api) addMessage(contactID uint, content string, status entities.MessageStatus) entities.Message {
	a.t.Helper()
	msg := entities.Message{
		Content:   content,
		Type:      entities.MessageTypeText,
		Status:    status,
		Priority:  entities.PriorityNormal,
		Category:  entities.CategoryOther,
		ContactID: contactID,
	}
	require.NoError(a.t, a.db.Create(&msg).Error)
	return msg
}

func (a *api) addTag(name string, keywords ...string) {
	a.t.Helper()
	require.NoError(a.t, a.db.Create(&entities.Tag{
		Name:        name,
		Color:       entities.DefaultTagColor,
		Keywords:    datatypes.JSONSlice[string](keywords),
		IsAutomatic: true,
	}).Error)
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.app.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

const salesReply = `{"priority": "HIGH", "category": "SALES", "tags": ["Vendas"]}`

func TestClassify_MissingContent(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))

	rec := a.do(http.MethodPost, "/messages/classify", map[string]any{"content": "  "})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, a.llm.Requests())
}

func TestClassify_ReturnsVerdict(t *testing.T) {
	a := newAPI(t, llmtest.New(t, "```json\n"+salesReply+"\n```"))

	rec := a.do(http.MethodPost, "/messages/classify", map[string]any{"content": "Qual o valor do plano anual?"})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Equal(t, "HIGH", got["priority"])
	assert.Equal(t, "SALES", got["category"])
	assert.Equal(t, []any{"Vendas"}, got["tags"])
}

func TestClassify_UnknownMessage(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))

	rec := a.do(http.MethodPost, "/messages/classify", map[string]any{"messageId": 9999, "content": "oi"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, a.llm.Requests())
}

func TestClassify_StoredMessageGetsTags(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))
	a.addTag("Vendas", "comprar", "preço")
	a.addTag("Suporte", "problema", "erro")
	contact := a.addContact("Maria Santos", "+5511888777666")
	msg := a.addMessage(contact.ID, "Qual o preço do produto X?", entities.StatusPending)

	rec := a.do(http.MethodPost, "/messages/classify", map[string]any{"messageId": msg.ID, "content": msg.Content})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[entities.Message](t, rec)
	assert.Equal(t, entities.PriorityHigh, got.Priority)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "Vendas", got.Tags[0].Tag.Name)
}

func TestClassify_TransportFailure(t *testing.T) {
	a := newAPI(t, llmtest.Failing(t, http.StatusServiceUnavailable))

	rec := a.do(http.MethodPost, "/messages/classify", map[string]any{"content": "Preciso de ajuda"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSuggestResponse_FallsBackToDefaults(t *testing.T) {
	a := newAPI(t, llmtest.Failing(t, http.StatusInternalServerError))

	rec := a.do(http.MethodPost, "/messages/suggest-response", map[string]any{"content": "xyz"})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[struct {
		Suggestions []map[string]any `json:"suggestions"`
	}](t, rec)
	assert.GreaterOrEqual(t, len(got.Suggestions), 2)
}

func TestListMessages_Filters(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))
	contact := a.addContact("Loja Centro", "+5511999888777")
	a.addMessage(contact.ID, "Problema no sistema - não consigo fazer login.", entities.StatusPending)
	a.addMessage(contact.ID, "O login voltou a funcionar, obrigado.", entities.StatusRead)
	a.addMessage(contact.ID, "Qual o preço do produto X?", entities.StatusPending)

	rec := a.do(http.MethodGet, "/messages?status=all&priority=all&category=all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entities.Message](t, rec), 3)

	rec = a.do(http.MethodGet, "/messages?search=login&status=PENDING", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	messages := decode[[]entities.Message](t, rec)
	require.Len(t, messages, 1)
	assert.Equal(t, entities.StatusPending, messages[0].Status)
	assert.Contains(t, strings.ToLower(messages[0].Content), "login")

	rec = a.do(http.MethodGet, "/messages?search=centro", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entities.Message](t, rec), 3)

	rec = a.do(http.MethodGet, "/messages?status=LOST", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMessage_UnknownContact(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))

	rec := a.do(http.MethodPost, "/messages", map[string]any{"content": "oi", "contactId": 9999})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var count int64
	require.NoError(t, a.db.Model(&entities.Message{}).Where("content = ?", "oi").Count(&count).Error)
	assert.Zero(t, count)
}

func TestMessageByID(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/messages/abc", nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/messages/9999", nil).Code)

	contact := a.addContact("Pedro Costa", "+5511777666555")
	msg := a.addMessage(contact.ID, "Quando será a próxima reunião?", entities.StatusPending)

	rec := a.do(http.MethodPatch, "/messages/"+itoa(msg.ID), map[string]any{"status": "responded"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[entities.Message](t, rec)
	assert.Equal(t, entities.StatusResponded, updated.Status)
	assert.NotNil(t, updated.RespondedAt)

	assert.Equal(t, http.StatusOK, a.do(http.MethodDelete, "/messages/"+itoa(msg.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/messages/"+itoa(msg.ID), nil).Code)
}

func TestReply(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))
	contact := a.addContact("Ana Lima", "+5511666555444")
	msg := a.addMessage(contact.ID, "Tenho uma dúvida sobre o orçamento.", entities.StatusPending)

	rec := a.do(http.MethodPost, "/messages/"+itoa(msg.ID)+"/reply", map[string]any{"content": "Já verifico!"})

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decode[dtos.ReplyResultDTO](t, rec)
	assert.False(t, got.Delivered)
	require.NotNil(t, got.Reply)
	assert.True(t, got.Reply.IsFromUser)
	assert.Equal(t, entities.StatusRead, got.Reply.Status)

	var original entities.Message
	require.NoError(t, a.db.First(&original, msg.ID).Error)
	assert.Equal(t, entities.StatusResponded, original.Status)
}

func TestSettings(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))

	rec := a.do(http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "light", decode[entities.UserSettings](t, rec).Theme)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPut, "/settings", map[string]any{"workingHoursStart": "25:00"}).Code)

	rec = a.do(http.MethodPut, "/settings", map[string]any{"theme": "dark"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[entities.UserSettings](t, rec)
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "09:00", updated.WorkingHoursStart)
}

func TestCatalog(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/contacts", map[string]any{"name": "X", "phone": "abc"}).Code)
	assert.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/contacts", map[string]any{"name": "X", "phone": "+5521912345678"}).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/contacts", map[string]any{"name": "Y", "phone": "+5521912345678"}).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/tags", map[string]any{"name": "Y", "color": "blue-ish"}).Code)
	assert.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/tags", map[string]any{"name": "Vendas", "keywords": []string{"preço"}}).Code)
	assert.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/quick-responses", map[string]any{"title": "Oi", "content": "Olá!"}).Code)

	rec := a.do(http.MethodGet, "/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = a.do(http.MethodGet, "/tags", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tags := decode[[]map[string]any](t, rec)
	require.Len(t, tags, 1)
	assert.Equal(t, entities.DefaultTagColor, tags[0]["color"])

	rec = a.do(http.MethodGet, "/quick-responses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)
}

func TestSimulator(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))
	a.addContact("João Silva", "+5511999888777")

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/simulator", map[string]any{"action": "explode"}).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodPost, "/simulator", map[string]any{
		"action": "send_message", "phone": "+5599000000000", "content": "oi",
	}).Code)

	rec := a.do(http.MethodPost, "/simulator", map[string]any{
		"action": "send_message", "phone": "+5511999888777", "content": "Quero comprar 10 unidades",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entities.CategorySales, decode[entities.Message](t, rec).Category)

	rec = a.do(http.MethodGet, "/simulator", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 15, decode[map[string]any](t, rec)["messages"])
}

func TestWhatsAppDisabled(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))

	rec := a.do(http.MethodGet, "/whatsapp/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]any](t, rec)["enabled"])

	rec = a.do(http.MethodPost, "/whatsapp/send-message", map[string]any{"phone_number": "+5511999888777", "message": "oi"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSeededSmoke(t *testing.T) {
	a := newAPI(t, llmtest.New(t, salesReply))
	require.NoError(t, seed.Run(context.Background(), a.db, rand.New(rand.NewPCG(1, 2)), zap.NewNop()))

	rec := a.do(http.MethodGet, "/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entities.Message](t, rec), 10)

	rec = a.do(http.MethodGet, "/tags", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 6)

	rec = a.do(http.MethodGet, "/simulator", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 15, decode[map[string]any](t, rec)["messages"])
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
