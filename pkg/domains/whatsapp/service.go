// Package whatsapp links one WhatsApp account as a linked device. Incoming
// texts are handed to the inbox and replies go out through SendText.
package whatsapp

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/config"
	"github.com/msgdesk/pkg/constant"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Receiver stores an incoming message.
type Receiver interface {
	Receive(ctx context.Context, name, phone, content string, msgType entities.MessageType) (*entities.Message, error)
}

type Service interface {
	GetQRCode(ctx context.Context) (string, error)
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	GetStatus(ctx context.Context) (*dtos.WhatsAppStatusDTO, error)
	SendMessage(ctx context.Context, req dtos.SendMessageDTO) (*dtos.MessageResponseDTO, error)
	SendText(ctx context.Context, phone, text string) error
	Ready() bool
	Close()
}

// incoming is what the event processor needs from a whatsmeow message event.
type incoming struct {
	name    string
	phone   string
	content string
	msgType entities.MessageType
}

type service struct {
	cfg        config.WhatsApp
	repository Repository
	receiver   Receiver
	logger     *zap.Logger

	mutex     sync.RWMutex
	client    *whatsmeow.Client
	container *sqlstore.Container
	events    chan incoming
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewService(cfg config.WhatsApp, r Repository, receiver Receiver, logger *zap.Logger) Service {
	return &service{
		cfg:        cfg,
		repository: r,
		receiver:   receiver,
		logger:     logger,
	}
}

// ensureClient opens the device store and builds the client on first use.
func (s *service) ensureClient() (*whatsmeow.Client, error) {
	if !s.cfg.Enabled {
		return nil, apperrors.Unavailable(constant.WHATSAPP_DISABLED)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.client != nil {
		return s.client, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	clientLog := waLog.Stdout("WhatsApp", s.cfg.LogLevel, true)

	container, err := sqlstore.New(ctx, "sqlite", s.cfg.StorePath, clientLog)
	if err != nil {
		cancel()
		return nil, apperrors.Internal(err, "open whatsapp store")
	}
	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		cancel()
		container.Close()
		return nil, apperrors.Internal(err, "load whatsapp device")
	}

	client := whatsmeow.NewClient(deviceStore, clientLog)
	client.AddEventHandler(s.handleEvent)

	s.client = client
	s.container = container
	s.events = make(chan incoming, 100)
	s.ctx = ctx
	s.cancel = cancel
	go s.eventProcessor(ctx, s.events)

	s.logger.Info("WhatsApp client initialized", zap.Bool("logged_in", deviceStore.ID != nil))
	return client, nil
}

func (s *service) currentClient() *whatsmeow.Client {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.client
}

func (s *service) GetQRCode(ctx context.Context) (string, error) {
	client, err := s.ensureClient()
	if err != nil {
		return "", err
	}
	if client.Store.ID != nil {
		return "", apperrors.Validation("whatsapp", "already logged in")
	}

	// QR channel must be requested before connecting
	qrChan, err := client.GetQRChannel(s.ctx)
	if err != nil {
		if errors.Is(err, whatsmeow.ErrQRStoreContainsID) {
			return "", apperrors.Validation("whatsapp", "already logged in")
		}
		return "", apperrors.Internal(err, "get QR channel")
	}
	if !client.IsConnected() {
		if err := client.Connect(); err != nil {
			return "", apperrors.Internal(err, "connect whatsapp")
		}
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case evt, ok := <-qrChan:
			if !ok {
				return "", apperrors.Internal(errors.New("QR channel closed unexpectedly"), "get QR code")
			}
			switch evt.Event {
			case "code":
				s.saveStatus(true, false, "")
				go s.watchPairing(qrChan)
				return evt.Code, nil
			case "success":
				s.saveStatus(true, true, s.ownPhone(client))
				return "", apperrors.Validation("whatsapp", "already logged in")
			case "timeout":
				return "", apperrors.Unavailable("QR code expired")
			case "error":
				return "", apperrors.Internal(evt.Error, "QR pairing")
			default:
				s.logger.Debug("unhandled QR event", zap.String("event", evt.Event))
			}
		}
	}
}

// watchPairing drains the QR channel after the first code was returned and
// records the outcome.
func (s *service) watchPairing(qrChan <-chan whatsmeow.QRChannelItem) {
	for evt := range qrChan {
		switch evt.Event {
		case "success":
			s.logger.Info("WhatsApp paired via QR code")
			s.saveStatus(true, true, s.ownPhone(s.currentClient()))
		case "timeout":
			s.logger.Warn("QR code timeout")
			s.saveStatus(false, false, "")
		case "error":
			s.logger.Error("QR code error", zap.Error(evt.Error))
		}
	}
}

func (s *service) Connect(ctx context.Context) error {
	client, err := s.ensureClient()
	if err != nil {
		return err
	}
	if client.Store.ID == nil {
		return apperrors.Unavailable(constant.WHATSAPP_NOT_LOGGED_IN)
	}
	if !client.IsConnected() {
		if err := client.Connect(); err != nil {
			return apperrors.Internal(err, "connect whatsapp")
		}
	}
	s.saveStatus(true, true, s.ownPhone(client))
	s.logger.Info("WhatsApp client connected")
	return nil
}

func (s *service) Disconnect(ctx context.Context) error {
	if !s.cfg.Enabled {
		return apperrors.Unavailable(constant.WHATSAPP_DISABLED)
	}
	s.Close()
	s.saveStatus(false, s.loggedInBefore(ctx), "")
	s.logger.Info("WhatsApp client disconnected")
	return nil
}

// Close stops the event processor and releases the client and its store.
func (s *service) Close() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.client == nil {
		return
	}
	s.cancel()
	s.client.Disconnect()
	if err := s.container.Close(); err != nil {
		s.logger.Warn("failed to close whatsapp store", zap.Error(err))
	}
	s.client = nil
	s.container = nil
}

func (s *service) GetStatus(ctx context.Context) (*dtos.WhatsAppStatusDTO, error) {
	status := &dtos.WhatsAppStatusDTO{Enabled: s.cfg.Enabled}

	if client := s.currentClient(); client != nil {
		status.Connected = client.IsConnected()
		status.LoggedIn = client.Store.ID != nil
		status.PhoneNumber = s.ownPhone(client)
		switch {
		case status.LoggedIn && status.Connected:
			status.Status = constant.STATUS_CONNECTED
		case status.LoggedIn:
			status.Status = constant.STATUS_DISCONNECTED
		case status.Connected:
			status.Status = constant.STATUS_LOGGED_OUT
		default:
			status.Status = constant.STATUS_NOT_INITIATED
		}
		return status, nil
	}

	stored, err := s.repository.Status(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status.Status = constant.STATUS_NOT_INITIATED
		return status, nil
	}
	if err != nil {
		return nil, apperrors.Internal(err, "get whatsapp status")
	}
	status.PhoneNumber = stored.PhoneNumber
	if stored.IsLoggedIn {
		status.Status = constant.STATUS_EXPIRED
	} else {
		status.Status = constant.STATUS_NOT_INITIATED
	}
	return status, nil
}

func (s *service) Ready() bool {
	client := s.currentClient()
	return client != nil && client.IsConnected() && client.Store.ID != nil
}

func (s *service) SendText(ctx context.Context, phone, text string) error {
	_, err := s.SendMessage(ctx, dtos.SendMessageDTO{PhoneNumber: phone, Message: text})
	return err
}

func (s *service) SendMessage(ctx context.Context, req dtos.SendMessageDTO) (*dtos.MessageResponseDTO, error) {
	if !s.cfg.Enabled {
		return nil, apperrors.Unavailable(constant.WHATSAPP_DISABLED)
	}
	if !s.Ready() {
		return nil, apperrors.Unavailable(constant.WHATSAPP_NOT_CONNECTED)
	}

	recipient, err := formatPhoneNumber(req.PhoneNumber)
	if err != nil {
		return nil, apperrors.Validation("phone_number", constant.INVALID_PHONE_NUMBER)
	}

	resp, err := s.currentClient().SendMessage(ctx, recipient, &waProto.Message{
		Conversation: proto.String(req.Message),
	})
	if err != nil {
		return nil, apperrors.Internal(err, "send whatsapp message")
	}

	s.logger.Info("WhatsApp message sent", zap.String("id", string(resp.ID)), zap.String("to", recipient.User))
	return &dtos.MessageResponseDTO{
		MessageID: string(resp.ID),
		Timestamp: resp.Timestamp.Format(time.RFC3339),
		Status:    "sent",
		To:        req.PhoneNumber,
	}, nil
}

func (s *service) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Message:
		if in, ok := toIncoming(v); ok {
			select {
			case s.events <- in:
			default:
				s.logger.Warn("incoming WhatsApp queue full, dropping message", zap.String("from", in.phone))
			}
		}
	case *events.Connected:
		s.saveStatus(true, true, s.ownPhone(s.currentClient()))
	case *events.Disconnected:
		s.saveStatus(false, true, "")
	case *events.LoggedOut:
		s.logger.Warn("WhatsApp session logged out", zap.String("reason", v.Reason.String()))
		s.saveStatus(false, false, "")
	}
}

// toIncoming keeps direct messages from other people that carry content. An
// empty push name is passed on as is so a known contact keeps its name.
func toIncoming(evt *events.Message) (incoming, bool) {
	if evt.Info.IsFromMe || evt.Info.IsGroup {
		return incoming{}, false
	}
	content, msgType, ok := extractContent(evt.Message)
	if !ok {
		return incoming{}, false
	}
	return incoming{
		name:    evt.Info.PushName,
		phone:   phoneFromJID(evt.Info.Sender.ToNonAD()),
		content: content,
		msgType: msgType,
	}, true
}

func (s *service) eventProcessor(ctx context.Context, queue <-chan incoming) {
	for {
		select {
		case in := <-queue:
			msgCtx, cancel := context.WithTimeout(ctx, time.Minute)
			msg, err := s.receiver.Receive(msgCtx, in.name, in.phone, in.content, in.msgType)
			cancel()
			if err != nil {
				s.logger.Error("failed to store WhatsApp message", zap.String("from", in.phone), zap.Error(err))
				continue
			}
			s.logger.Info("WhatsApp message stored",
				zap.Uint("message_id", msg.ID),
				zap.String("from", in.phone),
				zap.String("priority", string(msg.Priority)))
		case <-ctx.Done():
			s.logger.Info("WhatsApp event processor stopped")
			return
		}
	}
}

func (s *service) saveStatus(isConnected, isLoggedIn bool, phone string) {
	if err := s.repository.SaveStatus(context.Background(), isConnected, isLoggedIn, phone); err != nil {
		s.logger.Warn("failed to save WhatsApp session status", zap.Error(err))
	}
}

func (s *service) loggedInBefore(ctx context.Context) bool {
	stored, err := s.repository.Status(ctx)
	return err == nil && stored.IsLoggedIn
}

func (s *service) ownPhone(client *whatsmeow.Client) string {
	if client == nil || client.Store.ID == nil {
		return ""
	}
	return phoneFromJID(client.Store.ID.ToNonAD())
}
