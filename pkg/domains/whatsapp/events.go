package whatsapp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/msgdesk/pkg/entities"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	waTypes "go.mau.fi/whatsmeow/types"
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// formatPhoneNumber converts phone number to WhatsApp JID format
func formatPhoneNumber(phoneNumber string) (waTypes.JID, error) {
	cleanPhone := nonDigits.ReplaceAllString(phoneNumber, "")

	// must be at least 10 digits
	if len(cleanPhone) < 10 {
		return waTypes.JID{}, fmt.Errorf("invalid phone number: too short")
	}

	return waTypes.NewJID(cleanPhone, waTypes.DefaultUserServer), nil
}

// phoneFromJID is the inverse of formatPhoneNumber, in the "+<digits>" form
// contacts are stored under.
func phoneFromJID(jid waTypes.JID) string {
	return "+" + jid.User
}

// extractContent returns the text worth storing for an incoming message and
// its type. Media without a caption is stored with a placeholder text.
func extractContent(msg *waProto.Message) (string, entities.MessageType, bool) {
	if msg == nil {
		return "", "", false
	}

	switch {
	case msg.GetConversation() != "":
		return msg.GetConversation(), entities.MessageTypeText, true
	case msg.GetExtendedTextMessage() != nil:
		text := msg.GetExtendedTextMessage().GetText()
		return text, entities.MessageTypeText, strings.TrimSpace(text) != ""
	case msg.GetImageMessage() != nil:
		return captionOr(msg.GetImageMessage().GetCaption(), "[imagem]"), entities.MessageTypeImage, true
	case msg.GetVideoMessage() != nil:
		return captionOr(msg.GetVideoMessage().GetCaption(), "[vídeo]"), entities.MessageTypeVideo, true
	case msg.GetDocumentMessage() != nil:
		doc := msg.GetDocumentMessage()
		return captionOr(doc.GetCaption(), captionOr(doc.GetTitle(), "[documento]")), entities.MessageTypeDocument, true
	}
	return "", "", false
}

func captionOr(caption, placeholder string) string {
	if strings.TrimSpace(caption) == "" {
		return placeholder
	}
	return caption
}
