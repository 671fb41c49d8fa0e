package constant

const (
	WHATSAPP_CONNECTED    = "WhatsApp connected successfully"
	WHATSAPP_DISCONNECTED = "WhatsApp disconnected successfully"
	MESSAGE_SENT          = "Message sent successfully"
	QR_CODE_SCAN          = "Scan this QR code with WhatsApp mobile app"

	WHATSAPP_DISABLED      = "WhatsApp integration is disabled"
	WHATSAPP_NOT_CONNECTED = "WhatsApp client not connected"
	WHATSAPP_NOT_LOGGED_IN = "Not logged in to WhatsApp. Please scan QR code first"
	INVALID_PHONE_NUMBER   = "Invalid phone number format"

	STATUS_CONNECTED     = "Connected and logged in"
	STATUS_LOGGED_OUT    = "Connected but not logged in"
	STATUS_DISCONNECTED  = "Logged in but websocket disconnected"
	STATUS_EXPIRED       = "Logged in but session expired (restart needed)"
	STATUS_NOT_INITIATED = "Not initialized"
)
