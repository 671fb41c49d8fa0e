package dtos

type SendMessageDTO struct {
	PhoneNumber string `json:"phone_number" binding:"required,isphone"`
	Message     string `json:"message" binding:"required"`
}

type WhatsAppStatusDTO struct {
	Status      string `json:"status"`
	Enabled     bool   `json:"enabled"`
	Connected   bool   `json:"connected"`
	LoggedIn    bool   `json:"logged_in"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type QRCodeDTO struct {
	QRCode  string `json:"qr_code"`
	Message string `json:"message"`
}

type MessageResponseDTO struct {
	MessageID string `json:"message_id"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	To        string `json:"to"`
}
