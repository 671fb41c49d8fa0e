package constant

const (
	INVALID_REQUEST   = "Invalid request"
	INVALID_ID        = "Invalid id"
	MESSAGE_DELETED   = "Message deleted successfully"
	UNKNOWN_ACTION    = "Unknown simulator action"
	DEMO_DATA_CREATED = "Demo data created successfully"
)
