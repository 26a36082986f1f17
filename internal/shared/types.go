package shared

// Asynq task types. Convention: "<domain>:<action>".
const (
	TypeRequestCreatedEmail = "request:created_email"
)

// Queue names, consumed by both the API enqueue side and the worker
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// Gin context keys set by the auth middleware
const (
	ContextUserID      = "userID"
	ContextUserEmail   = "userEmail"
	ContextUserRole    = "userRole"
	ContextPublisherID = "publisherID"
)
