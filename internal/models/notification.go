package models

// NotificationLevel represents the severity of a user-facing notification
type NotificationLevel string

const (
	// NotificationLevelSuccess indicates a command completed as requested
	NotificationLevelSuccess NotificationLevel = "success"

	// NotificationLevelError indicates a command was rejected
	NotificationLevelError NotificationLevel = "error"

	// NotificationLevelInfo indicates a neutral outcome worth showing
	NotificationLevelInfo NotificationLevel = "info"
)

// Notification is the transient toast shown after each booking command
type Notification struct {
	// Level is the severity of the notification
	Level NotificationLevel

	// Message is the human-readable toast text
	Message string
}
