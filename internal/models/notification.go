package models

// Notification is a storefront banner message. At most one notification may be
// active at a time; services.NotificationService is the only writer of Active.
type Notification struct {
	BaseModel
	Message string `json:"message"`
	Active  bool   `gorm:"index" json:"active"`
}
