package notification

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Type represents notification type
type Type string

const (
	TypeApplicationReceived Type = "application_received" // Professional: new bid on a listing
	TypeApplicationAccepted Type = "application_accepted" // Model: bid accepted
	TypeApplicationRejected Type = "application_rejected" // Model: bid rejected
	TypeNewMessage          Type = "new_message"          // Either side: new chat message
)

// Notification is a per-user inbox entry.
type Notification struct {
	ID        int64          `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64          `gorm:"column:user_id;index" json:"user_id"`
	Type      Type           `gorm:"column:type" json:"type"`
	Title     string         `gorm:"column:title" json:"title"`
	Body      string         `gorm:"column:body" json:"body,omitempty"`
	Data      datatypes.JSON `gorm:"column:data" json:"data,omitempty"`
	IsRead    bool           `gorm:"column:is_read" json:"is_read"`
	ReadAt    *time.Time     `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// SetData encodes the structured payload.
func (n *Notification) SetData(data map[string]any) error {
	if data == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	n.Data = datatypes.JSON(b)
	return nil
}
