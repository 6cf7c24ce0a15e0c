package application

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// Application is a model's bid on a listing.
type Application struct {
	ID        int64  `gorm:"column:id;primaryKey" json:"id"`
	ListingID int64  `gorm:"column:listing_id;index:idx_applications_listing_model" json:"listing_id"`
	ModelID   int64  `gorm:"column:model_id;index:idx_applications_listing_model" json:"model_id"`
	Status    Status `gorm:"column:status" json:"status"`
	// Message the model attaches when applying
	Message string `gorm:"column:message;type:text" json:"message,omitempty"`
	// Reply the professional attaches when accepting or rejecting
	ResponseMessage string    `gorm:"column:response_message;type:text" json:"response_message,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }
