package listing

import (
	"time"

	"gorm.io/datatypes"

	"modelo/internal/domain/profile"
)

type Category string

const (
	CategoryHaircut    Category = "haircut"
	CategoryColoring   Category = "coloring"
	CategoryMakeup     Category = "makeup"
	CategoryPhotoshoot Category = "photoshoot"
	CategoryOther      Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHaircut, CategoryColoring, CategoryMakeup, CategoryPhotoshoot, CategoryOther:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// CompensationType tags how a model is compensated for a prestation.
type CompensationType string

const (
	CompensationFree CompensationType = "free"
	CompensationPaid CompensationType = "paid"
	// Trade-for-prints: the model is paid in edited pictures
	CompensationTFP CompensationType = "tfp"
)

func (t CompensationType) Valid() bool {
	return t == CompensationFree || t == CompensationPaid || t == CompensationTFP
}

// Listing is a prestation posted by a professional.
// CompensationAmount is set if and only if CompensationType is paid.
type Listing struct {
	ID                 int64            `gorm:"column:id;primaryKey" json:"id"`
	ProfessionalID     int64            `gorm:"column:professional_id;index" json:"professional_id"`
	Title              string           `gorm:"column:title" json:"title"`
	Description        string           `gorm:"column:description;type:text" json:"description,omitempty"`
	Category           Category         `gorm:"column:category;index" json:"category"`
	Status             Status           `gorm:"column:status;index" json:"status"`
	ScheduledAt        time.Time        `gorm:"column:scheduled_at" json:"scheduled_at"`
	DurationMinutes    int              `gorm:"column:duration_minutes" json:"duration_minutes"`
	Latitude           float64          `gorm:"column:latitude" json:"latitude"`
	Longitude          float64          `gorm:"column:longitude" json:"longitude"`
	Address            string           `gorm:"column:address" json:"address"`
	City               string           `gorm:"column:city;index" json:"city"`
	CompensationType   CompensationType `gorm:"column:compensation_type" json:"compensation_type"`
	CompensationAmount *float64         `gorm:"column:compensation_amount" json:"compensation_amount,omitempty"`

	// Optional requirement filters for candidates
	RequiredGender     *profile.Gender          `gorm:"column:required_gender" json:"required_gender,omitempty"`
	RequiredHeightMin  *int                     `gorm:"column:required_height_min" json:"required_height_min,omitempty"`
	RequiredHeightMax  *int                     `gorm:"column:required_height_max" json:"required_height_max,omitempty"`
	RequiredHairColor  *string                  `gorm:"column:required_hair_color" json:"required_hair_color,omitempty"`
	RequiredHairLength *string                  `gorm:"column:required_hair_length" json:"required_hair_length,omitempty"`
	RequiredExperience *profile.ExperienceLevel `gorm:"column:required_experience" json:"required_experience,omitempty"`

	ImageIDs  datatypes.JSON `gorm:"column:image_ids" json:"image_ids,omitempty"` // FK list -> uploads.id
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Listing) TableName() string { return "listings" }

// Terminal reports whether the listing can no longer be mutated.
func (l *Listing) Terminal() bool {
	return l.Status == StatusCompleted || l.Status == StatusCancelled
}
