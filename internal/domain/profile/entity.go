package profile

import (
	"time"

	"gorm.io/datatypes"
)

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceProfessional ExperienceLevel = "professional"
)

type Profession string

const (
	ProfessionHairdresser  Profession = "hairdresser"
	ProfessionMakeupArtist Profession = "makeup_artist"
	ProfessionPhotographer Profession = "photographer"
	ProfessionOther        Profession = "other"
)

// ModelProfile holds the physical attributes a model exposes to matching
// requirement filters on listings.
type ModelProfile struct {
	UserID     int64           `gorm:"column:user_id;primaryKey" json:"user_id"`
	Gender     Gender          `gorm:"column:gender" json:"gender,omitempty"`
	BirthYear  int             `gorm:"column:birth_year" json:"birth_year,omitempty"`
	HeightCm   int             `gorm:"column:height_cm" json:"height_cm,omitempty"`
	WeightKg   int             `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	HairColor  string          `gorm:"column:hair_color" json:"hair_color,omitempty"`
	HairLength string          `gorm:"column:hair_length" json:"hair_length,omitempty"`
	EyeColor   string          `gorm:"column:eye_color" json:"eye_color,omitempty"`
	Experience ExperienceLevel `gorm:"column:experience" json:"experience,omitempty"`
	Bio        string          `gorm:"column:bio;type:text" json:"bio,omitempty"`
	City       string          `gorm:"column:city" json:"city,omitempty"`
	CreatedAt  time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (ModelProfile) TableName() string { return "model_profiles" }

// ProfessionalProfile describes a beauty/photography professional.
type ProfessionalProfile struct {
	UserID       int64          `gorm:"column:user_id;primaryKey" json:"user_id"`
	Profession   Profession     `gorm:"column:profession" json:"profession"`
	Specialties  datatypes.JSON `gorm:"column:specialties" json:"specialties,omitempty"`
	BusinessName string         `gorm:"column:business_name" json:"business_name,omitempty"`
	Bio          string         `gorm:"column:bio;type:text" json:"bio,omitempty"`
	City         string         `gorm:"column:city" json:"city,omitempty"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (ProfessionalProfile) TableName() string { return "professional_profiles" }
