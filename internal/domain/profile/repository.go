package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository handles profile persistence for both roles
type Repository interface {
	UpsertModelProfile(ctx context.Context, p *ModelProfile) error
	GetModelProfile(ctx context.Context, userID int64) (*ModelProfile, error)
	UpsertProfessionalProfile(ctx context.Context, p *ProfessionalProfile) error
	GetProfessionalProfile(ctx context.Context, userID int64) (*ProfessionalProfile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UpsertModelProfile(ctx context.Context, p *ModelProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(p).Error
}

func (r *repository) GetModelProfile(ctx context.Context, userID int64) (*ModelProfile, error) {
	var p ModelProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpsertProfessionalProfile(ctx context.Context, p *ProfessionalProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(p).Error
}

func (r *repository) GetProfessionalProfile(ctx context.Context, userID int64) (*ProfessionalProfile, error) {
	var p ProfessionalProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
