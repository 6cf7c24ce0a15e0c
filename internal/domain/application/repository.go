package application

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles application persistence
type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	Update(ctx context.Context, a *Application) error
	ListByModel(ctx context.Context, modelID int64) ([]*Application, error)
	ListByListing(ctx context.Context, listingID int64) ([]*Application, error)
	HasActive(ctx context.Context, listingID, modelID int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) ListByModel(ctx context.Context, modelID int64) ([]*Application, error) {
	var apps []*Application
	err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) ListByListing(ctx context.Context, listingID int64) ([]*Application, error) {
	var apps []*Application
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// HasActive reports whether a pending or accepted application already exists
// for the (listing, model) pair.
func (r *repository) HasActive(ctx context.Context, listingID, modelID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("listing_id = ? AND model_id = ? AND status IN ?",
			listingID, modelID, []Status{StatusPending, StatusAccepted}).
		Count(&count).Error
	return count > 0, err
}
