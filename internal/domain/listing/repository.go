package listing

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ListFilters narrows the public listing feed. Zero values mean "no filter".
type ListFilters struct {
	Category       Category
	City           string
	Status         Status
	ProfessionalID int64
	DateFrom       time.Time
	DateTo         time.Time
	Limit          int
	Offset         int
}

// Repository handles listing persistence
type Repository interface {
	Create(ctx context.Context, l *Listing) error
	GetByID(ctx context.Context, id int64) (*Listing, error)
	Update(ctx context.Context, l *Listing) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f ListFilters) ([]*Listing, error)
	CompleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Listing, error) {
	var l Listing
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Listing{}, id).Error
}

func (r *repository) List(ctx context.Context, f ListFilters) ([]*Listing, error) {
	q := r.db.WithContext(ctx).Model(&Listing{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ProfessionalID != 0 {
		q = q.Where("professional_id = ?", f.ProfessionalID)
	}
	if !f.DateFrom.IsZero() {
		q = q.Where("scheduled_at >= ?", f.DateFrom)
	}
	if !f.DateTo.IsZero() {
		q = q.Where("scheduled_at <= ?", f.DateTo)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var listings []*Listing
	err := q.Order("scheduled_at ASC").
		Limit(limit).Offset(f.Offset).
		Find(&listings).Error
	return listings, err
}

// CompleteExpired flips published listings whose scheduled date is long past
// to completed. Used by the background sweeper.
func (r *repository) CompleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Listing{}).
		Where("status = ? AND scheduled_at < ?", StatusPublished, olderThan).
		Update("status", StatusCompleted)
	return res.RowsAffected, res.Error
}
