package listing

import (
	"context"
	"strings"
	"time"
)

// Service handles listing business logic
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// validate enforces the cross-field invariants the store cannot express.
func validate(l *Listing) error {
	if strings.TrimSpace(l.Title) == "" {
		return ErrValidation
	}
	if !l.Category.Valid() {
		return ErrValidation
	}
	if l.DurationMinutes <= 0 {
		return ErrValidation
	}
	if !l.CompensationType.Valid() {
		return ErrValidation
	}
	// amount present iff paid
	if l.CompensationType == CompensationPaid {
		if l.CompensationAmount == nil || *l.CompensationAmount <= 0 {
			return ErrValidation
		}
	} else if l.CompensationAmount != nil {
		return ErrValidation
	}
	if l.RequiredHeightMin != nil && l.RequiredHeightMax != nil && *l.RequiredHeightMin > *l.RequiredHeightMax {
		return ErrValidation
	}
	return nil
}

// Create posts a new prestation. Status may be draft or published.
func (s *Service) Create(ctx context.Context, professionalID int64, l *Listing) (*Listing, error) {
	l.ProfessionalID = professionalID
	if l.Status == "" {
		l.Status = StatusPublished
	}
	if l.Status != StatusDraft && l.Status != StatusPublished {
		return nil, ErrValidation
	}
	if err := validate(l); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Update mutates a listing. Owner only; finalized listings are immutable.
func (s *Service) Update(ctx context.Context, professionalID, id int64, apply func(*Listing)) (*Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.ProfessionalID != professionalID {
		return nil, ErrNotOwner
	}
	if l.Terminal() {
		return nil, ErrListingFinalized
	}

	apply(l)
	if err := validate(l); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Publish moves a draft to published.
func (s *Service) Publish(ctx context.Context, professionalID, id int64) (*Listing, error) {
	return s.setStatus(ctx, professionalID, id, StatusPublished)
}

// Complete marks a listing as done. Normal end of the happy path.
func (s *Service) Complete(ctx context.Context, professionalID, id int64) (*Listing, error) {
	return s.setStatus(ctx, professionalID, id, StatusCompleted)
}

// Cancel withdraws a listing.
func (s *Service) Cancel(ctx context.Context, professionalID, id int64) (*Listing, error) {
	return s.setStatus(ctx, professionalID, id, StatusCancelled)
}

func (s *Service) setStatus(ctx context.Context, professionalID, id int64, status Status) (*Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.ProfessionalID != professionalID {
		return nil, ErrNotOwner
	}
	if l.Terminal() {
		return nil, ErrListingFinalized
	}
	l.Status = status
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete hard-deletes a listing. Exists for cleanup; the normal flow is a
// status transition to completed or cancelled.
func (s *Service) Delete(ctx context.Context, professionalID, id int64) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.ProfessionalID != professionalID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}

// GetByID returns a single listing.
func (s *Service) GetByID(ctx context.Context, id int64) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the filtered feed. Unauthenticated browsing defaults to
// published listings only.
func (s *Service) List(ctx context.Context, f ListFilters) ([]*Listing, error) {
	if f.Status == "" {
		f.Status = StatusPublished
	}
	return s.repo.List(ctx, f)
}

// ListMine returns all of a professional's own listings, drafts included.
func (s *Service) ListMine(ctx context.Context, professionalID int64, limit, offset int) ([]*Listing, error) {
	return s.repo.List(ctx, ListFilters{
		ProfessionalID: professionalID,
		Limit:          limit,
		Offset:         offset,
	})
}

// CompleteExpired is called by the sweeper: published listings whose date
// passed more than the grace period ago are auto-completed.
func (s *Service) CompleteExpired(ctx context.Context, grace time.Duration) (int64, error) {
	return s.repo.CompleteExpired(ctx, time.Now().Add(-grace))
}
