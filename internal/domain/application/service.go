package application

import (
	"context"

	"modelo/internal/domain/listing"
)

// ListingGetter is the slice of the listing service this domain needs.
type ListingGetter interface {
	GetByID(ctx context.Context, id int64) (*listing.Listing, error)
}

// NotificationSender receives lifecycle events for the counterparty.
type NotificationSender interface {
	NotifyApplicationReceived(ctx context.Context, professionalID, applicationID, listingID, modelID int64) error
	NotifyApplicationAccepted(ctx context.Context, modelID, applicationID, listingID int64, responseMessage string) error
	NotifyApplicationRejected(ctx context.Context, modelID, applicationID, listingID int64, responseMessage string) error
}

// Service owns the application lifecycle: who may apply, and which status
// transitions are reachable by whom. All authorization happens here, not in
// the UI layer.
type Service struct {
	repo     Repository
	listings ListingGetter
	notifs   NotificationSender
}

func NewService(repo Repository, listings ListingGetter, notifs NotificationSender) *Service {
	return &Service{repo: repo, listings: listings, notifs: notifs}
}

// Apply creates a pending application for a published listing.
// At most one active (pending or accepted) application per (listing, model)
// pair is allowed; a model may re-apply after rejection or cancellation.
func (s *Service) Apply(ctx context.Context, modelID, listingID int64, message string) (*Application, error) {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.Status != listing.StatusPublished {
		return nil, ErrListingNotOpen
	}
	if l.ProfessionalID == modelID {
		return nil, ErrOwnListing
	}

	active, err := s.repo.HasActive(ctx, listingID, modelID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrAlreadyApplied
	}

	app := &Application{
		ListingID: listingID,
		ModelID:   modelID,
		Status:    StatusPending,
		Message:   message,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyApplicationReceived(ctx, l.ProfessionalID, app.ID, listingID, modelID)
	}
	return app, nil
}

// Transition moves an application to the target status. The transition table
// decides reachability; the caller's relation to the application decides
// authorization. Invalid transitions fail loudly instead of silently
// succeeding. No conversation is created on acceptance — that is a separate,
// caller-initiated step in the chat domain.
func (s *Service) Transition(ctx context.Context, actorID, applicationID int64, target Status, responseMessage string) (*Application, error) {
	if !target.Valid() {
		return nil, ErrInvalidTransition
	}

	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	l, err := s.listings.GetByID(ctx, app.ListingID)
	if err != nil {
		return nil, err
	}

	required, ok := RequiredActor(app.Status, target)
	if !ok {
		return nil, ErrInvalidTransition
	}

	var actor Actor
	switch actorID {
	case l.ProfessionalID:
		actor = ActorProfessional
	case app.ModelID:
		actor = ActorModel
	default:
		return nil, ErrForbidden
	}
	if actor != required {
		return nil, ErrForbidden
	}

	if responseMessage != "" {
		if actor != ActorProfessional {
			return nil, ErrResponseNotAllowed
		}
		app.ResponseMessage = responseMessage
	}

	app.Status = target
	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		switch target {
		case StatusAccepted:
			_ = s.notifs.NotifyApplicationAccepted(ctx, app.ModelID, app.ID, app.ListingID, app.ResponseMessage)
		case StatusRejected:
			_ = s.notifs.NotifyApplicationRejected(ctx, app.ModelID, app.ID, app.ListingID, app.ResponseMessage)
		}
	}
	return app, nil
}

// GetByID returns an application; only the model or the listing owner may
// see it.
func (s *Service) GetByID(ctx context.Context, actorID, id int64) (*Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.ModelID != actorID {
		l, err := s.listings.GetByID(ctx, app.ListingID)
		if err != nil {
			return nil, err
		}
		if l.ProfessionalID != actorID {
			return nil, ErrForbidden
		}
	}
	return app, nil
}

// ListByModel returns the caller's own applications.
func (s *Service) ListByModel(ctx context.Context, modelID int64) ([]*Application, error) {
	return s.repo.ListByModel(ctx, modelID)
}

// ListByListing returns all applications on a listing (owner only).
func (s *Service) ListByListing(ctx context.Context, actorID, listingID int64) ([]*Application, error) {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.ProfessionalID != actorID {
		return nil, ErrForbidden
	}
	return s.repo.ListByListing(ctx, listingID)
}
