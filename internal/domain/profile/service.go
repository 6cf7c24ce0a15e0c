package profile

import (
	"context"
	"time"

	"modelo/internal/domain/auth"
	"modelo/internal/pkg/cache"
)

// PublicProfile is the card shown when browsing users: the shared account
// fields plus whichever role profile the user carries.
type PublicProfile struct {
	User         *auth.User           `json:"user"`
	Model        *ModelProfile        `json:"model_profile,omitempty"`
	Professional *ProfessionalProfile `json:"professional_profile,omitempty"`
}

// Service handles profile reads and writes. User lookups for rendering go
// through a read-through cache; every mutation invalidates the cached entry.
type Service struct {
	repo  Repository
	users UserGetter
	cache *cache.ReadThrough[int64, *auth.User]
}

// UserGetter is the slice of the auth repository this service needs.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*auth.User, error)
}

func NewService(repo Repository, users UserGetter, cacheSize int, cacheTTL time.Duration) *Service {
	s := &Service{repo: repo, users: users}
	s.cache = cache.NewReadThrough(cacheSize, cacheTTL, func(ctx context.Context, id int64) (*auth.User, error) {
		return users.GetByID(ctx, id)
	})
	return s
}

// GetUser returns a user through the cache.
func (s *Service) GetUser(ctx context.Context, id int64) (*auth.User, error) {
	return s.cache.Get(ctx, id)
}

// InvalidateUser drops a user from the cache. Exposed for other services
// that mutate user rows.
func (s *Service) InvalidateUser(id int64) {
	s.cache.Invalidate(id)
}

// UpsertModelProfile creates or replaces the model profile of a user.
// The user must carry the model role.
func (s *Service) UpsertModelProfile(ctx context.Context, userID int64, p *ModelProfile) (*ModelProfile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != auth.RoleModel {
		return nil, ErrWrongRole
	}

	p.UserID = userID
	if err := s.repo.UpsertModelProfile(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(userID)
	return s.repo.GetModelProfile(ctx, userID)
}

// UpsertProfessionalProfile creates or replaces the professional profile.
func (s *Service) UpsertProfessionalProfile(ctx context.Context, userID int64, p *ProfessionalProfile) (*ProfessionalProfile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != auth.RoleProfessional {
		return nil, ErrWrongRole
	}

	p.UserID = userID
	if err := s.repo.UpsertProfessionalProfile(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(userID)
	return s.repo.GetProfessionalProfile(ctx, userID)
}

// GetPublicProfile assembles the public card for any user.
func (s *Service) GetPublicProfile(ctx context.Context, userID int64) (*PublicProfile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &PublicProfile{User: user}
	switch user.Role {
	case auth.RoleModel:
		p, err := s.repo.GetModelProfile(ctx, userID)
		if err != nil && err != ErrProfileNotFound {
			return nil, err
		}
		out.Model = p
	case auth.RoleProfessional:
		p, err := s.repo.GetProfessionalProfile(ctx, userID)
		if err != nil && err != ErrProfileNotFound {
			return nil, err
		}
		out.Professional = p
	}
	return out, nil
}
