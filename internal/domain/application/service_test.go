package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"modelo/internal/domain/listing"
)

// Mock repositories
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, a *Application) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Application), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, a *Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) ListByModel(ctx context.Context, modelID int64) ([]*Application, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Application), args.Error(1)
}

func (m *MockRepository) ListByListing(ctx context.Context, listingID int64) ([]*Application, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Application), args.Error(1)
}

func (m *MockRepository) HasActive(ctx context.Context, listingID, modelID int64) (bool, error) {
	args := m.Called(ctx, listingID, modelID)
	return args.Bool(0), args.Error(1)
}

type MockListingGetter struct {
	mock.Mock
}

func (m *MockListingGetter) GetByID(ctx context.Context, id int64) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyApplicationReceived(ctx context.Context, professionalID, applicationID, listingID, modelID int64) error {
	args := m.Called(ctx, professionalID, applicationID, listingID, modelID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyApplicationAccepted(ctx context.Context, modelID, applicationID, listingID int64, responseMessage string) error {
	args := m.Called(ctx, modelID, applicationID, listingID, responseMessage)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyApplicationRejected(ctx context.Context, modelID, applicationID, listingID int64, responseMessage string) error {
	args := m.Called(ctx, modelID, applicationID, listingID, responseMessage)
	return args.Error(0)
}

func publishedListing(id, professionalID int64) *listing.Listing {
	return &listing.Listing{
		ID:             id,
		ProfessionalID: professionalID,
		Title:          "Editorial shoot",
		Status:         listing.StatusPublished,
		ScheduledAt:    time.Now().Add(48 * time.Hour),
	}
}

func TestService_Apply_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)
	mockNotifs := new(MockNotificationSender)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)
	mockRepo.On("HasActive", mock.Anything, int64(10), int64(2)).Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyApplicationReceived", mock.Anything, int64(1), int64(999), int64(10), int64(2)).Return(nil)

	service := NewService(mockRepo, mockListings, mockNotifs)

	app, err := service.Apply(context.Background(), 2, 10, "I would love to do this")

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, app.Status)
	assert.Equal(t, int64(10), app.ListingID)
	assert.Equal(t, int64(2), app.ModelID)
	mockNotifs.AssertExpectations(t)
}

func TestService_Apply_DuplicateActive(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)
	mockRepo.On("HasActive", mock.Anything, int64(10), int64(2)).Return(true, nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.Apply(context.Background(), 2, 10, "")
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestService_Apply_ListingNotOpen(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	l := publishedListing(10, 1)
	l.Status = listing.StatusCompleted
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(l, nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.Apply(context.Background(), 2, 10, "")
	assert.ErrorIs(t, err, ErrListingNotOpen)
}

func TestService_Apply_OwnListing(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.Apply(context.Background(), 1, 10, "")
	assert.ErrorIs(t, err, ErrOwnListing)
}

func TestService_Transition_Accept(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)
	mockNotifs := new(MockNotificationSender)

	app := &Application{ID: 5, ListingID: 10, ModelID: 2, Status: StatusPending}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyApplicationAccepted", mock.Anything, int64(2), int64(5), int64(10), "See you Saturday").Return(nil)

	service := NewService(mockRepo, mockListings, mockNotifs)

	got, err := service.Transition(context.Background(), 1, 5, StatusAccepted, "See you Saturday")

	assert.NoError(t, err)
	assert.Equal(t, StatusAccepted, got.Status)
	assert.Equal(t, "See you Saturday", got.ResponseMessage)
	mockNotifs.AssertExpectations(t)
}

func TestService_Transition_RejectedCannotBeAccepted(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	app := &Application{ID: 5, ListingID: 10, ModelID: 2, Status: StatusRejected}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.Transition(context.Background(), 1, 5, StatusAccepted, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Transition_ModelCannotAcceptOwnApplication(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	app := &Application{ID: 5, ListingID: 10, ModelID: 2, Status: StatusPending}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.Transition(context.Background(), 2, 5, StatusAccepted, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Transition_ModelCancels(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	app := &Application{ID: 5, ListingID: 10, ModelID: 2, Status: StatusPending}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockListings, nil)

	got, err := service.Transition(context.Background(), 2, 5, StatusCancelled, "")

	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
}

func TestService_Transition_StrangerForbidden(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	app := &Application{ID: 5, ListingID: 10, ModelID: 2, Status: StatusPending}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.Transition(context.Background(), 42, 5, StatusAccepted, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Transition_ResponseMessageOnlyByProfessional(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	app := &Application{ID: 5, ListingID: 10, ModelID: 2, Status: StatusPending}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.Transition(context.Background(), 2, 5, StatusCancelled, "never mind")
	assert.ErrorIs(t, err, ErrResponseNotAllowed)
}

func TestService_Transition_AcceptedToCompleted(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	app := &Application{ID: 5, ListingID: 10, ModelID: 2, Status: StatusAccepted}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockListings, nil)

	got, err := service.Transition(context.Background(), 1, 5, StatusCompleted, "")

	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
}

func TestService_GetByID_ParticipantsOnly(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	app := &Application{ID: 5, ListingID: 10, ModelID: 2, Status: StatusPending}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.GetByID(context.Background(), 2, 5)
	assert.NoError(t, err)

	_, err = service.GetByID(context.Background(), 1, 5)
	assert.NoError(t, err)

	_, err = service.GetByID(context.Background(), 42, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ListByListing_OwnerOnly(t *testing.T) {
	mockRepo := new(MockRepository)
	mockListings := new(MockListingGetter)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(10, 1), nil)

	service := NewService(mockRepo, mockListings, nil)

	_, err := service.ListByListing(context.Background(), 2, 10)
	assert.ErrorIs(t, err, ErrForbidden)
}
