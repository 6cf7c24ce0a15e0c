package chat

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"modelo/internal/domain/application"
	"modelo/internal/domain/auth"
	"modelo/internal/domain/listing"
)

// Mock repositories
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, conv *Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Conversation), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int64) ([]*ConversationWithUnread, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ConversationWithUnread), args.Error(1)
}

func (m *MockRepository) CreateMessage(ctx context.Context, msg *Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockRepository) GetMessages(ctx context.Context, conversationID string, limit, offset int) ([]*Message, error) {
	args := m.Called(ctx, conversationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Message), args.Error(1)
}

func (m *MockRepository) MarkAllRead(ctx context.Context, conversationID string, userID int64) (int64, error) {
	args := m.Called(ctx, conversationID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountUnread(ctx context.Context, conversationID string, userID int64) (int, error) {
	args := m.Called(ctx, conversationID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CountTotalUnread(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockUserGetter struct {
	mock.Mock
}

func (m *MockUserGetter) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

type MockApplicationGetter struct {
	mock.Mock
}

func (m *MockApplicationGetter) GetByID(ctx context.Context, id int64) (*application.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
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

func (m *MockNotificationSender) NotifyNewMessage(ctx context.Context, receiverID int64, conversationID string, senderID int64, preview string) error {
	args := m.Called(ctx, receiverID, conversationID, senderID, preview)
	return args.Error(0)
}

func ptr(v int64) *int64 { return &v }

func TestConversationKey_OrderIndependent(t *testing.T) {
	assert.Equal(t, ConversationKey(2, 7, nil, nil), ConversationKey(7, 2, nil, nil))
	assert.Equal(t, "c_2_7", ConversationKey(7, 2, nil, nil))
	assert.Equal(t, "c_2_7_l10", ConversationKey(7, 2, ptr(10), nil))
	assert.Equal(t, "c_2_7_l10_a5", ConversationKey(2, 7, ptr(10), ptr(5)))

	// different scopes yield different threads
	assert.NotEqual(t, ConversationKey(2, 7, nil, nil), ConversationKey(2, 7, ptr(10), nil))
	assert.NotEqual(t, ConversationKey(2, 7, ptr(10), nil), ConversationKey(2, 7, ptr(11), nil))
}

func TestService_GetOrCreate_CreatesOnce(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserGetter)

	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&auth.User{ID: 7}, nil)
	mockRepo.On("GetByID", mock.Anything, "c_2_7").Return(nil, ErrConversationNotFound)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockUsers, nil, nil, nil)

	conv, err := service.GetOrCreate(context.Background(), 2, 7, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "c_2_7", conv.ID)
	assert.Equal(t, int64(2), conv.ParticipantA)
	assert.Equal(t, int64(7), conv.ParticipantB)
}

func TestService_GetOrCreate_ReturnsExisting(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserGetter)

	existing := &Conversation{ID: "c_2_7", ParticipantA: 2, ParticipantB: 7}
	mockUsers.On("GetByID", mock.Anything, int64(2)).Return(&auth.User{ID: 2}, nil)
	mockRepo.On("GetByID", mock.Anything, "c_2_7").Return(existing, nil)

	service := NewService(mockRepo, mockUsers, nil, nil, nil)

	// the other participant asks, in reverse order
	conv, err := service.GetOrCreate(context.Background(), 7, 2, nil, nil)

	assert.NoError(t, err)
	assert.Same(t, existing, conv)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_GetOrCreate_LosingRaceFetchesWinner(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserGetter)

	winner := &Conversation{ID: "c_2_7", ParticipantA: 2, ParticipantB: 7}
	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&auth.User{ID: 7}, nil)
	mockRepo.On("GetByID", mock.Anything, "c_2_7").Return(nil, ErrConversationNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
	mockRepo.On("GetByID", mock.Anything, "c_2_7").Return(winner, nil).Once()

	service := NewService(mockRepo, mockUsers, nil, nil, nil)

	conv, err := service.GetOrCreate(context.Background(), 2, 7, nil, nil)

	assert.NoError(t, err)
	assert.Same(t, winner, conv)
}

func TestService_GetOrCreate_SelfChat(t *testing.T) {
	service := NewService(new(MockRepository), new(MockUserGetter), nil, nil, nil)

	_, err := service.GetOrCreate(context.Background(), 2, 2, nil, nil)
	assert.ErrorIs(t, err, ErrCannotChatSelf)
}

func TestService_GetOrCreate_ApplicationScopeRequiresAccepted(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserGetter)
	mockApps := new(MockApplicationGetter)
	mockListings := new(MockListingGetter)

	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&auth.User{ID: 7}, nil)
	mockApps.On("GetByID", mock.Anything, int64(5)).Return(&application.Application{
		ID: 5, ListingID: 10, ModelID: 2, Status: application.StatusPending,
	}, nil)

	service := NewService(mockRepo, mockUsers, mockApps, mockListings, nil)

	_, err := service.GetOrCreate(context.Background(), 2, 7, nil, ptr(5))
	assert.ErrorIs(t, err, ErrNotUnlocked)
}

func TestService_GetOrCreate_ApplicationScopeAccepted(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserGetter)
	mockApps := new(MockApplicationGetter)
	mockListings := new(MockListingGetter)

	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&auth.User{ID: 7}, nil)
	mockApps.On("GetByID", mock.Anything, int64(5)).Return(&application.Application{
		ID: 5, ListingID: 10, ModelID: 2, Status: application.StatusAccepted,
	}, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(&listing.Listing{
		ID: 10, ProfessionalID: 7,
	}, nil)
	mockRepo.On("GetByID", mock.Anything, "c_2_7_a5").Return(nil, ErrConversationNotFound)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockUsers, mockApps, mockListings, nil)

	conv, err := service.GetOrCreate(context.Background(), 2, 7, nil, ptr(5))

	assert.NoError(t, err)
	assert.Equal(t, "c_2_7_a5", conv.ID)
}

func TestService_GetOrCreate_ApplicationScopeStranger(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserGetter)
	mockApps := new(MockApplicationGetter)
	mockListings := new(MockListingGetter)

	mockUsers.On("GetByID", mock.Anything, int64(42)).Return(&auth.User{ID: 42}, nil)
	mockApps.On("GetByID", mock.Anything, int64(5)).Return(&application.Application{
		ID: 5, ListingID: 10, ModelID: 2, Status: application.StatusAccepted,
	}, nil)
	mockListings.On("GetByID", mock.Anything, int64(10)).Return(&listing.Listing{
		ID: 10, ProfessionalID: 7,
	}, nil)

	service := NewService(mockRepo, mockUsers, mockApps, mockListings, nil)

	_, err := service.GetOrCreate(context.Background(), 2, 42, nil, ptr(5))
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestService_GetOrCreate_ApplicationScopeListingMismatch(t *testing.T) {
	mockRepo := new(MockRepository)
	mockUsers := new(MockUserGetter)
	mockApps := new(MockApplicationGetter)
	mockListings := new(MockListingGetter)

	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&auth.User{ID: 7}, nil)
	mockApps.On("GetByID", mock.Anything, int64(5)).Return(&application.Application{
		ID: 5, ListingID: 10, ModelID: 2, Status: application.StatusAccepted,
	}, nil)

	service := NewService(mockRepo, mockUsers, mockApps, mockListings, nil)

	// listing 99 is not the one application 5 belongs to
	_, err := service.GetOrCreate(context.Background(), 2, 7, ptr(99), ptr(5))
	assert.ErrorIs(t, err, ErrScopeMismatch)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Send_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockNotifs := new(MockNotificationSender)

	conv := &Conversation{ID: "c_2_7", ParticipantA: 2, ParticipantB: 7}
	mockRepo.On("GetByID", mock.Anything, "c_2_7").Return(conv, nil)
	mockRepo.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyNewMessage", mock.Anything, int64(7), "c_2_7", int64(2), "Hi").Return(nil)

	service := NewService(mockRepo, nil, nil, nil, mockNotifs)

	msg, err := service.Send(context.Background(), "c_2_7", 2, "  Hi  ")

	assert.NoError(t, err)
	assert.Equal(t, "Hi", msg.Content)
	assert.Equal(t, int64(7), msg.ReceiverID)
	assert.False(t, msg.IsRead)
	mockNotifs.AssertExpectations(t)
}

func TestService_Send_EmptyContent(t *testing.T) {
	service := NewService(new(MockRepository), nil, nil, nil, nil)

	_, err := service.Send(context.Background(), "c_2_7", 2, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestService_Send_ContentTooLong(t *testing.T) {
	service := NewService(new(MockRepository), nil, nil, nil, nil)

	_, err := service.Send(context.Background(), "c_2_7", 2, strings.Repeat("x", MaxContentLength+1))
	assert.ErrorIs(t, err, ErrContentTooLong)
}

func TestService_Send_PreviewKeepsRunesWhole(t *testing.T) {
	mockRepo := new(MockRepository)
	mockNotifs := new(MockNotificationSender)

	conv := &Conversation{ID: "c_2_7", ParticipantA: 2, ParticipantB: 7}
	mockRepo.On("GetByID", mock.Anything, "c_2_7").Return(conv, nil)
	mockRepo.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)

	content := strings.Repeat("é", 100)
	mockNotifs.On("NotifyNewMessage", mock.Anything, int64(7), "c_2_7", int64(2),
		mock.MatchedBy(func(p string) bool {
			return p == strings.Repeat("é", 80) && utf8.ValidString(p)
		})).Return(nil)

	service := NewService(mockRepo, nil, nil, nil, mockNotifs)

	_, err := service.Send(context.Background(), "c_2_7", 2, content)

	assert.NoError(t, err)
	mockNotifs.AssertExpectations(t)
}

func TestService_Send_NotParticipant(t *testing.T) {
	mockRepo := new(MockRepository)

	conv := &Conversation{ID: "c_2_7", ParticipantA: 2, ParticipantB: 7}
	mockRepo.On("GetByID", mock.Anything, "c_2_7").Return(conv, nil)

	service := NewService(mockRepo, nil, nil, nil, nil)

	_, err := service.Send(context.Background(), "c_2_7", 42, "hello")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestService_MarkAllRead_Idempotent(t *testing.T) {
	mockRepo := new(MockRepository)

	conv := &Conversation{ID: "c_2_7", ParticipantA: 2, ParticipantB: 7}
	mockRepo.On("GetByID", mock.Anything, "c_2_7").Return(conv, nil)
	mockRepo.On("MarkAllRead", mock.Anything, "c_2_7", int64(7)).Return(int64(3), nil).Once()
	mockRepo.On("MarkAllRead", mock.Anything, "c_2_7", int64(7)).Return(int64(0), nil).Once()

	service := NewService(mockRepo, nil, nil, nil, nil)

	n, err := service.MarkAllRead(context.Background(), "c_2_7", 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = service.MarkAllRead(context.Background(), "c_2_7", 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestConversation_Other(t *testing.T) {
	conv := &Conversation{ParticipantA: 2, ParticipantB: 7}
	assert.Equal(t, int64(7), conv.Other(2))
	assert.Equal(t, int64(2), conv.Other(7))
}
