package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"modelo/internal/domain/application"
	"modelo/internal/domain/auth"
	"modelo/internal/domain/listing"
)

const MaxContentLength = 2000

// UserGetter resolves participant accounts.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*auth.User, error)
}

// ApplicationGetter checks the accepted application that unlocks a thread.
type ApplicationGetter interface {
	GetByID(ctx context.Context, id int64) (*application.Application, error)
}

// ListingGetter resolves listing ownership for listing-scoped threads.
type ListingGetter interface {
	GetByID(ctx context.Context, id int64) (*listing.Listing, error)
}

// NotificationSender pushes a notification to the message receiver.
type NotificationSender interface {
	NotifyNewMessage(ctx context.Context, receiverID int64, conversationID string, senderID int64, preview string) error
}

// Service handles conversation and message business logic
type Service struct {
	repo         Repository
	users        UserGetter
	applications ApplicationGetter
	listings     ListingGetter
	notifs       NotificationSender
}

func NewService(repo Repository, users UserGetter, applications ApplicationGetter, listings ListingGetter, notifs NotificationSender) *Service {
	return &Service{
		repo:         repo,
		users:        users,
		applications: applications,
		listings:     listings,
		notifs:       notifs,
	}
}

// GetOrCreate returns the conversation for a participant pair and optional
// scope, creating it when absent. The deterministic key makes this safe
// under concurrent calls: the loser of the insert race fetches the winner's
// row. Two sequential calls always return the same conversation id.
func (s *Service) GetOrCreate(ctx context.Context, requesterID, otherID int64, listingID, applicationID *int64) (*Conversation, error) {
	if requesterID == otherID {
		return nil, ErrCannotChatSelf
	}
	if _, err := s.users.GetByID(ctx, otherID); err != nil {
		return nil, err
	}

	if err := s.authorizeScope(ctx, requesterID, otherID, listingID, applicationID); err != nil {
		return nil, err
	}

	id := ConversationKey(requesterID, otherID, listingID, applicationID)
	if conv, err := s.repo.GetByID(ctx, id); err == nil {
		return conv, nil
	} else if err != ErrConversationNotFound {
		return nil, err
	}

	lo, hi := requesterID, otherID
	if lo > hi {
		lo, hi = hi, lo
	}
	conv := &Conversation{
		ID:            id,
		ParticipantA:  lo,
		ParticipantB:  hi,
		ListingID:     listingID,
		ApplicationID: applicationID,
	}
	err := s.repo.Create(ctx, conv)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race — the thread exists now
		return s.repo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// authorizeScope checks that a scoped thread is actually unlocked:
// an application-scoped thread needs that application accepted and both
// callers on it; a listing-scoped thread needs one side to own the listing.
func (s *Service) authorizeScope(ctx context.Context, requesterID, otherID int64, listingID, applicationID *int64) error {
	if applicationID != nil {
		app, err := s.applications.GetByID(ctx, *applicationID)
		if err != nil {
			return err
		}
		if app.Status != application.StatusAccepted && app.Status != application.StatusCompleted {
			return ErrNotUnlocked
		}
		if listingID != nil && *listingID != app.ListingID {
			return ErrScopeMismatch
		}
		l, err := s.listings.GetByID(ctx, app.ListingID)
		if err != nil {
			return err
		}
		pair := map[int64]bool{app.ModelID: true, l.ProfessionalID: true}
		if !pair[requesterID] || !pair[otherID] {
			return ErrNotParticipant
		}
		return nil
	}
	if listingID != nil {
		l, err := s.listings.GetByID(ctx, *listingID)
		if err != nil {
			return err
		}
		if l.ProfessionalID != requesterID && l.ProfessionalID != otherID {
			return ErrNotParticipant
		}
	}
	return nil
}

// Send appends a message. The receiver is derived from the thread; the
// message insert and the summary refresh commit together.
func (s *Service) Send(ctx context.Context, conversationID string, senderID int64, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	conv, err := s.repo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(senderID) {
		return nil, ErrNotParticipant
	}

	msg := &Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     conv.Other(senderID),
		Content:        content,
		IsRead:         false,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyNewMessage(ctx, msg.ReceiverID, conversationID, senderID, preview(content, 80))
	}
	return msg, nil
}

// preview truncates content to at most max runes for notification bodies.
func preview(content string, max int) string {
	r := []rune(content)
	if len(r) <= max {
		return content
	}
	return string(r[:max])
}

// GetMessages returns paginated messages, newest first.
func (s *Service) GetMessages(ctx context.Context, conversationID string, userID int64, limit, offset int) ([]*Message, error) {
	conv, err := s.repo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.GetMessages(ctx, conversationID, limit, offset)
}

// MarkAllRead flips every unread message addressed to the user. Idempotent.
func (s *Service) MarkAllRead(ctx context.Context, conversationID string, userID int64) (int64, error) {
	conv, err := s.repo.GetByID(ctx, conversationID)
	if err != nil {
		return 0, err
	}
	if !conv.HasParticipant(userID) {
		return 0, ErrNotParticipant
	}
	return s.repo.MarkAllRead(ctx, conversationID, userID)
}

// ListConversations returns the user's threads with derived unread counts,
// most recently touched first.
func (s *Service) ListConversations(ctx context.Context, userID int64) ([]*ConversationWithUnread, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UnreadTotal returns the user's unread message count across all threads.
func (s *Service) UnreadTotal(ctx context.Context, userID int64) (int, error) {
	return s.repo.CountTotalUnread(ctx, userID)
}

// GetConversation returns one thread (participant only).
func (s *Service) GetConversation(ctx context.Context, conversationID string, userID int64) (*Conversation, error) {
	conv, err := s.repo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}
