package chat

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles all DB operations for the chat domain
type Repository interface {
	// Conversations
	Create(ctx context.Context, conv *Conversation) error
	GetByID(ctx context.Context, id string) (*Conversation, error)
	ListByUser(ctx context.Context, userID int64) ([]*ConversationWithUnread, error)

	// Messages
	CreateMessage(ctx context.Context, msg *Message) error
	GetMessages(ctx context.Context, conversationID string, limit, offset int) ([]*Message, error)
	MarkAllRead(ctx context.Context, conversationID string, userID int64) (int64, error)
	CountUnread(ctx context.Context, conversationID string, userID int64) (int, error)
	CountTotalUnread(ctx context.Context, userID int64) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a conversation under its deterministic key. A duplicate-key
// error is passed through untranslated so the service can fall back to a
// fetch.
func (r *repository) Create(ctx context.Context, conv *Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Conversation, error) {
	var conv Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]*ConversationWithUnread, error) {
	var convs []*Conversation
	err := r.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}

	result := make([]*ConversationWithUnread, 0, len(convs))
	for _, conv := range convs {
		unread, _ := r.CountUnread(ctx, conv.ID, userID)
		result = append(result, &ConversationWithUnread{
			Conversation: conv,
			UnreadCount:  unread,
		})
	}
	return result, nil
}

// CreateMessage inserts the message and refreshes the parent conversation's
// last-message summary in one transaction.
func (r *repository) CreateMessage(ctx context.Context, msg *Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&Conversation{}).
			Where("id = ?", msg.ConversationID).
			Updates(map[string]interface{}{
				"last_message_content":   msg.Content,
				"last_message_sender_id": msg.SenderID,
				"last_message_at":        msg.CreatedAt,
				"updated_at":             time.Now(),
			}).Error
	})
}

func (r *repository) GetMessages(ctx context.Context, conversationID string, limit, offset int) ([]*Message, error) {
	var msgs []*Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&msgs).Error
	return msgs, err
}

// MarkAllRead flips every unread message addressed to the user in one
// statement. Idempotent: re-running converges to the same state.
func (r *repository) MarkAllRead(ctx context.Context, conversationID string, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conversationID, userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *repository) CountUnread(ctx context.Context, conversationID string, userID int64) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conversationID, userID, false).
		Count(&count).Error
	return int(count), err
}

func (r *repository) CountTotalUnread(ctx context.Context, userID int64) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return int(count), err
}
