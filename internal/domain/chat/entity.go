package chat

import (
	"fmt"
	"time"
)

// Conversation is a 1-on-1 thread between a model and a professional,
// optionally scoped to a listing and/or an application.
//
// Its ID is a deterministic composite key built from the sorted participant
// pair plus the optional scoping ids. Lookup-or-create therefore degenerates
// to an atomic "insert, and on duplicate key fetch" — two racing callers can
// never produce two threads for the same pair and scope.
type Conversation struct {
	ID string `gorm:"column:id;primaryKey" json:"id"`
	// Participants are stored sorted: A < B
	ParticipantA  int64  `gorm:"column:participant_a;index" json:"participant_a"`
	ParticipantB  int64  `gorm:"column:participant_b;index" json:"participant_b"`
	ListingID     *int64 `gorm:"column:listing_id" json:"listing_id,omitempty"`
	ApplicationID *int64 `gorm:"column:application_id" json:"application_id,omitempty"`

	// Denormalized last-message summary for list rendering. Refreshed in the
	// same transaction as the message insert, so it can lag only if a reader
	// races the commit — never diverge.
	LastMessageContent  string     `gorm:"column:last_message_content" json:"last_message_content,omitempty"`
	LastMessageSenderID int64      `gorm:"column:last_message_sender_id" json:"last_message_sender_id,omitempty"`
	LastMessageAt       *time.Time `gorm:"column:last_message_at" json:"last_message_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Conversation) TableName() string { return "conversations" }

// Other returns the counterparty of the given participant.
func (c *Conversation) Other(userID int64) int64 {
	if userID == c.ParticipantA {
		return c.ParticipantB
	}
	return c.ParticipantA
}

// HasParticipant reports whether the user belongs to the thread.
func (c *Conversation) HasParticipant(userID int64) bool {
	return userID == c.ParticipantA || userID == c.ParticipantB
}

// ConversationKey builds the deterministic conversation id for a participant
// pair and optional scope. Participant order does not matter.
func ConversationKey(userA, userB int64, listingID, applicationID *int64) string {
	lo, hi := userA, userB
	if lo > hi {
		lo, hi = hi, lo
	}
	key := fmt.Sprintf("c_%d_%d", lo, hi)
	if listingID != nil {
		key += fmt.Sprintf("_l%d", *listingID)
	}
	if applicationID != nil {
		key += fmt.Sprintf("_a%d", *applicationID)
	}
	return key
}

// Message is one unit of conversation content. Never deleted; the only
// mutation is the read flag flipping false -> true.
type Message struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	ConversationID string    `gorm:"column:conversation_id;index" json:"conversation_id"`
	SenderID       int64     `gorm:"column:sender_id" json:"sender_id"`
	ReceiverID     int64     `gorm:"column:receiver_id;index" json:"receiver_id"`
	Content        string    `gorm:"column:content;type:text" json:"content"`
	IsRead         bool      `gorm:"column:is_read" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Message) TableName() string { return "messages" }

// ConversationWithUnread is used in list responses. The unread count is
// always derived from messages, never stored.
type ConversationWithUnread struct {
	*Conversation
	UnreadCount int `json:"unread_count"`
}
