package chat

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("you are not a participant of this conversation")
	ErrCannotChatSelf       = errors.New("cannot start a conversation with yourself")
	ErrNotUnlocked          = errors.New("conversation requires an accepted application")
	ErrScopeMismatch        = errors.New("listing does not match the application")
	ErrEmptyContent         = errors.New("message content must not be empty")
	ErrContentTooLong       = errors.New("message content exceeds the allowed length")
)
