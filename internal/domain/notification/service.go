package notification

import (
	"context"
	"fmt"
	"time"
)

// Service creates and serves in-app notifications. It satisfies the sender
// interfaces declared by the application and chat domains.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ---- Senders (consumed by other domains) ----

// NotifyApplicationReceived tells a professional about a new bid.
func (s *Service) NotifyApplicationReceived(ctx context.Context, professionalID, applicationID, listingID, modelID int64) error {
	n := &Notification{
		UserID: professionalID,
		Type:   TypeApplicationReceived,
		Title:  "New application",
		Body:   "A model applied to your listing.",
	}
	if err := n.SetData(map[string]any{
		"application_id": applicationID,
		"listing_id":     listingID,
		"model_id":       modelID,
	}); err != nil {
		return err
	}
	return s.repo.Create(ctx, n)
}

// NotifyApplicationAccepted tells a model their bid was accepted.
func (s *Service) NotifyApplicationAccepted(ctx context.Context, modelID, applicationID, listingID int64, responseMessage string) error {
	n := &Notification{
		UserID: modelID,
		Type:   TypeApplicationAccepted,
		Title:  "Application accepted",
		Body:   responseMessage,
	}
	if n.Body == "" {
		n.Body = "Your application was accepted."
	}
	if err := n.SetData(map[string]any{
		"application_id": applicationID,
		"listing_id":     listingID,
	}); err != nil {
		return err
	}
	return s.repo.Create(ctx, n)
}

// NotifyApplicationRejected tells a model their bid was rejected.
func (s *Service) NotifyApplicationRejected(ctx context.Context, modelID, applicationID, listingID int64, responseMessage string) error {
	n := &Notification{
		UserID: modelID,
		Type:   TypeApplicationRejected,
		Title:  "Application rejected",
		Body:   responseMessage,
	}
	if n.Body == "" {
		n.Body = "Your application was not selected this time."
	}
	if err := n.SetData(map[string]any{
		"application_id": applicationID,
		"listing_id":     listingID,
	}); err != nil {
		return err
	}
	return s.repo.Create(ctx, n)
}

// NotifyNewMessage tells the receiver about a chat message they have not
// seen yet.
func (s *Service) NotifyNewMessage(ctx context.Context, receiverID int64, conversationID string, senderID int64, preview string) error {
	n := &Notification{
		UserID: receiverID,
		Type:   TypeNewMessage,
		Title:  "New message",
		Body:   preview,
	}
	if err := n.SetData(map[string]any{
		"conversation_id": conversationID,
		"sender_id":       senderID,
	}); err != nil {
		return err
	}
	return s.repo.Create(ctx, n)
}

// ---- Inbox ----

func (s *Service) List(ctx context.Context, userID int64, limit int) ([]*Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// CleanupRead removes read notifications older than the retention period
// and reports how many rows were dropped.
func (s *Service) CleanupRead(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	deleted, err := s.repo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup notifications: %w", err)
	}
	return deleted, nil
}
