package services

import (
	"context"
	"sort"
	"time"

	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

// MessageService fans a message out into two embedded logs: the
// receiver's and the sender's each get their own copy of the record.
// The two $push writes are independent, same caveat as the follow
// arrays.
type MessageService struct {
	users repository.UserStore
	now   func() time.Time
}

func NewMessageService(users repository.UserStore) *MessageService {
	return &MessageService{users: users, now: time.Now}
}

// Send builds one message record with a server-side timestamp and the
// sender's current username, then appends a copy to both logs.
// Returns the receiver's and the sender's updated logs.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, text string) (receiverLog, senderLog []models.Message, err error) {
	if _, err := s.users.FindByID(ctx, receiverID); err != nil {
		return nil, nil, err
	}
	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		return nil, nil, err
	}

	msg := models.Message{
		SenderID:       senderID,
		SenderUsername: sender.Username,
		Message:        text,
		Timestamp:      s.now().UTC(),
	}

	receiver, err := s.users.AppendMessage(ctx, receiverID, msg)
	if err != nil {
		return nil, nil, err
	}
	sender, err = s.users.AppendMessage(ctx, senderID, msg)
	if err != nil {
		return nil, nil, err
	}

	return receiver.Messages, sender.Messages, nil
}

// List returns the user's full log newest-first. The log is stored in
// insertion order and re-sorted on every call.
func (s *MessageService) List(ctx context.Context, userID string) ([]models.Message, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, len(user.Messages))
	copy(messages, user.Messages)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})
	return messages, nil
}
