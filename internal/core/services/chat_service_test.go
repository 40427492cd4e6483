package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/mnjscf/team_ops_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) LoadAll(ctx context.Context) ([]domain.ChatMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) Upsert(ctx context.Context, message domain.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func TestChatService_SendStampsIdentity(t *testing.T) {
	ctx := context.Background()
	chatRepo := new(MockChatRepository)
	svc := services.NewChatService(chatRepo)

	sender := domain.User{UserID: "ayushi", Name: "Ayushi", Role: domain.RoleMember}

	var stored domain.ChatMessage
	chatRepo.On("Upsert", ctx, mock.AnythingOfType("domain.ChatMessage")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(domain.ChatMessage)
		}).
		Return(nil).Once()

	before := time.Now().UTC()
	message, err := svc.Send(ctx, sender, "Shipping the blog draft today")
	require.NoError(t, err)

	// The service, not the caller, assigns ID, identity snapshot and stamp.
	_, parseErr := uuid.Parse(message.MessageID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "ayushi", message.UserID)
	assert.Equal(t, "Ayushi", message.UserName)
	assert.Equal(t, "Shipping the blog draft today", message.Text)
	assert.False(t, message.Timestamp.Before(before))
	assert.Equal(t, time.UTC, message.Timestamp.Location())

	assert.Equal(t, *message, stored)
	chatRepo.AssertExpectations(t)
}

func TestChatService_ListIsUnfilteredForMembers(t *testing.T) {
	ctx := context.Background()
	chatRepo := new(MockChatRepository)
	svc := services.NewChatService(chatRepo)

	history := []domain.ChatMessage{
		{MessageID: "m1", UserID: "me", UserName: "Admin", Text: "Standup in 5"},
		{MessageID: "m2", UserID: "vishakha", UserName: "Vishakha", Text: "On my way"},
	}
	chatRepo.On("LoadAll", ctx).Return(history, nil).Once()

	member := domain.User{UserID: "dishant", Role: domain.RoleMember}
	messages, err := svc.List(ctx, member)
	require.NoError(t, err)
	assert.Equal(t, history, messages)
	chatRepo.AssertExpectations(t)
}

func TestChatService_ListPropagatesRepositoryError(t *testing.T) {
	ctx := context.Background()
	chatRepo := new(MockChatRepository)
	svc := services.NewChatService(chatRepo)

	chatRepo.On("LoadAll", ctx).Return(nil, assert.AnError).Once()

	_, err := svc.List(ctx, domain.User{UserID: "me", Role: domain.RoleAdmin})
	assert.Error(t, err)
	chatRepo.AssertExpectations(t)
}
