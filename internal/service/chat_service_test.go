package service

import (
	"testing"

	"github.com/tctinsama/KtigerStudy/internal/config"
	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChatService(t *testing.T) (*ChatService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	gemini := NewGeminiService(config.GeminiConfig{Mock: true})
	svc := NewChatService(repository.NewChatRepository(db), repository.NewUserRepository(db), gemini)
	return svc, db
}

func TestCreateConversationTitle(t *testing.T) {
	svc, db := newChatService(t)
	user := seedUser(t, db, "Alice", "alice@test.com")

	tests := []struct {
		scenario   string
		difficulty string
		want       string
	}{
		{"restaurant", "beginner", "식당에서 주문하기 (초급)"},
		{"shopping", "intermediate", "쇼핑하기 (중급)"},
		{"direction", "advanced", "길 묻기 (고급)"},
		{"introduction", "beginner", "인사 나누기 (초급)"},
		{"daily", "beginner", "일상 대화 (초급)"},
	}
	for _, tt := range tests {
		conversation, err := svc.CreateConversation(user.ID, tt.scenario, tt.difficulty)
		require.NoError(t, err)
		assert.Equal(t, tt.want, conversation.Title)
		assert.Equal(t, tt.scenario, conversation.Scenario)
	}
}

func TestCreateConversationUnknownUser(t *testing.T) {
	svc, _ := newChatService(t)

	_, err := svc.CreateConversation(999, "restaurant", "beginner")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestSendMessagePersistsBothSides(t *testing.T) {
	svc, db := newChatService(t)
	user := seedUser(t, db, "Alice", "alice@test.com")

	conversation, err := svc.CreateConversation(user.ID, "restaurant", "beginner")
	require.NoError(t, err)

	pair, err := svc.SendMessage(conversation.ID, "메뉴 추천해 주세요")
	require.NoError(t, err)

	assert.Equal(t, "메뉴 추천해 주세요", pair.UserMessage.Content)
	assert.Equal(t, model.ChatMessageUser, pair.UserMessage.MessageType)
	assert.NotEmpty(t, pair.AIMessage.Content)
	assert.Equal(t, model.ChatMessageAI, pair.AIMessage.MessageType)

	messages, err := svc.GetConversationMessages(conversation.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, pair.UserMessage.Content, messages[0].Content)
	assert.Equal(t, pair.AIMessage.Content, messages[1].Content)
}

func TestSendMessageUnknownConversation(t *testing.T) {
	svc, _ := newChatService(t)

	_, err := svc.SendMessage(999, "안녕하세요")
	assert.ErrorIs(t, err, util.ErrConversationNotFound)
}

func TestDeleteConversationRemovesMessages(t *testing.T) {
	svc, db := newChatService(t)
	user := seedUser(t, db, "Alice", "alice@test.com")

	conversation, err := svc.CreateConversation(user.ID, "daily", "beginner")
	require.NoError(t, err)
	_, err = svc.SendMessage(conversation.ID, "안녕")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteConversation(conversation.ID))

	_, err = svc.GetConversationMessages(conversation.ID)
	assert.ErrorIs(t, err, util.ErrConversationNotFound)

	var count int64
	require.NoError(t, db.Model(&model.ChatMessage{}).Where("conversation_id = ?", conversation.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetUserConversations(t *testing.T) {
	svc, db := newChatService(t)
	alice := seedUser(t, db, "Alice", "alice@test.com")
	bob := seedUser(t, db, "Bob", "bob@test.com")

	_, err := svc.CreateConversation(alice.ID, "restaurant", "beginner")
	require.NoError(t, err)
	_, err = svc.CreateConversation(alice.ID, "daily", "advanced")
	require.NoError(t, err)
	_, err = svc.CreateConversation(bob.ID, "shopping", "beginner")
	require.NoError(t, err)

	conversations, err := svc.GetUserConversations(alice.ID)
	require.NoError(t, err)
	assert.Len(t, conversations, 2)
}
