package service

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"gorm.io/gorm"
)

// ChatScenarios 会话练习支持的场景
var ChatScenarios = []string{"restaurant", "shopping", "direction", "introduction", "daily"}

// ChatDifficulties 会话练习支持的难度
var ChatDifficulties = []string{"beginner", "intermediate", "advanced"}

// ChatMessagePair 一轮对话：用户消息与AI回复（含越南语译文）
type ChatMessagePair struct {
	UserMessage *model.ChatMessage `json:"userMessage"`
	AIMessage   *model.ChatMessage `json:"aiMessage"`
	Translation string             `json:"translation"`
}

type ChatService struct {
	chatRepo *repository.ChatRepository
	userRepo *repository.UserRepository
	gemini   *GeminiService
}

func NewChatService(chatRepo *repository.ChatRepository, userRepo *repository.UserRepository, gemini *GeminiService) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		userRepo: userRepo,
		gemini:   gemini,
	}
}

// CreateConversation 新建会话，标题由场景与难度拼成，如"식당에서 주문하기 (초급)"
func (s *ChatService) CreateConversation(userID uint, scenario, difficulty string) (*model.ChatConversation, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	conversation := &model.ChatConversation{
		UserID:     userID,
		Title:      scenarioTitle(scenario, difficulty),
		Scenario:   scenario,
		Difficulty: difficulty,
	}
	if err := s.chatRepo.CreateConversation(conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// SendMessage 持久化用户消息，生成并持久化AI韩语回复，附越南语译文
func (s *ChatService) SendMessage(conversationID uint, content string) (*ChatMessagePair, error) {
	conversation, err := s.chatRepo.FindConversationByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConversationNotFound
		}
		return nil, err
	}

	userMessage := &model.ChatMessage{
		ConversationID: conversationID,
		Content:        content,
		MessageType:    model.ChatMessageUser,
	}
	if err := s.chatRepo.CreateMessage(userMessage); err != nil {
		return nil, err
	}

	aiResponse := s.gemini.GenerateKoreanResponse(content, conversation.Scenario, conversation.Difficulty)
	translation := s.gemini.TranslateToVietnamese(aiResponse)

	aiMessage := &model.ChatMessage{
		ConversationID: conversationID,
		Content:        aiResponse,
		MessageType:    model.ChatMessageAI,
	}
	if err := s.chatRepo.CreateMessage(aiMessage); err != nil {
		return nil, err
	}

	return &ChatMessagePair{
		UserMessage: userMessage,
		AIMessage:   aiMessage,
		Translation: translation,
	}, nil
}

func (s *ChatService) GetConversationMessages(conversationID uint) ([]model.ChatMessage, error) {
	if _, err := s.chatRepo.FindConversationByID(conversationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConversationNotFound
		}
		return nil, err
	}
	return s.chatRepo.FindMessagesByConversation(conversationID)
}

// GetRecentMessages 取会话的最近limit条消息，按时间正序
func (s *ChatService) GetRecentMessages(conversationID uint, limit int) ([]model.ChatMessage, error) {
	if _, err := s.chatRepo.FindConversationByID(conversationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConversationNotFound
		}
		return nil, err
	}
	return s.chatRepo.FindRecentMessages(conversationID, limit)
}

func (s *ChatService) GetUserConversations(userID uint) ([]model.ChatConversation, error) {
	return s.chatRepo.FindConversationsByUser(userID)
}

func (s *ChatService) DeleteConversation(conversationID uint) error {
	if _, err := s.chatRepo.FindConversationByID(conversationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrConversationNotFound
		}
		return err
	}
	return s.chatRepo.DeleteConversation(conversationID)
}

func scenarioTitle(scenario, difficulty string) string {
	var title string
	switch scenario {
	case "restaurant":
		title = "식당에서 주문하기"
	case "shopping":
		title = "쇼핑하기"
	case "direction":
		title = "길 묻기"
	case "introduction":
		title = "인사 나누기"
	case "daily":
		title = "일상 대화"
	default:
		title = "한국어 대화"
	}

	var label string
	switch difficulty {
	case "beginner":
		label = "초급"
	case "intermediate":
		label = "중급"
	case "advanced":
		label = "고급"
	}

	return title + " (" + label + ")"
}
