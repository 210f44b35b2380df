package repository

import (
	"github.com/tctinsama/KtigerStudy/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) CreateConversation(conversation *model.ChatConversation) error {
	return r.DB.Create(conversation).Error
}

func (r *ChatRepository) FindConversationByID(id uint) (*model.ChatConversation, error) {
	var conversation model.ChatConversation
	err := r.DB.First(&conversation, id).Error
	return &conversation, err
}

func (r *ChatRepository) FindConversationsByUser(userID uint) ([]model.ChatConversation, error) {
	var conversations []model.ChatConversation
	err := r.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&conversations).Error
	return conversations, err
}

func (r *ChatRepository) UpdateConversation(conversation *model.ChatConversation) error {
	return r.DB.Save(conversation).Error
}

func (r *ChatRepository) DeleteConversation(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&model.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ChatConversation{}, id).Error
	})
}

func (r *ChatRepository) CreateMessage(message *model.ChatMessage) error {
	return r.DB.Create(message).Error
}

func (r *ChatRepository) FindMessagesByConversation(conversationID uint) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.DB.Where("conversation_id = ?", conversationID).Order("id ASC").Find(&messages).Error
	return messages, err
}

// FindRecentMessages 取最近limit条消息（按时间正序返回），用于拼装AI上下文
func (r *ChatRepository) FindRecentMessages(conversationID uint, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.DB.Where("conversation_id = ?", conversationID).
		Order("id DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	// 倒序查询后翻转回时间正序
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
