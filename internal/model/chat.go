package model

// 会话场景与难度取值见 service 层的 ChatScenarios / ChatDifficulties
type ChatConversation struct {
	BaseModel
	UserID     uint   `gorm:"index;not null" json:"userId"`
	Title      string `gorm:"size:200;not null" json:"title"`
	Scenario   string `gorm:"size:50;not null" json:"scenario"`   // restaurant, shopping, direction, introduction, daily
	Difficulty string `gorm:"size:50;not null" json:"difficulty"` // beginner, intermediate, advanced
}

func (ChatConversation) TableName() string {
	return "chat_conversations"
}

type ChatMessageType string

const (
	ChatMessageUser ChatMessageType = "user"
	ChatMessageAI   ChatMessageType = "ai"
)

type ChatMessage struct {
	BaseModel
	ConversationID uint            `gorm:"index;not null" json:"conversationId"`
	Content        string          `gorm:"type:text;not null" json:"content"`
	MessageType    ChatMessageType `gorm:"size:10;not null" json:"messageType"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
