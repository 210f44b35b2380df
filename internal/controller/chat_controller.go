package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

type CreateConversationRequest struct {
	UserID     uint   `json:"userId" binding:"required"`
	Scenario   string `json:"scenario" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
}

// CreateConversation godoc
// @Summary 创建会话练习
// @Description 按场景与难度开启一段韩语对话练习
// @Tags 会话练习
// @Accept  json
// @Produce  json
// @Param   body body CreateConversationRequest true "会话参数"
// @Success 201 {object} util.Response{data=model.ChatConversation}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/chat/conversations [post]
func (c *ChatController) CreateConversation(ctx *gin.Context) {
	var req CreateConversationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	conversation, err := c.ChatService.CreateConversation(req.UserID, req.Scenario, req.Difficulty)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, conversation)
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessage godoc
// @Summary 发送消息
// @Description 保存用户消息并返回AI韩语回复与越南语译文
// @Tags 会话练习
// @Accept  json
// @Produce  json
// @Param   id path int true "会话ID"
// @Param   body body SendMessageRequest true "消息内容"
// @Success 200 {object} util.Response{data=service.ChatMessagePair}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/chat/conversations/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid conversation id")
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pair, err := c.ChatService.SendMessage(id, req.Content)
	if err != nil {
		if errors.Is(err, util.ErrConversationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, pair)
}

// GetMessages godoc
// @Summary 会话消息记录
// @Tags 会话练习
// @Produce  json
// @Param   id path int true "会话ID"
// @Param   limit query int false "只取最近N条"
// @Success 200 {object} util.Response{data=[]model.ChatMessage}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/chat/conversations/{id}/messages [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid conversation id")
		return
	}

	var messages []model.ChatMessage
	var err error
	if limit, lok := util.ParseIntQuery(ctx, "limit"); lok && limit > 0 {
		messages, err = c.ChatService.GetRecentMessages(id, limit)
	} else {
		messages, err = c.ChatService.GetConversationMessages(id)
	}
	if err != nil {
		if errors.Is(err, util.ErrConversationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, messages)
}

// GetUserConversations godoc
// @Summary 用户会话列表
// @Tags 会话练习
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.ChatConversation}
// @Security BearerAuth
// @Router /api/chat/users/{userId}/conversations [get]
func (c *ChatController) GetUserConversations(ctx *gin.Context) {
	userID, ok := util.ParseUintParam(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	conversations, err := c.ChatService.GetUserConversations(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, conversations)
}

// DeleteConversation godoc
// @Summary 删除会话
// @Tags 会话练习
// @Produce  json
// @Param   id path int true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/chat/conversations/{id} [delete]
func (c *ChatController) DeleteConversation(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid conversation id")
		return
	}

	if err := c.ChatService.DeleteConversation(id); err != nil {
		if errors.Is(err, util.ErrConversationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "会话已删除"})
}

// GetScenarios godoc
// @Summary 支持的练习场景
// @Tags 会话练习
// @Produce  json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/chat/scenarios [get]
func (c *ChatController) GetScenarios(ctx *gin.Context) {
	util.Success(ctx, service.ChatScenarios)
}

// GetDifficulties godoc
// @Summary 支持的难度等级
// @Tags 会话练习
// @Produce  json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/chat/difficulties [get]
func (c *ChatController) GetDifficulties(ctx *gin.Context) {
	util.Success(ctx, service.ChatDifficulties)
}
