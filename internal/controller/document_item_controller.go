package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type DocumentItemController struct {
	DocumentService *service.DocumentService
}

func NewDocumentItemController(documentService *service.DocumentService) *DocumentItemController {
	return &DocumentItemController{DocumentService: documentService}
}

type DocumentItemRequest struct {
	ListID     uint   `json:"listId" binding:"required"`
	Word       string `json:"word" binding:"required"`
	Meaning    string `json:"meaning" binding:"required"`
	Example    string `json:"example"`
	VocabImage string `json:"vocabImage"`
}

// CreateItem godoc
// @Summary 创建闪卡
// @Tags 单词集
// @Accept  json
// @Produce  json
// @Param   body body DocumentItemRequest true "闪卡"
// @Success 201 {object} util.Response{data=model.DocumentItem}
// @Failure 404 {object} util.Response "单词集不存在"
// @Security BearerAuth
// @Router /api/document-items [post]
func (c *DocumentItemController) CreateItem(ctx *gin.Context) {
	var req DocumentItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item := &model.DocumentItem{
		ListID:     req.ListID,
		Word:       req.Word,
		Meaning:    req.Meaning,
		Example:    req.Example,
		VocabImage: req.VocabImage,
	}
	if err := c.DocumentService.CreateItem(item); err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, item)
}

// GetItemsByList godoc
// @Summary 单词集的闪卡列表
// @Tags 单词集
// @Produce  json
// @Param   listId query int true "单词集ID"
// @Success 200 {object} util.Response{data=[]model.DocumentItem}
// @Router /api/document-items [get]
func (c *DocumentItemController) GetItemsByList(ctx *gin.Context) {
	listID, ok := parseUintQuery(ctx, "listId")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	items, err := c.DocumentService.GetItemsByList(listID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// UpdateItem godoc
// @Summary 更新闪卡
// @Tags 单词集
// @Accept  json
// @Produce  json
// @Param   id path int true "闪卡ID"
// @Param   body body DocumentItemRequest true "闪卡"
// @Success 200 {object} util.Response{data=model.DocumentItem}
// @Security BearerAuth
// @Router /api/document-items/{id} [put]
func (c *DocumentItemController) UpdateItem(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid item id")
		return
	}

	var req DocumentItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.DocumentService.GetItemByID(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	item.Word = req.Word
	item.Meaning = req.Meaning
	item.Example = req.Example
	item.VocabImage = req.VocabImage
	if err := c.DocumentService.UpdateItem(item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// DeleteItem godoc
// @Summary 删除闪卡
// @Tags 单词集
// @Produce  json
// @Param   id path int true "闪卡ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/document-items/{id} [delete]
func (c *DocumentItemController) DeleteItem(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid item id")
		return
	}

	if err := c.DocumentService.DeleteItem(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "闪卡已删除"})
}
