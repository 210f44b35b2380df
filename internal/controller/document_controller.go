package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type DocumentController struct {
	DocumentService *service.DocumentService
}

func NewDocumentController(documentService *service.DocumentService) *DocumentController {
	return &DocumentController{DocumentService: documentService}
}

type DocumentListRequest struct {
	UserID      uint   `json:"userId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type"`
	IsPublic    int    `json:"isPublic"`
}

// CreateList godoc
// @Summary 创建单词集
// @Tags 单词集
// @Accept  json
// @Produce  json
// @Param   body body DocumentListRequest true "单词集"
// @Success 201 {object} util.Response{data=model.DocumentList}
// @Security BearerAuth
// @Router /api/document-lists [post]
func (c *DocumentController) CreateList(ctx *gin.Context) {
	var req DocumentListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	list := &model.DocumentList{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		IsPublic:    req.IsPublic,
	}
	if err := c.DocumentService.CreateList(list); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, list)
}

// GetList godoc
// @Summary 查询单词集
// @Tags 单词集
// @Produce  json
// @Param   id path int true "单词集ID"
// @Success 200 {object} util.Response{data=model.DocumentList}
// @Failure 404 {object} util.Response
// @Router /api/document-lists/{id} [get]
func (c *DocumentController) GetList(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	list, err := c.DocumentService.GetListByID(id)
	if err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, list)
}

// GetListsByUser godoc
// @Summary 用户的单词集
// @Tags 单词集
// @Produce  json
// @Param   userId query int true "用户ID"
// @Success 200 {object} util.Response{data=[]service.DocumentListWithCount}
// @Security BearerAuth
// @Router /api/document-lists [get]
func (c *DocumentController) GetListsByUser(ctx *gin.Context) {
	userID, ok := parseUintQuery(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	lists, err := c.DocumentService.GetListsByUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lists)
}

// GetPublicLists godoc
// @Summary 公开单词集分页列表
// @Tags 单词集
// @Produce  json
// @Param   type query string false "类型过滤"
// @Param   keyword query string false "标题或描述关键字"
// @Param   page query int false "页码（0起）"
// @Param   size query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/document-lists/public [get]
func (c *DocumentController) GetPublicLists(ctx *gin.Context) {
	page, size := util.Pagination(ctx)
	lists, total, err := c.DocumentService.GetPublicListsPaged(ctx.Query("type"), ctx.Query("keyword"), page, size)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: lists, Total: total, Page: page, Limit: size})
}

// GetPublicListsGrouped godoc
// @Summary 公开单词集按类型分组
// @Tags 单词集
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /api/document-lists/public/grouped [get]
func (c *DocumentController) GetPublicListsGrouped(ctx *gin.Context) {
	grouped, err := c.DocumentService.GetPublicListsGroupedByType()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, grouped)
}

// GetPublicTypes godoc
// @Summary 公开单词集的类型目录
// @Tags 单词集
// @Produce  json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/document-lists/public/types [get]
func (c *DocumentController) GetPublicTypes(ctx *gin.Context) {
	types, err := c.DocumentService.GetPublicTypes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, types)
}

// UpdateList godoc
// @Summary 更新单词集
// @Tags 单词集
// @Accept  json
// @Produce  json
// @Param   id path int true "单词集ID"
// @Param   body body DocumentListRequest true "单词集"
// @Success 200 {object} util.Response{data=model.DocumentList}
// @Security BearerAuth
// @Router /api/document-lists/{id} [put]
func (c *DocumentController) UpdateList(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	var req DocumentListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	list, err := c.DocumentService.GetListByID(id)
	if err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	list.Title = req.Title
	list.Description = req.Description
	list.Type = req.Type
	list.IsPublic = req.IsPublic
	if err := c.DocumentService.UpdateList(list); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, list)
}

type VisibilityRequest struct {
	IsPublic *int `json:"isPublic" binding:"required"`
}

// SetVisibility godoc
// @Summary 切换单词集公开状态
// @Tags 单词集
// @Accept  json
// @Produce  json
// @Param   id path int true "单词集ID"
// @Param   body body VisibilityRequest true "公开标志"
// @Success 200 {object} util.Response{data=model.DocumentList}
// @Security BearerAuth
// @Router /api/document-lists/{id}/visibility [put]
func (c *DocumentController) SetVisibility(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	var req VisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	list, err := c.DocumentService.SetVisibility(id, *req.IsPublic)
	if err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, list)
}

// DeleteList godoc
// @Summary 删除单词集
// @Tags 单词集
// @Produce  json
// @Param   id path int true "单词集ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/document-lists/{id} [delete]
func (c *DocumentController) DeleteList(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	if err := c.DocumentService.DeleteList(id); err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "单词集已删除"})
}

// ExportList godoc
// @Summary 导出单词集为Excel
// @Tags 单词集
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path int true "单词集ID"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /api/document-lists/{id}/export [get]
func (c *DocumentController) ExportList(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	f, filename, err := c.DocumentService.ExportListToExcel(id)
	if err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusOK)
}

// ImportList godoc
// @Summary 从Excel导入闪卡
// @Tags 单词集
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path int true "单词集ID"
// @Param   file formData file true "xlsx文件"
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/document-lists/{id}/import [post]
func (c *DocumentController) ImportList(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	count, err := c.DocumentService.ImportItemsFromExcel(id, file)
	if err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, gin.H{"imported": count})
}
