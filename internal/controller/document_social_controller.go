package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type DocumentSocialController struct {
	SocialService *service.DocumentSocialService
}

func NewDocumentSocialController(socialService *service.DocumentSocialService) *DocumentSocialController {
	return &DocumentSocialController{SocialService: socialService}
}

type FavoriteRequest struct {
	UserID uint `json:"userId" binding:"required"`
	ListID uint `json:"listId" binding:"required"`
}

// AddFavorite godoc
// @Summary 收藏单词集
// @Tags 单词集
// @Accept  json
// @Produce  json
// @Param   body body FavoriteRequest true "收藏"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "单词集不存在"
// @Security BearerAuth
// @Router /api/favorite-lists [post]
func (c *DocumentSocialController) AddFavorite(ctx *gin.Context) {
	var req FavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SocialService.AddFavorite(req.UserID, req.ListID); err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "已收藏"})
}

// RemoveFavorite godoc
// @Summary 取消收藏
// @Tags 单词集
// @Produce  json
// @Param   userId query int true "用户ID"
// @Param   listId query int true "单词集ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/favorite-lists [delete]
func (c *DocumentSocialController) RemoveFavorite(ctx *gin.Context) {
	userID, ok := parseUintQuery(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}
	listID, ok := parseUintQuery(ctx, "listId")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	if err := c.SocialService.RemoveFavorite(userID, listID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "已取消收藏"})
}

// GetFavorites godoc
// @Summary 用户收藏的单词集
// @Tags 单词集
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.DocumentList}
// @Security BearerAuth
// @Router /api/favorite-lists/{userId} [get]
func (c *DocumentSocialController) GetFavorites(ctx *gin.Context) {
	userID, ok := util.ParseUintParam(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	lists, err := c.SocialService.GetFavoriteLists(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lists)
}

// IsFavorite godoc
// @Summary 是否已收藏
// @Tags 单词集
// @Produce  json
// @Param   userId query int true "用户ID"
// @Param   listId query int true "单词集ID"
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/favorite-lists/check [get]
func (c *DocumentSocialController) IsFavorite(ctx *gin.Context) {
	userID, ok := parseUintQuery(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}
	listID, ok := parseUintQuery(ctx, "listId")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	favorite, err := c.SocialService.IsFavorite(userID, listID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"isFavorite": favorite})
}

// GetFavoriteCount godoc
// @Summary 单词集被收藏次数
// @Tags 单词集
// @Produce  json
// @Param   listId query int true "单词集ID"
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/favorite-lists/count [get]
func (c *DocumentSocialController) GetFavoriteCount(ctx *gin.Context) {
	listID, ok := parseUintQuery(ctx, "listId")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	count, err := c.SocialService.GetFavoriteCount(listID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": count})
}

type ReportRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	ListID uint   `json:"listId" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// ReportList godoc
// @Summary 举报单词集
// @Tags 单词集
// @Accept  json
// @Produce  json
// @Param   body body ReportRequest true "举报"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response "单词集不存在"
// @Security BearerAuth
// @Router /api/document-reports [post]
func (c *DocumentSocialController) ReportList(ctx *gin.Context) {
	var req ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SocialService.ReportList(req.UserID, req.ListID, req.Reason); err != nil {
		if errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"message": "举报已提交"})
}

// GetReports godoc
// @Summary 举报列表（管理端）
// @Tags 单词集
// @Produce  json
// @Param   listId query int false "按单词集过滤"
// @Success 200 {object} util.Response{data=[]model.DocumentReport}
// @Security BearerAuth
// @Router /api/document-reports [get]
func (c *DocumentSocialController) GetReports(ctx *gin.Context) {
	if listID, ok := parseUintQuery(ctx, "listId"); ok {
		reports, err := c.SocialService.GetReportsByList(listID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, reports)
		return
	}

	reports, err := c.SocialService.GetAllReports()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reports)
}

// DeleteReport godoc
// @Summary 删除举报
// @Tags 单词集
// @Produce  json
// @Param   id path int true "举报ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/document-reports/{id} [delete]
func (c *DocumentSocialController) DeleteReport(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid report id")
		return
	}

	if err := c.SocialService.DeleteReport(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "举报已删除"})
}
