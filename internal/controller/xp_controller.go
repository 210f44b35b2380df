package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type XPController struct {
	XPService *service.XPService
}

func NewXPController(xpService *service.XPService) *XPController {
	return &XPController{XPService: xpService}
}

// GetUserXP godoc
// @Summary 查询经验台账
// @Tags 经验
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=model.UserXP}
// @Failure 404 {object} util.Response "台账不存在"
// @Security BearerAuth
// @Router /api/user-xp/{userId} [get]
func (c *XPController) GetUserXP(ctx *gin.Context) {
	userID, ok := util.ParseUintParam(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	xp, err := c.XPService.GetUserXP(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserXPNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, xp)
}

type AddXPRequest struct {
	UserID  uint `json:"userId" binding:"required"`
	XPToAdd int  `json:"xpToAdd"`
}

// AddXP godoc
// @Summary 增加经验
// @Description 加经验并按阈值表逐级上探，一次调用可连升多级
// @Tags 经验
// @Accept  json
// @Produce  json
// @Param   body body AddXPRequest true "加经验请求"
// @Success 200 {object} util.Response{data=model.UserXP}
// @Security BearerAuth
// @Router /api/user-xp/add [post]
func (c *XPController) AddXP(ctx *gin.Context) {
	var req AddXPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	xp, err := c.XPService.AddXP(req.UserID, req.XPToAdd)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, xp)
}

// GetLeaderboard godoc
// @Summary 经验排行榜
// @Description 按累计经验降序，最多返回100条
// @Tags 经验
// @Produce  json
// @Success 200 {object} util.Response{data=[]repository.LeaderboardEntry}
// @Router /api/user-xp/leaderboard [get]
func (c *XPController) GetLeaderboard(ctx *gin.Context) {
	entries, err := c.XPService.GetLeaderboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
