package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type LevelXPController struct {
	LevelXPService *service.LevelXPService
}

func NewLevelXPController(levelXPService *service.LevelXPService) *LevelXPController {
	return &LevelXPController{LevelXPService: levelXPService}
}

// GetAll godoc
// @Summary 等级阈值表
// @Tags 经验
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.LevelXP}
// @Router /api/level-xp [get]
func (c *LevelXPController) GetAll(ctx *gin.Context) {
	levels, err := c.LevelXPService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// GetByLevelNumber godoc
// @Summary 查询等级阈值
// @Tags 经验
// @Produce  json
// @Param   levelNumber path int true "等级"
// @Success 200 {object} util.Response{data=model.LevelXP}
// @Failure 404 {object} util.Response
// @Router /api/level-xp/{levelNumber} [get]
func (c *LevelXPController) GetByLevelNumber(ctx *gin.Context) {
	levelNumber, ok := util.ParseIntParam(ctx, "levelNumber")
	if !ok {
		util.BadRequest(ctx, "invalid level number")
		return
	}

	level, err := c.LevelXPService.GetByLevelNumber(levelNumber)
	if err != nil {
		if errors.Is(err, util.ErrLevelXPNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, level)
}

type LevelXPRequest struct {
	LevelNumber int    `json:"levelNumber" binding:"required"`
	RequiredXP  int    `json:"requiredXP"`
	Title       string `json:"title"`
	BadgeImage  string `json:"badgeImage"`
}

// Upsert godoc
// @Summary 新增或覆盖等级阈值
// @Description 按等级号upsert，不做跨行单调性校验
// @Tags 经验
// @Accept  json
// @Produce  json
// @Param   body body LevelXPRequest true "阈值行"
// @Success 200 {object} util.Response{data=model.LevelXP}
// @Security BearerAuth
// @Router /api/level-xp [put]
func (c *LevelXPController) Upsert(ctx *gin.Context) {
	var req LevelXPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level := &model.LevelXP{
		LevelNumber: req.LevelNumber,
		RequiredXP:  req.RequiredXP,
		Title:       req.Title,
		BadgeImage:  req.BadgeImage,
	}
	if err := c.LevelXPService.Upsert(level); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, level)
}

// Delete godoc
// @Summary 删除等级阈值
// @Tags 经验
// @Produce  json
// @Param   levelNumber path int true "等级"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/level-xp/{levelNumber} [delete]
func (c *LevelXPController) Delete(ctx *gin.Context) {
	levelNumber, ok := util.ParseIntParam(ctx, "levelNumber")
	if !ok {
		util.BadRequest(ctx, "invalid level number")
		return
	}

	if err := c.LevelXPService.Delete(levelNumber); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "阈值已删除"})
}
