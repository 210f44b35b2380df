package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type LevelController struct {
	LevelService *service.LevelService
}

func NewLevelController(levelService *service.LevelService) *LevelController {
	return &LevelController{LevelService: levelService}
}

type LevelRequest struct {
	LevelName   string `json:"levelName" binding:"required"`
	Description string `json:"description"`
}

// CreateLevel godoc
// @Summary 创建级别
// @Tags 课程
// @Accept  json
// @Produce  json
// @Param   body body LevelRequest true "级别信息"
// @Success 201 {object} util.Response{data=model.Level}
// @Security BearerAuth
// @Router /api/levels [post]
func (c *LevelController) CreateLevel(ctx *gin.Context) {
	var req LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level := &model.Level{LevelName: req.LevelName, Description: req.Description}
	if err := c.LevelService.CreateLevel(level); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, level)
}

// GetLevels godoc
// @Summary 级别列表
// @Tags 课程
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Level}
// @Router /api/levels [get]
func (c *LevelController) GetLevels(ctx *gin.Context) {
	levels, err := c.LevelService.GetAllLevels()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// GetLevel godoc
// @Summary 查询级别
// @Tags 课程
// @Produce  json
// @Param   id path int true "级别ID"
// @Success 200 {object} util.Response{data=model.Level}
// @Failure 404 {object} util.Response
// @Router /api/levels/{id} [get]
func (c *LevelController) GetLevel(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid level id")
		return
	}

	level, err := c.LevelService.GetLevelByID(id)
	if err != nil {
		if errors.Is(err, util.ErrLevelNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, level)
}

// UpdateLevel godoc
// @Summary 更新级别
// @Tags 课程
// @Accept  json
// @Produce  json
// @Param   id path int true "级别ID"
// @Param   body body LevelRequest true "级别信息"
// @Success 200 {object} util.Response{data=model.Level}
// @Security BearerAuth
// @Router /api/levels/{id} [put]
func (c *LevelController) UpdateLevel(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid level id")
		return
	}

	var req LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, err := c.LevelService.GetLevelByID(id)
	if err != nil {
		if errors.Is(err, util.ErrLevelNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	level.LevelName = req.LevelName
	level.Description = req.Description
	if err := c.LevelService.UpdateLevel(level); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, level)
}

// DeleteLevel godoc
// @Summary 删除级别
// @Tags 课程
// @Produce  json
// @Param   id path int true "级别ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/levels/{id} [delete]
func (c *LevelController) DeleteLevel(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid level id")
		return
	}

	if err := c.LevelService.DeleteLevel(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "级别已删除"})
}
