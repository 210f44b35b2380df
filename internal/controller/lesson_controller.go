package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

type LessonRequest struct {
	LevelID           uint   `json:"levelId" binding:"required"`
	LessonName        string `json:"lessonName" binding:"required"`
	LessonDescription string `json:"lessonDescription"`
}

// CreateLesson godoc
// @Summary 创建课时
// @Tags 课程
// @Accept  json
// @Produce  json
// @Param   body body LessonRequest true "课时信息"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Security BearerAuth
// @Router /api/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		LevelID:           req.LevelID,
		LessonName:        req.LessonName,
		LessonDescription: req.LessonDescription,
	}
	if err := c.LessonService.CreateLesson(lesson); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// GetLesson godoc
// @Summary 查询课时
// @Tags 课程
// @Produce  json
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	lesson, err := c.LessonService.GetLessonByID(id)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, lesson)
}

// GetLessonsByLevel godoc
// @Summary 级别下的课时列表
// @Tags 课程
// @Produce  json
// @Param   levelId query int true "级别ID"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /api/lessons [get]
func (c *LessonController) GetLessonsByLevel(ctx *gin.Context) {
	levelID, ok := parseUintQuery(ctx, "levelId")
	if !ok {
		util.BadRequest(ctx, "invalid level id")
		return
	}

	lessons, err := c.LessonService.GetLessonsByLevel(levelID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lessons)
}

// GetLessonsPaged godoc
// @Summary 课时分页列表
// @Tags 课程
// @Produce  json
// @Param   levelId query int true "级别ID"
// @Param   page query int false "页码（0起）"
// @Param   size query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/lessons/paged [get]
func (c *LessonController) GetLessonsPaged(ctx *gin.Context) {
	levelID, ok := parseUintQuery(ctx, "levelId")
	if !ok {
		util.BadRequest(ctx, "invalid level id")
		return
	}

	page, size := util.Pagination(ctx)
	lessons, total, err := c.LessonService.GetLessonsByLevelPaged(levelID, page, size)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: lessons, Total: total, Page: page, Limit: size})
}

// GetLessonsWithProgress godoc
// @Summary 带解锁状态的课时列表
// @Description 第一课永远解锁，其余课时锁定状态由前一课是否完成决定
// @Tags 学习进度
// @Produce  json
// @Param   levelId query int true "级别ID"
// @Param   userId query int true "用户ID"
// @Success 200 {object} util.Response{data=[]service.LessonWithProgress}
// @Security BearerAuth
// @Router /api/lessons/progress [get]
func (c *LessonController) GetLessonsWithProgress(ctx *gin.Context) {
	levelID, ok := parseUintQuery(ctx, "levelId")
	if !ok {
		util.BadRequest(ctx, "invalid level id")
		return
	}
	userID, ok := parseUintQuery(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	lessons, err := c.LessonService.GetLessonsWithProgress(levelID, userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lessons)
}

type CompleteLessonRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	LessonID uint `json:"lessonId" binding:"required"`
	Score    int  `json:"score"`
}

// CompleteLesson godoc
// @Summary 完成课时
// @Description 标记课时完成，首次完成按分值加经验并可能升级
// @Tags 学习进度
// @Accept  json
// @Produce  json
// @Param   body body CompleteLessonRequest true "完成信息"
// @Success 200 {object} util.Response{data=service.CompleteLessonResult}
// @Failure 404 {object} util.Response "课时不存在"
// @Security BearerAuth
// @Router /api/lessons/complete [post]
func (c *LessonController) CompleteLesson(ctx *gin.Context) {
	var req CompleteLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.LessonService.CompleteLesson(req.UserID, req.LessonID, req.Score)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// UpdateLesson godoc
// @Summary 更新课时
// @Tags 课程
// @Accept  json
// @Produce  json
// @Param   id path int true "课时ID"
// @Param   body body LessonRequest true "课时信息"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Security BearerAuth
// @Router /api/lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.GetLessonByID(id)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	lesson.LevelID = req.LevelID
	lesson.LessonName = req.LessonName
	lesson.LessonDescription = req.LessonDescription
	if err := c.LessonService.UpdateLesson(lesson); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary 删除课时
// @Tags 课程
// @Produce  json
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	if err := c.LessonService.DeleteLesson(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "课时已删除"})
}
