package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type ProgressCompleteRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	LessonID uint `json:"lessonId" binding:"required"`
}

// CompleteLesson godoc
// @Summary 完成课时（进度入口）
// @Description 仅写完成记录并为下一课预建进度，不加经验
// @Tags 学习进度
// @Accept  json
// @Produce  json
// @Param   body body ProgressCompleteRequest true "完成信息"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/user-progress/complete [post]
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	var req ProgressCompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.CompleteLesson(req.UserID, req.LessonID); err != nil {
		if errors.Is(err, util.ErrUserNotFound) || errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "进度已更新"})
}

// GetUserProgress godoc
// @Summary 用户的全部进度记录
// @Tags 学习进度
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.UserProgress}
// @Security BearerAuth
// @Router /api/user-progress/{userId} [get]
func (c *ProgressController) GetUserProgress(ctx *gin.Context) {
	userID, ok := util.ParseUintParam(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	records, err := c.ProgressService.GetProgressByUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}
