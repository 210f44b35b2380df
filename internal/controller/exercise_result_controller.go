package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseResultController struct {
	ExerciseService *service.ExerciseService
}

func NewExerciseResultController(exerciseService *service.ExerciseService) *ExerciseResultController {
	return &ExerciseResultController{ExerciseService: exerciseService}
}

type SubmitResultRequest struct {
	UserID     uint `json:"userId" binding:"required"`
	ExerciseID uint `json:"exerciseId" binding:"required"`
	Score      int  `json:"score"`
}

// SubmitResult godoc
// @Summary 提交练习成绩
// @Tags 练习
// @Accept  json
// @Produce  json
// @Param   body body SubmitResultRequest true "成绩"
// @Success 201 {object} util.Response{data=model.UserExerciseResult}
// @Failure 404 {object} util.Response "练习不存在"
// @Security BearerAuth
// @Router /api/user-exercise-results [post]
func (c *ExerciseResultController) SubmitResult(ctx *gin.Context) {
	var req SubmitResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ExerciseService.SubmitResult(req.UserID, req.ExerciseID, req.Score)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// GetResultsByUser godoc
// @Summary 用户的成绩记录
// @Tags 练习
// @Produce  json
// @Param   userId path int true "用户ID"
// @Param   exerciseId query int false "按练习过滤"
// @Success 200 {object} util.Response{data=[]model.UserExerciseResult}
// @Security BearerAuth
// @Router /api/user-exercise-results/{userId} [get]
func (c *ExerciseResultController) GetResultsByUser(ctx *gin.Context) {
	userID, ok := util.ParseUintParam(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if exerciseID, ok := parseUintQuery(ctx, "exerciseId"); ok {
		results, err := c.ExerciseService.GetResultsByUserAndExercise(userID, exerciseID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, results)
		return
	}

	results, err := c.ExerciseService.GetResultsByUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

// GetBestScore godoc
// @Summary 练习最高分
// @Tags 练习
// @Produce  json
// @Param   userId path int true "用户ID"
// @Param   exerciseId path int true "练习ID"
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/user-exercise-results/{userId}/best/{exerciseId} [get]
func (c *ExerciseResultController) GetBestScore(ctx *gin.Context) {
	userID, ok := util.ParseUintParam(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}
	exerciseID, ok := util.ParseUintParam(ctx, "exerciseId")
	if !ok {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	score, err := c.ExerciseService.GetBestScore(userID, exerciseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"bestScore": score})
}
