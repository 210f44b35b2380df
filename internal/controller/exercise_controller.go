package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	ExerciseService *service.ExerciseService
}

func NewExerciseController(exerciseService *service.ExerciseService) *ExerciseController {
	return &ExerciseController{ExerciseService: exerciseService}
}

type ExerciseRequest struct {
	LessonID            uint   `json:"lessonId" binding:"required"`
	ExerciseName        string `json:"exerciseName" binding:"required"`
	ExerciseType        string `json:"exerciseType" binding:"required,oneof=multiple_choice sentence_rewriting"`
	ExerciseDescription string `json:"exerciseDescription"`
}

// CreateExercise godoc
// @Summary 创建练习
// @Tags 练习
// @Accept  json
// @Produce  json
// @Param   body body ExerciseRequest true "练习"
// @Success 201 {object} util.Response{data=model.Exercise}
// @Security BearerAuth
// @Router /api/exercises [post]
func (c *ExerciseController) CreateExercise(ctx *gin.Context) {
	var req ExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exercise := &model.Exercise{
		LessonID:            req.LessonID,
		ExerciseName:        req.ExerciseName,
		ExerciseType:        req.ExerciseType,
		ExerciseDescription: req.ExerciseDescription,
	}
	if err := c.ExerciseService.CreateExercise(exercise); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, exercise)
}

// GetExercise godoc
// @Summary 查询练习
// @Tags 练习
// @Produce  json
// @Param   id path int true "练习ID"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Failure 404 {object} util.Response
// @Router /api/exercises/{id} [get]
func (c *ExerciseController) GetExercise(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	exercise, err := c.ExerciseService.GetExerciseByID(id)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, exercise)
}

// GetExercisesByLesson godoc
// @Summary 课时的练习列表
// @Tags 练习
// @Produce  json
// @Param   lessonId query int true "课时ID"
// @Param   type query string false "练习类型"
// @Success 200 {object} util.Response{data=[]model.Exercise}
// @Router /api/exercises [get]
func (c *ExerciseController) GetExercisesByLesson(ctx *gin.Context) {
	lessonID, ok := parseUintQuery(ctx, "lessonId")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var (
		exercises []model.Exercise
		err       error
	)
	if exerciseType := ctx.Query("type"); exerciseType != "" {
		exercises, err = c.ExerciseService.GetExercisesByLessonAndType(lessonID, exerciseType)
	} else {
		exercises, err = c.ExerciseService.GetExercisesByLesson(lessonID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, exercises)
}

// UpdateExercise godoc
// @Summary 更新练习
// @Tags 练习
// @Accept  json
// @Produce  json
// @Param   id path int true "练习ID"
// @Param   body body ExerciseRequest true "练习"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Security BearerAuth
// @Router /api/exercises/{id} [put]
func (c *ExerciseController) UpdateExercise(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	var req ExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exercise, err := c.ExerciseService.GetExerciseByID(id)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	exercise.LessonID = req.LessonID
	exercise.ExerciseName = req.ExerciseName
	exercise.ExerciseType = req.ExerciseType
	exercise.ExerciseDescription = req.ExerciseDescription
	if err := c.ExerciseService.UpdateExercise(exercise); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// DeleteExercise godoc
// @Summary 删除练习
// @Tags 练习
// @Produce  json
// @Param   id path int true "练习ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/exercises/{id} [delete]
func (c *ExerciseController) DeleteExercise(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	if err := c.ExerciseService.DeleteExercise(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "练习已删除"})
}
