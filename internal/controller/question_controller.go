package controller

import (
	"errors"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

type MCQRequest struct {
	ExerciseID    uint   `json:"exerciseId" binding:"required"`
	QuestionText  string `json:"questionText" binding:"required"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
	Explanation   string `json:"explanation"`
	QuestionAudio string `json:"questionAudio"`
}

// CreateMCQ godoc
// @Summary 创建选择题
// @Tags 练习
// @Accept  json
// @Produce  json
// @Param   body body MCQRequest true "选择题"
// @Success 201 {object} util.Response{data=model.MultipleChoiceQuestion}
// @Security BearerAuth
// @Router /api/mcq [post]
func (c *QuestionController) CreateMCQ(ctx *gin.Context) {
	var req MCQRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.MultipleChoiceQuestion{
		ExerciseID:    req.ExerciseID,
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		QuestionAudio: req.QuestionAudio,
	}
	if err := c.QuestionService.CreateMCQ(question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// GetMCQByExercise godoc
// @Summary 练习的选择题列表
// @Tags 练习
// @Produce  json
// @Param   exerciseId query int true "练习ID"
// @Success 200 {object} util.Response{data=[]model.MultipleChoiceQuestion}
// @Router /api/mcq [get]
func (c *QuestionController) GetMCQByExercise(ctx *gin.Context) {
	exerciseID, ok := parseUintQuery(ctx, "exerciseId")
	if !ok {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	questions, err := c.QuestionService.GetMCQByExercise(exerciseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// UpdateMCQ godoc
// @Summary 更新选择题
// @Tags 练习
// @Accept  json
// @Produce  json
// @Param   id path int true "题目ID"
// @Param   body body MCQRequest true "选择题"
// @Success 200 {object} util.Response{data=model.MultipleChoiceQuestion}
// @Security BearerAuth
// @Router /api/mcq/{id} [put]
func (c *QuestionController) UpdateMCQ(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var req MCQRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.GetMCQByID(id)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	question.ExerciseID = req.ExerciseID
	question.QuestionText = req.QuestionText
	question.OptionA = req.OptionA
	question.OptionB = req.OptionB
	question.OptionC = req.OptionC
	question.OptionD = req.OptionD
	question.CorrectAnswer = req.CorrectAnswer
	question.Explanation = req.Explanation
	question.QuestionAudio = req.QuestionAudio
	if err := c.QuestionService.UpdateMCQ(question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// DeleteMCQ godoc
// @Summary 删除选择题
// @Tags 练习
// @Produce  json
// @Param   id path int true "题目ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/mcq/{id} [delete]
func (c *QuestionController) DeleteMCQ(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.QuestionService.DeleteMCQ(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "题目已删除"})
}

type SentenceRewritingRequest struct {
	ExerciseID          uint   `json:"exerciseId" binding:"required"`
	OriginalSentence    string `json:"originalSentence" binding:"required"`
	RewrittenSentence   string `json:"rewrittenSentence" binding:"required"`
	QuestionInstruction string `json:"questionInstruction"`
}

// CreateSentenceRewriting godoc
// @Summary 创建句型改写题
// @Tags 练习
// @Accept  json
// @Produce  json
// @Param   body body SentenceRewritingRequest true "改写题"
// @Success 201 {object} util.Response{data=model.SentenceRewritingQuestion}
// @Security BearerAuth
// @Router /api/sentence-rewriting [post]
func (c *QuestionController) CreateSentenceRewriting(ctx *gin.Context) {
	var req SentenceRewritingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.SentenceRewritingQuestion{
		ExerciseID:          req.ExerciseID,
		OriginalSentence:    req.OriginalSentence,
		RewrittenSentence:   req.RewrittenSentence,
		QuestionInstruction: req.QuestionInstruction,
	}
	if err := c.QuestionService.CreateSentenceRewriting(question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// GetSentenceRewritingByExercise godoc
// @Summary 练习的句型改写题列表
// @Tags 练习
// @Produce  json
// @Param   exerciseId query int true "练习ID"
// @Success 200 {object} util.Response{data=[]model.SentenceRewritingQuestion}
// @Router /api/sentence-rewriting [get]
func (c *QuestionController) GetSentenceRewritingByExercise(ctx *gin.Context) {
	exerciseID, ok := parseUintQuery(ctx, "exerciseId")
	if !ok {
		util.BadRequest(ctx, "invalid exercise id")
		return
	}

	questions, err := c.QuestionService.GetSentenceRewritingByExercise(exerciseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// UpdateSentenceRewriting godoc
// @Summary 更新句型改写题
// @Tags 练习
// @Accept  json
// @Produce  json
// @Param   id path int true "题目ID"
// @Param   body body SentenceRewritingRequest true "改写题"
// @Success 200 {object} util.Response{data=model.SentenceRewritingQuestion}
// @Security BearerAuth
// @Router /api/sentence-rewriting/{id} [put]
func (c *QuestionController) UpdateSentenceRewriting(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var req SentenceRewritingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.GetSentenceRewritingByID(id)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	question.ExerciseID = req.ExerciseID
	question.OriginalSentence = req.OriginalSentence
	question.RewrittenSentence = req.RewrittenSentence
	question.QuestionInstruction = req.QuestionInstruction
	if err := c.QuestionService.UpdateSentenceRewriting(question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// DeleteSentenceRewriting godoc
// @Summary 删除句型改写题
// @Tags 练习
// @Produce  json
// @Param   id path int true "题目ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/sentence-rewriting/{id} [delete]
func (c *QuestionController) DeleteSentenceRewriting(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.QuestionService.DeleteSentenceRewriting(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "题目已删除"})
}
