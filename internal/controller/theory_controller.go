package controller

import (
	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type TheoryController struct {
	TheoryService *service.TheoryService
}

func NewTheoryController(theoryService *service.TheoryService) *TheoryController {
	return &TheoryController{TheoryService: theoryService}
}

type VocabularyRequest struct {
	LessonID   uint   `json:"lessonId" binding:"required"`
	Word       string `json:"word" binding:"required"`
	Meaning    string `json:"meaning" binding:"required"`
	Example    string `json:"example"`
	VocabImage string `json:"vocabImage"`
	Audio      string `json:"audio"`
}

// CreateVocabulary godoc
// @Summary 创建词汇
// @Tags 教学内容
// @Accept  json
// @Produce  json
// @Param   body body VocabularyRequest true "词汇"
// @Success 201 {object} util.Response{data=model.VocabularyTheory}
// @Security BearerAuth
// @Router /api/vocabulary-theories [post]
func (c *TheoryController) CreateVocabulary(ctx *gin.Context) {
	var req VocabularyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	vocab := &model.VocabularyTheory{
		LessonID:   req.LessonID,
		Word:       req.Word,
		Meaning:    req.Meaning,
		Example:    req.Example,
		VocabImage: req.VocabImage,
		Audio:      req.Audio,
	}
	if err := c.TheoryService.CreateVocabulary(vocab); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, vocab)
}

// GetVocabularyByLesson godoc
// @Summary 课时的词汇列表
// @Tags 教学内容
// @Produce  json
// @Param   lessonId query int true "课时ID"
// @Success 200 {object} util.Response{data=[]model.VocabularyTheory}
// @Router /api/vocabulary-theories [get]
func (c *TheoryController) GetVocabularyByLesson(ctx *gin.Context) {
	lessonID, ok := parseUintQuery(ctx, "lessonId")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	vocabs, err := c.TheoryService.GetVocabularyByLesson(lessonID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, vocabs)
}

// UpdateVocabulary godoc
// @Summary 更新词汇
// @Tags 教学内容
// @Accept  json
// @Produce  json
// @Param   id path int true "词汇ID"
// @Param   body body VocabularyRequest true "词汇"
// @Success 200 {object} util.Response{data=model.VocabularyTheory}
// @Security BearerAuth
// @Router /api/vocabulary-theories/{id} [put]
func (c *TheoryController) UpdateVocabulary(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid vocabulary id")
		return
	}

	var req VocabularyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	vocab, err := c.TheoryService.GetVocabularyByID(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	vocab.LessonID = req.LessonID
	vocab.Word = req.Word
	vocab.Meaning = req.Meaning
	vocab.Example = req.Example
	vocab.VocabImage = req.VocabImage
	vocab.Audio = req.Audio
	if err := c.TheoryService.UpdateVocabulary(vocab); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, vocab)
}

// DeleteVocabulary godoc
// @Summary 删除词汇
// @Tags 教学内容
// @Produce  json
// @Param   id path int true "词汇ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/vocabulary-theories/{id} [delete]
func (c *TheoryController) DeleteVocabulary(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid vocabulary id")
		return
	}

	if err := c.TheoryService.DeleteVocabulary(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "词汇已删除"})
}

type GrammarRequest struct {
	LessonID       uint   `json:"lessonId" binding:"required"`
	GrammarTitle   string `json:"grammarTitle" binding:"required"`
	GrammarContent string `json:"grammarContent"`
	GrammarExample string `json:"grammarExample"`
	GrammarMeaning string `json:"grammarMeaning"`
}

// CreateGrammar godoc
// @Summary 创建语法
// @Tags 教学内容
// @Accept  json
// @Produce  json
// @Param   body body GrammarRequest true "语法"
// @Success 201 {object} util.Response{data=model.GrammarTheory}
// @Security BearerAuth
// @Router /api/grammar-theories [post]
func (c *TheoryController) CreateGrammar(ctx *gin.Context) {
	var req GrammarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	grammar := &model.GrammarTheory{
		LessonID:       req.LessonID,
		GrammarTitle:   req.GrammarTitle,
		GrammarContent: req.GrammarContent,
		GrammarExample: req.GrammarExample,
		GrammarMeaning: req.GrammarMeaning,
	}
	if err := c.TheoryService.CreateGrammar(grammar); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, grammar)
}

// GetGrammarByLesson godoc
// @Summary 课时的语法列表
// @Tags 教学内容
// @Produce  json
// @Param   lessonId query int true "课时ID"
// @Success 200 {object} util.Response{data=[]model.GrammarTheory}
// @Router /api/grammar-theories [get]
func (c *TheoryController) GetGrammarByLesson(ctx *gin.Context) {
	lessonID, ok := parseUintQuery(ctx, "lessonId")
	if !ok {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	grammars, err := c.TheoryService.GetGrammarByLesson(lessonID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, grammars)
}

// UpdateGrammar godoc
// @Summary 更新语法
// @Tags 教学内容
// @Accept  json
// @Produce  json
// @Param   id path int true "语法ID"
// @Param   body body GrammarRequest true "语法"
// @Success 200 {object} util.Response{data=model.GrammarTheory}
// @Security BearerAuth
// @Router /api/grammar-theories/{id} [put]
func (c *TheoryController) UpdateGrammar(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid grammar id")
		return
	}

	var req GrammarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	grammar, err := c.TheoryService.GetGrammarByID(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	grammar.LessonID = req.LessonID
	grammar.GrammarTitle = req.GrammarTitle
	grammar.GrammarContent = req.GrammarContent
	grammar.GrammarExample = req.GrammarExample
	grammar.GrammarMeaning = req.GrammarMeaning
	if err := c.TheoryService.UpdateGrammar(grammar); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, grammar)
}

// DeleteGrammar godoc
// @Summary 删除语法
// @Tags 教学内容
// @Produce  json
// @Param   id path int true "语法ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/grammar-theories/{id} [delete]
func (c *TheoryController) DeleteGrammar(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid grammar id")
		return
	}

	if err := c.TheoryService.DeleteGrammar(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "语法已删除"})
}
