package controller

import (
	"errors"
	"net/http"

	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

type ClassRequest struct {
	ClassName   string `json:"className" binding:"required"`
	Description string `json:"description"`
	UserID      uint   `json:"userId" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// CreateClass godoc
// @Summary 创建班级
// @Tags 班级
// @Accept  json
// @Produce  json
// @Param   body body ClassRequest true "班级信息"
// @Success 201 {object} util.Response{data=model.ClassEntity}
// @Security BearerAuth
// @Router /api/classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class := &model.ClassEntity{
		ClassName:   req.ClassName,
		Description: req.Description,
		UserID:      req.UserID,
		Password:    req.Password,
	}
	if err := c.ClassService.CreateClass(class); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, class)
}

// GetClass godoc
// @Summary 查询班级
// @Tags 班级
// @Produce  json
// @Param   id path int true "班级ID"
// @Success 200 {object} util.Response{data=model.ClassEntity}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/classes/{id} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	class, err := c.ClassService.GetClassByID(id)
	if err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, class)
}

// GetClasses godoc
// @Summary 班级分页列表
// @Tags 班级
// @Produce  json
// @Param   keyword query string false "班级名关键字"
// @Param   ownerId query int false "按创建者过滤"
// @Param   page query int false "页码（0起）"
// @Param   size query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /api/classes [get]
func (c *ClassController) GetClasses(ctx *gin.Context) {
	if ownerID, ok := parseUintQuery(ctx, "ownerId"); ok {
		classes, err := c.ClassService.GetClassesByOwner(ownerID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, classes)
		return
	}

	page, size := util.Pagination(ctx)
	classes, total, err := c.ClassService.GetClassesPaged(ctx.Query("keyword"), page, size)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: classes, Total: total, Page: page, Limit: size})
}

// UpdateClass godoc
// @Summary 更新班级
// @Tags 班级
// @Accept  json
// @Produce  json
// @Param   id path int true "班级ID"
// @Param   body body ClassRequest true "班级信息"
// @Success 200 {object} util.Response{data=model.ClassEntity}
// @Security BearerAuth
// @Router /api/classes/{id} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	var req ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.GetClassByID(id)
	if err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	class.ClassName = req.ClassName
	class.Description = req.Description
	class.Password = req.Password
	if err := c.ClassService.UpdateClass(class); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, class)
}

// DeleteClass godoc
// @Summary 删除班级
// @Tags 班级
// @Produce  json
// @Param   id path int true "班级ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	if err := c.ClassService.DeleteClass(id); err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "班级已删除"})
}

type JoinClassRequest struct {
	ClassID  uint   `json:"classId" binding:"required"`
	UserID   uint   `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// JoinClass godoc
// @Summary 加入班级
// @Description 凭口令加入班级
// @Tags 班级
// @Accept  json
// @Produce  json
// @Param   body body JoinClassRequest true "入班请求"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "口令错误"
// @Failure 409 {object} util.Response "已在班级中"
// @Security BearerAuth
// @Router /api/class-users/join [post]
func (c *ClassController) JoinClass(ctx *gin.Context) {
	var req JoinClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ClassService.JoinClass(req.ClassID, req.UserID, req.Password); err != nil {
		switch {
		case errors.Is(err, util.ErrClassNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrWrongClassPassword):
			util.Error(ctx, http.StatusForbidden, err.Error())
		case errors.Is(err, util.ErrAlreadyInClass):
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "已加入班级"})
}

// LeaveClass godoc
// @Summary 退出班级
// @Tags 班级
// @Produce  json
// @Param   classId query int true "班级ID"
// @Param   userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/class-users [delete]
func (c *ClassController) LeaveClass(ctx *gin.Context) {
	classID, ok := parseUintQuery(ctx, "classId")
	if !ok {
		util.BadRequest(ctx, "invalid class id")
		return
	}
	userID, ok := parseUintQuery(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := c.ClassService.LeaveClass(classID, userID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "已退出班级"})
}

// GetClassMembers godoc
// @Summary 班级成员
// @Tags 班级
// @Produce  json
// @Param   classId path int true "班级ID"
// @Success 200 {object} util.Response{data=[]model.User}
// @Security BearerAuth
// @Router /api/class-users/{classId} [get]
func (c *ClassController) GetClassMembers(ctx *gin.Context) {
	classID, ok := util.ParseUintParam(ctx, "classId")
	if !ok {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	members, err := c.ClassService.GetClassMembers(classID)
	if err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, members)
}

// GetUserClasses godoc
// @Summary 用户加入的班级
// @Tags 班级
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=[]model.ClassEntity}
// @Security BearerAuth
// @Router /api/class-users/user/{userId} [get]
func (c *ClassController) GetUserClasses(ctx *gin.Context) {
	userID, ok := util.ParseUintParam(ctx, "userId")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	classes, err := c.ClassService.GetUserClasses(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, classes)
}

// GetMemberCount godoc
// @Summary 班级人数
// @Tags 班级
// @Produce  json
// @Param   classId path int true "班级ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/class-users/{classId}/count [get]
func (c *ClassController) GetMemberCount(ctx *gin.Context) {
	classID, ok := util.ParseUintParam(ctx, "classId")
	if !ok {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	count, err := c.ClassService.GetMemberCount(classID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": count})
}

type ShareListRequest struct {
	ClassID uint `json:"classId" binding:"required"`
	ListID  uint `json:"listId" binding:"required"`
}

// ShareList godoc
// @Summary 共享单词集到班级
// @Tags 班级
// @Accept  json
// @Produce  json
// @Param   body body ShareListRequest true "共享请求"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/class-document-lists [post]
func (c *ClassController) ShareList(ctx *gin.Context) {
	var req ShareListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ClassService.ShareListToClass(req.ClassID, req.ListID); err != nil {
		if errors.Is(err, util.ErrClassNotFound) || errors.Is(err, util.ErrDocumentListNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "已共享到班级"})
}

// UnshareList godoc
// @Summary 取消班级共享
// @Tags 班级
// @Produce  json
// @Param   classId query int true "班级ID"
// @Param   listId query int true "单词集ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/class-document-lists [delete]
func (c *ClassController) UnshareList(ctx *gin.Context) {
	classID, ok := parseUintQuery(ctx, "classId")
	if !ok {
		util.BadRequest(ctx, "invalid class id")
		return
	}
	listID, ok := parseUintQuery(ctx, "listId")
	if !ok {
		util.BadRequest(ctx, "invalid list id")
		return
	}

	if err := c.ClassService.UnshareListFromClass(classID, listID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "已取消共享"})
}

// GetClassLists godoc
// @Summary 班级共享的单词集
// @Tags 班级
// @Produce  json
// @Param   classId path int true "班级ID"
// @Success 200 {object} util.Response{data=[]model.DocumentList}
// @Security BearerAuth
// @Router /api/class-document-lists/{classId} [get]
func (c *ClassController) GetClassLists(ctx *gin.Context) {
	classID, ok := util.ParseUintParam(ctx, "classId")
	if !ok {
		util.BadRequest(ctx, "invalid class id")
		return
	}

	lists, err := c.ClassService.GetClassLists(classID)
	if err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, lists)
}
