package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{UserService: userService, StorageService: storageService}
}

// GetUser godoc
// @Summary 查询用户
// @Tags 用户
// @Produce  json
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	user, err := c.UserService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

type UpdateProfileRequest struct {
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	AvatarImage string `json:"avatarImage"`
}

// UpdateProfile godoc
// @Summary 更新资料
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   id path int true "用户ID"
// @Param   body body UpdateProfileRequest true "资料"
// @Success 200 {object} util.Response{data=model.User}
// @Security BearerAuth
// @Router /api/users/{id} [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(id, req.FullName, req.DateOfBirth, req.Gender, req.AvatarImage)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword godoc
// @Summary 修改密码
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   id path int true "用户ID"
// @Param   body body ChangePasswordRequest true "新旧密码"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "原密码错误"
// @Security BearerAuth
// @Router /api/users/{id}/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Error(ctx, 401, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "密码已修改"})
}

// UploadAvatar godoc
// @Summary 上传头像
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path int true "用户ID"
// @Param   file formData file true "头像文件"
// @Success 200 {object} util.Response{data=object}
// @Security BearerAuth
// @Router /api/users/{id}/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "缺少文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("avatars/%d/%s%s", id, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	user, err := c.UserService.UpdateProfile(id, "", "", "", url)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatarImage": user.AvatarImage, "uploadedAt": time.Now()})
}

// GetLearners godoc
// @Summary 学员分页列表
// @Description 管理端按姓名或邮箱搜索学员
// @Tags 用户
// @Produce  json
// @Param   keyword query string false "搜索关键字"
// @Param   page query int false "页码（0起）"
// @Param   size query int false "每页条数"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Security BearerAuth
// @Router /api/users [get]
func (c *UserController) GetLearners(ctx *gin.Context) {
	page, size := util.Pagination(ctx)
	keyword := ctx.Query("keyword")

	users, total, err := c.UserService.GetLearnersPaged(keyword, page, size)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: size})
}

// GetUserByEmail godoc
// @Summary 按邮箱查询用户
// @Tags 用户
// @Produce  json
// @Param   email query string true "邮箱"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "用户不存在"
// @Security BearerAuth
// @Router /api/users/by-email [get]
func (c *UserController) GetUserByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		util.BadRequest(ctx, "email is required")
		return
	}

	user, err := c.UserService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// FreezeUser godoc
// @Summary 冻结用户
// @Tags 用户
// @Produce  json
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/users/{id}/freeze [put]
func (c *UserController) FreezeUser(ctx *gin.Context) {
	c.setStatus(ctx, c.UserService.FreezeUser, "用户已冻结")
}

// UnfreezeUser godoc
// @Summary 解冻用户
// @Tags 用户
// @Produce  json
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/users/{id}/unfreeze [put]
func (c *UserController) UnfreezeUser(ctx *gin.Context) {
	c.setStatus(ctx, c.UserService.UnfreezeUser, "用户已解冻")
}

func (c *UserController) setStatus(ctx *gin.Context, fn func(uint) error, message string) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := fn(id); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": message})
}

type BulkStatusRequest struct {
	UserIDs []uint `json:"userIds" binding:"required"`
}

// FreezeUsersBulk godoc
// @Summary 批量冻结
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   body body BulkStatusRequest true "用户ID列表"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/users/freeze [put]
func (c *UserController) FreezeUsersBulk(ctx *gin.Context) {
	var req BulkStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.FreezeUsersBulk(req.UserIDs); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": len(req.UserIDs)})
}

// UnfreezeUsersBulk godoc
// @Summary 批量解冻
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   body body BulkStatusRequest true "用户ID列表"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/users/unfreeze [put]
func (c *UserController) UnfreezeUsersBulk(ctx *gin.Context) {
	var req BulkStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UnfreezeUsersBulk(req.UserIDs); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"count": len(req.UserIDs)})
}

// DeleteUser godoc
// @Summary 删除用户
// @Tags 用户
// @Produce  json
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	if err := c.UserService.DeleteUser(id); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "用户已删除"})
}
