package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/TsunaGram/tsunagram_backend/internal/models"
	"github.com/TsunaGram/tsunagram_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// UpdateProfileRequest プロフィール更新リクエスト
type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

// List 全ユーザーを取得。パスワードハッシュはレスポンスに含まれない
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userService.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザー一覧の取得に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetByID IDでユーザーを取得
func (c *UserController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	user, err := c.userService.GetByID(uint(id))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "ユーザーが見つかりません"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetMe 自分のユーザー情報を取得
func (c *UserController) GetMe(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile 自分のプロフィール（名前とアバター）を更新
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.userService.UpdateProfile(u.ID, req.Name, req.Avatar); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの更新に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "プロフィールを更新しました"})
}

// UpdateAvatar アバター画像をアップロードして更新
func (c *UserController) UpdateAvatar(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	// マルチパートフォームからファイルを取得
	file, _, err := ctx.Request.FormFile("avatar")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "アバター画像が必要です"})
		return
	}
	defer file.Close()

	avatarURL, err := c.userService.UpdateAvatar(u.ID, file, fmt.Sprintf("user_%d", u.ID))
	if err != nil {
		if errors.Is(err, services.ErrAvatarStorageDisabled) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "アバターの更新に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "アバターを更新しました",
		"avatar":  avatarURL,
	})
}
