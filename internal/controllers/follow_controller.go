package controllers

import (
	"errors"
	"net/http"

	"github.com/TsunaGram/tsunagram_backend/internal/models"
	"github.com/TsunaGram/tsunagram_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// FollowController フォロー関係に関するコントローラー
type FollowController struct {
	followService services.FollowService
}

// NewFollowController FollowControllerを作成
func NewFollowController(followService services.FollowService) *FollowController {
	return &FollowController{
		followService: followService,
	}
}

// FollowRequest フォロー・フォロー解除リクエスト
type FollowRequest struct {
	FollowedUserID uint `json:"followed_user_id" binding:"required"`
}

// Follow フォロー関係を作成
func (c *FollowController) Follow(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	var req FollowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	follow, err := c.followService.Follow(u.ID, req.FollowedUserID)
	if err != nil {
		if errors.Is(err, services.ErrSelfFollow) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "フォローに失敗しました"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"follow_id": follow.ID})
}

// Unfollow フォロー関係を削除。存在しない場合も200を返す
func (c *FollowController) Unfollow(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	var req FollowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.followService.Unfollow(u.ID, req.FollowedUserID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "フォロー解除に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "フォローを解除しました"})
}

// ListFollowing 自分がフォローしているエッジ一覧を取得
func (c *FollowController) ListFollowing(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	follows, err := c.followService.ListFollowing(u.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "フォロー一覧の取得に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, follows)
}

// ListFollowers 自分をフォローしているエッジ一覧を取得
func (c *FollowController) ListFollowers(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	follows, err := c.followService.ListFollowers(u.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "フォロワー一覧の取得に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, follows)
}

// ListMutual 相互フォローのエッジ一覧を取得
func (c *FollowController) ListMutual(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	follows, err := c.followService.ListMutual(u.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "相互フォロー一覧の取得に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, follows)
}
