package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/TsunaGram/tsunagram_backend/internal/models"
	"github.com/TsunaGram/tsunagram_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController 投稿に関するコントローラー
type PostController struct {
	postService services.PostService
}

// NewPostController PostControllerを作成
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// PostRequest 投稿の作成・更新リクエスト
type PostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Create 新しい投稿を作成
func (c *PostController) Create(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := c.postService.Create(u.ID, req.Title, req.Content)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の作成に失敗しました"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"post_id": post.ID})
}

// List 全投稿を取得（所有者によるスコープなし）
func (c *PostController) List(ctx *gin.Context) {
	posts, err := c.postService.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "投稿一覧の取得に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// GetByID 投稿を1件取得。呼び出し元が所有者でない場合は404
func (c *PostController) GetByID(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	post, err := c.postService.GetByIDAndOwner(uint(id), u.ID)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Update 投稿を更新。所有者が一致しない場合は何も起こらず200を返す
func (c *PostController) Update(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.postService.Update(uint(id), u.ID, req.Title, req.Content); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の更新に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "投稿を更新しました"})
}

// Delete 投稿を削除。所有者が一致しない場合も200を返す
func (c *PostController) Delete(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}
	u := user.(*models.User)

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	if err := c.postService.Delete(uint(id), u.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の削除に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "投稿を削除しました"})
}

// ListByUser 指定ユーザーの投稿一覧を取得（呼び出し元の制限なし）
func (c *PostController) ListByUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return
	}

	posts, err := c.postService.ListByUser(uint(id))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "投稿一覧の取得に失敗しました"})
		return
	}

	ctx.JSON(http.StatusOK, posts)
}
