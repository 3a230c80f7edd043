package repository

import (
	"github.com/TsunaGram/tsunagram_backend/internal/models"

	"gorm.io/gorm"
)

// PostRepository 投稿に関するデータベース操作を行うインターフェース
type PostRepository interface {
	Create(post *models.Post) error
	List() ([]models.Post, error)
	FindByIDAndOwner(id, ownerID uint) (*models.Post, error)
	UpdateByIDAndOwner(id, ownerID uint, title, content string) error
	DeleteByIDAndOwner(id, ownerID uint) error
	ListByUser(userID uint) ([]models.Post, error)
}

// postRepository PostRepositoryの実装
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository PostRepositoryを作成
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 新しい投稿を作成
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// List 全投稿を取得
func (r *postRepository) List() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByIDAndOwner IDと所有者でスコープした投稿を1件取得
func (r *postRepository) FindByIDAndOwner(id, ownerID uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("id = ? AND id_usuario = ?", id, ownerID).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateByIDAndOwner IDと所有者でスコープして更新。
// 所有者が一致しない場合は0行更新となり、エラーにはならない。
func (r *postRepository) UpdateByIDAndOwner(id, ownerID uint, title, content string) error {
	return r.db.Model(&models.Post{}).
		Where("id = ? AND id_usuario = ?", id, ownerID).
		Updates(map[string]interface{}{
			"titulo":    title,
			"contenido": content,
		}).Error
}

// DeleteByIDAndOwner IDと所有者でスコープして削除。
// 所有者が一致しない場合は0行削除となり、エラーにはならない。
func (r *postRepository) DeleteByIDAndOwner(id, ownerID uint) error {
	return r.db.Where("id = ? AND id_usuario = ?", id, ownerID).Delete(&models.Post{}).Error
}

// ListByUser 指定ユーザーの投稿一覧を取得
func (r *postRepository) ListByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("id_usuario = ?", userID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
