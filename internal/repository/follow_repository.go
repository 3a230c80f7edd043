package repository

import (
	"github.com/TsunaGram/tsunagram_backend/internal/models"

	"gorm.io/gorm"
)

// FollowRepository フォロー関係に関するデータベース操作を行うインターフェース
type FollowRepository interface {
	Create(follow *models.Follow) error
	Delete(followerID, followedID uint) error
	ListFollowing(userID uint) ([]models.Follow, error)
	ListFollowers(userID uint) ([]models.Follow, error)
}

// followRepository FollowRepositoryの実装
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository FollowRepositoryを作成
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create 新しいフォロー関係を作成
func (r *followRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// Delete フォロー関係を削除。存在しない場合も0行削除でエラーにはならない。
func (r *followRepository) Delete(followerID, followedID uint) error {
	return r.db.Where("id_usuario = ? AND id_usuario_seguido = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

// ListFollowing 指定ユーザーがフォローしているエッジ一覧を取得
func (r *followRepository) ListFollowing(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.Where("id_usuario = ?", userID).Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}

// ListFollowers 指定ユーザーをフォローしているエッジ一覧を取得
func (r *followRepository) ListFollowers(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.Where("id_usuario_seguido = ?", userID).Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}
