package services

import (
	"errors"

	"github.com/TsunaGram/tsunagram_backend/internal/models"
	"github.com/TsunaGram/tsunagram_backend/internal/repository"

	"gorm.io/gorm"
)

// ErrPostNotFound 投稿が存在しないか、呼び出し元の所有ではない
var ErrPostNotFound = errors.New("投稿が見つかりません")

// PostService 投稿に関するサービスインターフェース
type PostService interface {
	Create(userID uint, title, content string) (*models.Post, error)
	List() ([]models.Post, error)
	GetByIDAndOwner(id, ownerID uint) (*models.Post, error)
	Update(id, ownerID uint, title, content string) error
	Delete(id, ownerID uint) error
	ListByUser(userID uint) ([]models.Post, error)
}

// postService PostServiceの実装
type postService struct {
	postRepo repository.PostRepository
}

// NewPostService PostServiceを作成
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// Create 新しい投稿を作成
func (s *postService) Create(userID uint, title, content string) (*models.Post, error) {
	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return post, nil
}

// List 全投稿を取得
func (s *postService) List() ([]models.Post, error) {
	return s.postRepo.List()
}

// GetByIDAndOwner 投稿を1件取得。所有者でない場合も存在しない扱いにする
func (s *postService) GetByIDAndOwner(id, ownerID uint) (*models.Post, error) {
	post, err := s.postRepo.FindByIDAndOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Update 投稿を更新。所有者が一致しない場合は何も更新されない
func (s *postService) Update(id, ownerID uint, title, content string) error {
	return s.postRepo.UpdateByIDAndOwner(id, ownerID, title, content)
}

// Delete 投稿を削除。所有者が一致しない場合は何も削除されない
func (s *postService) Delete(id, ownerID uint) error {
	return s.postRepo.DeleteByIDAndOwner(id, ownerID)
}

// ListByUser 指定ユーザーの投稿一覧を取得
func (s *postService) ListByUser(userID uint) ([]models.Post, error) {
	return s.postRepo.ListByUser(userID)
}
