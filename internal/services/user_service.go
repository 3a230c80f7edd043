package services

import (
	"errors"
	"mime/multipart"

	"github.com/TsunaGram/tsunagram_backend/internal/models"
	"github.com/TsunaGram/tsunagram_backend/internal/repository"
)

// ErrAvatarStorageDisabled アバターストレージが設定されていない
var ErrAvatarStorageDisabled = errors.New("アバターストレージが設定されていません")

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	List() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, name, avatar string) error
	UpdateAvatar(userID uint, file multipart.File, fileName string) (string, error)
}

// userService UserServiceの実装
type userService struct {
	userRepo          repository.UserRepository
	cloudinaryService CloudinaryService
}

// NewUserService UserServiceを作成
func NewUserService(userRepo repository.UserRepository, cloudinaryService CloudinaryService) UserService {
	return &userService{
		userRepo:          userRepo,
		cloudinaryService: cloudinaryService,
	}
}

// List 全ユーザーを取得
func (s *userService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// GetByID IDでユーザーを取得
func (s *userService) GetByID(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// UpdateProfile プロフィール（名前とアバター）を更新
func (s *userService) UpdateProfile(userID uint, name, avatar string) error {
	return s.userRepo.UpdateProfile(userID, name, avatar)
}

// UpdateAvatar アバター画像をアップロードし、プロフィールのアバターURLを更新
func (s *userService) UpdateAvatar(userID uint, file multipart.File, publicID string) (string, error) {
	if s.cloudinaryService == nil {
		return "", ErrAvatarStorageDisabled
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}

	// 置き換えの場合は旧画像を先に破棄する。publicIDはユーザーごとに
	// 固定なので、旧アバターのIDはそのまま分かる。外部URLを設定している
	// ユーザーでは画像が存在しないこともあるため、削除失敗は致命的にしない
	if user.Avatar != "" {
		_ = s.cloudinaryService.DeleteAvatar(publicID)
	}

	avatarURL, err := s.cloudinaryService.UploadAvatar(file, publicID)
	if err != nil {
		return "", err
	}

	// 名前は変更しないのでアバターのみ更新
	if err := s.userRepo.UpdateProfile(userID, user.Name, avatarURL); err != nil {
		return "", err
	}

	return avatarURL, nil
}
