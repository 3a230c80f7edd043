package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/TsunaGram/tsunagram_backend/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// アバター画像の変換設定。プロフィール表示用なので512pxまでに縮小し、
// 品質80で圧縮する。
const avatarTransformation = "c_limit,w_512,h_512,q_80"

// CloudinaryService アバター画像ストレージとの連携を管理するサービス
type CloudinaryService interface {
	UploadAvatar(file multipart.File, publicID string) (string, error)
	DeleteAvatar(publicID string) error
}

type cloudinaryService struct {
	cld *cloudinary.Cloudinary
	cfg *config.Config
}

// NewCloudinaryService CloudinaryServiceを作成
func NewCloudinaryService(cfg *config.Config) (CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &cloudinaryService{
		cld: cld,
		cfg: cfg,
	}, nil
}

// UploadAvatar アバター画像をアップロードし、配信URLを返す。
// publicIDはユーザーごとに固定なので、再アップロードで置き換えられる。
func (s *cloudinaryService) UploadAvatar(file multipart.File, publicID string) (string, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return "", fmt.Errorf("ファイルの読み込みに失敗しました: %v", err)
	}

	result, err := s.cld.Upload.Upload(context.Background(), buf, uploader.UploadParams{
		Folder:         s.cfg.Cloudinary.Folder,
		PublicID:       publicID,
		ResourceType:   "image",
		Transformation: avatarTransformation,
	})
	if err != nil {
		return "", fmt.Errorf("アバターのアップロードに失敗しました: %v", err)
	}

	return result.SecureURL, nil
}

// DeleteAvatar アバター画像を削除
func (s *cloudinaryService) DeleteAvatar(publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := s.cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: fmt.Sprintf("%s/%s", s.cfg.Cloudinary.Folder, publicID),
	})
	if err != nil {
		return fmt.Errorf("アバターの削除に失敗しました: %v", err)
	}

	return nil
}
