package services

import (
	"errors"
	"time"

	"github.com/TsunaGram/tsunagram_backend/internal/config"
	"github.com/TsunaGram/tsunagram_backend/internal/models"
	"github.com/TsunaGram/tsunagram_backend/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// 認証関連のエラー。コントローラー側で errors.Is により
// ステータスコードへ変換する。
var (
	// ErrEmailTaken メールアドレスが既に登録されている
	ErrEmailTaken = errors.New("このメールアドレスは既に使用されています")
	// ErrUserNotFound ユーザーが存在しない
	ErrUserNotFound = errors.New("ユーザーが見つかりません")
	// ErrInvalidCredentials パスワードが一致しない
	ErrInvalidCredentials = errors.New("パスワードが正しくありません")
	// ErrInvalidToken トークンが無効（署名不正・不正な形式・期限切れ）
	ErrInvalidToken = errors.New("無効なトークンです")
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(name, nickname, email, password, avatar string) (*models.User, error)
	Login(email, password string) (string, error)
	GenerateToken(userID uint) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Claims JWTのペイロード
type Claims struct {
	UserID uint `json:"id"`
	jwt.StandardClaims
}

// Register ユーザー登録
func (s *authService) Register(name, nickname, email, password, avatar string) (*models.User, error) {
	// メールアドレスが既に使用されているか確認
	existingUser, err := s.userRepo.FindByEmail(email)
	if err == nil && existingUser != nil {
		return nil, ErrEmailTaken
	}

	// パスワードをハッシュ化（コスト係数10）
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Nickname: nickname,
		Email:    email,
		Password: string(hashedPassword),
		Avatar:   avatar,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login メールアドレスとパスワードで認証し、JWTトークンを返す
func (s *authService) Login(email, password string) (string, error) {
	// ユーザーを検索
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", ErrUserNotFound
	}

	// パスワードを検証。内部エラーも不一致も同じ扱いにする
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(user.ID)
}

// GenerateToken JWTトークンを生成
func (s *authService) GenerateToken(userID uint) (string, error) {
	// トークンの有効期限を設定（デフォルト1時間）
	expirationTime := time.Now().Add(s.config.Auth.TokenExpiry)

	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken トークンを検証し、ペイロードを返す
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 署名方法を確認
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})

	// 期限切れ・署名不正・不正な形式はすべて無効トークンとして扱う
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetUserFromToken トークンからユーザーを取得
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
