package routes

import (
	"log"

	"github.com/TsunaGram/tsunagram_backend/internal/config"
	"github.com/TsunaGram/tsunagram_backend/internal/controllers"
	"github.com/TsunaGram/tsunagram_backend/internal/middlewares"
	"github.com/TsunaGram/tsunagram_backend/internal/repository"
	"github.com/TsunaGram/tsunagram_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// アバターストレージを作成（設定されている場合のみ）
	var cloudinaryService services.CloudinaryService
	if cfg.Cloudinary.Enabled {
		var err error
		cloudinaryService, err = services.NewCloudinaryService(cfg)
		if err != nil {
			log.Fatalf("Cloudinaryサービスの初期化に失敗しました: %v", err)
		}
	}

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo, cloudinaryService)
	postService := services.NewPostService(postRepo)
	followService := services.NewFollowService(followRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)
	followController := controllers.NewFollowController(followService)
	healthController := controllers.NewHealthController(db)

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// ヘルスチェックルート（認証不要）
	r.GET("/health", healthController.Check)

	// ユーザールート
	users := r.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.GET("", userController.List)
		users.GET("/me", authMiddleware, userController.GetMe)
		users.PUT("/me", authMiddleware, userController.UpdateProfile)
		users.POST("/me/avatar", authMiddleware, userController.UpdateAvatar)
		users.GET("/:id", userController.GetByID)
	}

	// 投稿ルート（すべて認証が必要）
	posts := r.Group("/posts", authMiddleware)
	{
		posts.POST("", postController.Create)
		posts.GET("", postController.List)
		posts.GET("/:id", postController.GetByID)
		posts.PUT("/:id", postController.Update)
		posts.DELETE("/:id", postController.Delete)
		posts.GET("/user-posts/:id", postController.ListByUser)
	}

	// フォロールート（すべて認証が必要）
	following := r.Group("/following", authMiddleware)
	{
		following.POST("", followController.Follow)
		following.DELETE("", followController.Unfollow)
		following.GET("/following", followController.ListFollowing)
		following.GET("/followers", followController.ListFollowers)
		following.GET("/mutual", followController.ListMutual)
	}

	return r
}
