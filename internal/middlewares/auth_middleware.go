package middlewares

import (
	"net/http"
	"strings"

	"github.com/TsunaGram/tsunagram_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 認証ミドルウェア。
// Authorizationヘッダーの Bearer トークンを検証し、認証済みユーザーを
// コンテキストに格納する。ここでは本人確認のみを行い、リソースごとの
// 所有チェックは各ハンドラーのクエリ条件に任せる。
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Authorizationヘッダーを取得
		authHeader := ctx.GetHeader("Authorization")

		// ヘッダーがない、またはBearer形式でない場合はトークン未提供として扱う
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "トークンが提供されていません"})
			ctx.Abort()
			return
		}

		// トークンを抽出して検証
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "無効なトークンです"})
			ctx.Abort()
			return
		}

		// ユーザーをコンテキストに保存
		ctx.Set("user", user)
		ctx.Next()
	}
}
