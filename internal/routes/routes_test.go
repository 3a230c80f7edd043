package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/TsunaGram/tsunagram_backend/internal/config"
	"github.com/TsunaGram/tsunagram_backend/internal/mock"
	"github.com/TsunaGram/tsunagram_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
	}
}

// newTestServer sqlmockをデータベースとして使うルーターを作成する
func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return SetupRouter(testConfig(), db), dbMock
}

func mockUserRows(ids ...int) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "nombre", "nickname", "mail", "password", "avatar"})
	for _, id := range ids {
		u := mock.Users[id-1]
		rows.AddRow(u.ID, u.Name, u.Nickname, u.Email, u.Password, u.Avatar)
	}
	return rows
}

// ─────────────────────────────────────────────
// ルート登録
// ─────────────────────────────────────────────

// expectedRoutes SetupRouterが登録すべき全ルート
var expectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/health"},
	{http.MethodPost, "/users/register"},
	{http.MethodPost, "/users/login"},
	{http.MethodGet, "/users"},
	{http.MethodGet, "/users/me"},
	{http.MethodPut, "/users/me"},
	{http.MethodPost, "/users/me/avatar"},
	{http.MethodGet, "/users/1"},
	{http.MethodPost, "/posts"},
	{http.MethodGet, "/posts"},
	{http.MethodGet, "/posts/1"},
	{http.MethodPut, "/posts/1"},
	{http.MethodDelete, "/posts/1"},
	{http.MethodGet, "/posts/user-posts/1"},
	{http.MethodPost, "/following"},
	{http.MethodDelete, "/following"},
	{http.MethodGet, "/following/following"},
	{http.MethodGet, "/following/followers"},
	{http.MethodGet, "/following/mutual"},
}

func TestSetupRouter_RegistersAllRoutes(t *testing.T) {
	router, _ := newTestServer(t)

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// 認証保護されたルートは401を返すが、それでもルートは存在する
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	router, _ := newTestServer(t)

	for _, path := range []string{"/posts", "/following/following", "/following/mutual"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

// ─────────────────────────────────────────────
// ログインフロー
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, dbMock := newTestServer(t)

	// 検証可能なハッシュをその場で作る（テストなので最小コスト）
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	u := mock.Users[0]
	dbMock.ExpectQuery("SELECT (.+) FROM `usuarios` WHERE mail").
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "nickname", "mail", "password", "avatar"}).
			AddRow(u.ID, u.Name, u.Nickname, u.Email, string(hash), u.Avatar))

	body, _ := json.Marshal(gin.H{"email": "john@example.com", "password": "password"})
	req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// 返されたトークンは同じシークレットで検証できる
	authService := services.NewAuthService(nil, testConfig())
	claims, err := authService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, mock.Users[0].ID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, dbMock := newTestServer(t)

	dbMock.ExpectQuery("SELECT (.+) FROM `usuarios` WHERE mail").
		WithArgs("john@example.com").
		WillReturnRows(mockUserRows(1))

	body, _ := json.Marshal(gin.H{"email": "john@example.com", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	router, dbMock := newTestServer(t)

	dbMock.ExpectQuery("SELECT (.+) FROM `usuarios` WHERE mail").
		WithArgs("nobody@example.com").
		WillReturnRows(mockUserRows())

	body, _ := json.Marshal(gin.H{"email": "nobody@example.com", "password": "password"})
	req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// 認証済みフロー
// ─────────────────────────────────────────────

// authedRequest 有効なトークン付きのリクエストを作成し、
// ミドルウェアのユーザー読み込みクエリを期待に積む
func authedRequest(t *testing.T, dbMock sqlmock.Sqlmock, method, path string, body []byte) *http.Request {
	t.Helper()

	authService := services.NewAuthService(nil, testConfig())
	token, err := authService.GenerateToken(1)
	require.NoError(t, err)

	dbMock.ExpectQuery("SELECT (.+) FROM `usuarios` WHERE `usuarios`.`id`").
		WithArgs(1).
		WillReturnRows(mockUserRows(1))

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestMutualFollow_EndToEnd(t *testing.T) {
	router, dbMock := newTestServer(t)

	// 2つの読み取りは並行に発行されるため順不同で照合する
	dbMock.MatchExpectationsInOrder(false)

	req := authedRequest(t, dbMock, http.MethodGet, "/following/mutual", nil)

	// フォロー中 {1→2, 1→3}、フォロワー {2→1}
	dbMock.ExpectQuery("SELECT (.+) FROM `following` WHERE id_usuario =").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_usuario", "id_usuario_seguido"}).
			AddRow(1, 1, 2).
			AddRow(3, 1, 3))
	dbMock.ExpectQuery("SELECT (.+) FROM `following` WHERE id_usuario_seguido").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_usuario", "id_usuario_seguido"}).
			AddRow(2, 2, 1))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// 相互フォローは 1→2 のみ
	var mutual []struct {
		UserID         uint `json:"user_id"`
		FollowedUserID uint `json:"followed_user_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mutual))
	require.Len(t, mutual, 1)
	assert.Equal(t, uint(1), mutual[0].UserID)
	assert.Equal(t, uint(2), mutual[0].FollowedUserID)
}

func TestSelfFollow_RejectedBeforeWrite(t *testing.T) {
	router, dbMock := newTestServer(t)

	body, _ := json.Marshal(gin.H{"followed_user_id": 1})
	req := authedRequest(t, dbMock, http.MethodPost, "/following", body)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// INSERTの期待を積んでいないので、書き込みが起これば照合に失敗する
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestDeletePost_NonexistentStillConfirms(t *testing.T) {
	router, dbMock := newTestServer(t)

	req := authedRequest(t, dbMock, http.MethodDelete, "/posts/99", nil)

	// 存在しない投稿の削除は0行削除となるが、同じ200確認を返す
	dbMock.ExpectBegin()
	dbMock.ExpectExec("DELETE FROM `posts` WHERE").
		WithArgs(uint(99), uint(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectCommit()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPost_NotOwnedReturns404(t *testing.T) {
	router, dbMock := newTestServer(t)

	req := authedRequest(t, dbMock, http.MethodGet, "/posts/5", nil)

	// 別ユーザーの投稿はスコープクエリで0行となる
	dbMock.ExpectQuery("SELECT (.+) FROM `posts` WHERE id = (.+) AND id_usuario = ").
		WithArgs(uint(5), uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "titulo", "contenido", "id_usuario"}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListUsers_ExcludesPasswordHash(t *testing.T) {
	router, dbMock := newTestServer(t)

	dbMock.ExpectQuery("SELECT (.+) FROM `usuarios`").
		WillReturnRows(mockUserRows(1, 2))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}
