package models

// 既存のMySQLスキーマ（スペイン語の列名を持つレガシーテーブル）に
// そのまま接続するため、テーブル名とカラム名をタグで明示する。
// created_at / updated_at カラムはスキーマに存在しないため定義しない。

// User ユーザーモデル
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"column:nombre;not null"`
	Nickname string `json:"nickname" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"column:mail;uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcryptハッシュ。レスポンスには含めない
	Avatar   string `json:"avatar"`

	// リレーション
	Posts []Post `json:"-" gorm:"foreignKey:UserID"`
}

// TableName テーブル名指定
func (User) TableName() string {
	return "usuarios"
}

// Post 投稿モデル
type Post struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Title   string `json:"title" gorm:"column:titulo;not null"`
	Content string `json:"content" gorm:"column:contenido"`
	UserID  uint   `json:"user_id" gorm:"column:id_usuario;index;not null"`

	// リレーション
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName テーブル名指定
func (Post) TableName() string {
	return "posts"
}

// Follow フォロー関係モデル（UserID が FollowedUserID をフォローする有向エッジ）
type Follow struct {
	ID             uint `json:"id" gorm:"primaryKey"`
	UserID         uint `json:"user_id" gorm:"column:id_usuario;uniqueIndex:idx_follower_followed;not null"`
	FollowedUserID uint `json:"followed_user_id" gorm:"column:id_usuario_seguido;uniqueIndex:idx_follower_followed;not null"`

	// リレーション
	User         *User `json:"-" gorm:"foreignKey:UserID"`
	FollowedUser *User `json:"-" gorm:"foreignKey:FollowedUserID"`
}

// TableName テーブル名指定
func (Follow) TableName() string {
	return "following"
}
