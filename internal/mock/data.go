package mock

import (
	"github.com/TsunaGram/tsunagram_backend/internal/models"
)

// 開発・テスト用のシードデータ

// Users モックユーザー
var Users = []models.User{
	{
		ID:       1,
		Name:     "John Doe",
		Nickname: "johndoe",
		Email:    "john@example.com",
		Password: "$2a$10$eDxe8U2bkJFVt1C1vfVJJePg8GVyp5eZZP/EaQ/2e8LqNUvpBtqOW", // "password"
		Avatar:   "https://via.placeholder.com/150",
	},
	{
		ID:       2,
		Name:     "Jane Smith",
		Nickname: "janesmith",
		Email:    "jane@example.com",
		Password: "$2a$10$eDxe8U2bkJFVt1C1vfVJJePg8GVyp5eZZP/EaQ/2e8LqNUvpBtqOW", // "password"
		Avatar:   "https://via.placeholder.com/150",
	},
	{
		ID:       3,
		Name:     "Taro Yamada",
		Nickname: "taro",
		Email:    "taro@example.com",
		Password: "$2a$10$eDxe8U2bkJFVt1C1vfVJJePg8GVyp5eZZP/EaQ/2e8LqNUvpBtqOW", // "password"
		Avatar:   "",
	},
}

// Posts モック投稿
var Posts = []models.Post{
	{ID: 1, Title: "はじめての投稿", Content: "よろしくお願いします", UserID: 1},
	{ID: 2, Title: "今日の天気", Content: "晴れでした", UserID: 1},
	{ID: 3, Title: "Hello", Content: "First post here", UserID: 2},
}

// Follows モックフォロー関係（1⇄2は相互、1→3は片方向）
var Follows = []models.Follow{
	{ID: 1, UserID: 1, FollowedUserID: 2},
	{ID: 2, UserID: 2, FollowedUserID: 1},
	{ID: 3, UserID: 1, FollowedUserID: 3},
}
