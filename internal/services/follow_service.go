package services

import (
	"errors"
	"sync"

	"github.com/TsunaGram/tsunagram_backend/internal/models"
	"github.com/TsunaGram/tsunagram_backend/internal/repository"
)

// ErrSelfFollow 自分自身はフォローできない
var ErrSelfFollow = errors.New("自分自身をフォローすることはできません")

// FollowService フォロー関係に関するサービスインターフェース
type FollowService interface {
	Follow(followerID, followedID uint) (*models.Follow, error)
	Unfollow(followerID, followedID uint) error
	ListFollowing(userID uint) ([]models.Follow, error)
	ListFollowers(userID uint) ([]models.Follow, error)
	ListMutual(userID uint) ([]models.Follow, error)
}

// followService FollowServiceの実装
type followService struct {
	followRepo repository.FollowRepository
}

// NewFollowService FollowServiceを作成
func NewFollowService(followRepo repository.FollowRepository) FollowService {
	return &followService{followRepo: followRepo}
}

// Follow フォロー関係を作成。自己フォローは書き込み前に拒否する
func (s *followService) Follow(followerID, followedID uint) (*models.Follow, error) {
	if followerID == followedID {
		return nil, ErrSelfFollow
	}

	follow := &models.Follow{
		UserID:         followerID,
		FollowedUserID: followedID,
	}

	if err := s.followRepo.Create(follow); err != nil {
		return nil, err
	}

	return follow, nil
}

// Unfollow フォロー関係を削除
func (s *followService) Unfollow(followerID, followedID uint) error {
	return s.followRepo.Delete(followerID, followedID)
}

// ListFollowing フォロー中のエッジ一覧を取得
func (s *followService) ListFollowing(userID uint) ([]models.Follow, error) {
	return s.followRepo.ListFollowing(userID)
}

// ListFollowers フォロワーのエッジ一覧を取得
func (s *followService) ListFollowers(userID uint) ([]models.Follow, error) {
	return s.followRepo.ListFollowers(userID)
}

// ListMutual 相互フォローのエッジ一覧を取得。
// フォロー中集合とフォロワー集合は独立した読み取りなので並行に発行し、
// フォロー中の行のうち相手がフォロワーにも現れるものを返す。
func (s *followService) ListMutual(userID uint) ([]models.Follow, error) {
	var (
		following, followers       []models.Follow
		errFollowing, errFollowers error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		following, errFollowing = s.followRepo.ListFollowing(userID)
	}()
	go func() {
		defer wg.Done()
		followers, errFollowers = s.followRepo.ListFollowers(userID)
	}()
	wg.Wait()

	if errFollowing != nil {
		return nil, errFollowing
	}
	if errFollowers != nil {
		return nil, errFollowers
	}

	// フォロワー側のフォロワーID集合を作る
	followerIDs := make(map[uint]struct{}, len(followers))
	for _, f := range followers {
		followerIDs[f.UserID] = struct{}{}
	}

	mutual := make([]models.Follow, 0)
	for _, f := range following {
		if _, ok := followerIDs[f.FollowedUserID]; ok {
			mutual = append(mutual, f)
		}
	}

	return mutual, nil
}
