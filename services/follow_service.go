// File: /services/follow_service.go
package services

import (
	"fitcircle-api/models"
	"fitcircle-api/repositories"
)

// FollowService maintains the directed follow graph.
type FollowService struct {
	followRepo *repositories.FollowRepository
	userRepo   *repositories.UserRepository
	notifier   *NotificationService
}

func NewFollowService(followRepo *repositories.FollowRepository, userRepo *repositories.UserRepository, notifier *NotificationService) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// Follow creates the follower->followee edge. Duplicate follows are rejected
// explicitly rather than silently ignored.
func (s *FollowService) Follow(followerID, followeeID string) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	exists, err := s.userRepo.Exists(followeeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	created, err := s.followRepo.Create(followerID, followeeID)
	if err != nil {
		return err
	}
	if !created {
		return ErrAlreadyFollowing
	}

	if s.notifier != nil {
		s.notifier.NotifyFollow(followerID, followeeID)
	}
	return nil
}

// Unfollow removes the edge; removing a missing edge is a no-op.
func (s *FollowService) Unfollow(followerID, followeeID string) error {
	return s.followRepo.Delete(followerID, followeeID)
}

func (s *FollowService) IsFollowing(followerID, followeeID string) (bool, error) {
	return s.followRepo.Exists(followerID, followeeID)
}

func (s *FollowService) ListFollowers(userID string, page, limit int) (*models.FollowPage, error) {
	page, limit = normalizePage(page, limit)
	follows, total, err := s.followRepo.ListFollowers(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	users := make([]models.UserRef, 0, len(follows))
	for i := range follows {
		users = append(users, follows[i].Follower.Ref())
	}
	return &models.FollowPage{
		Users:   users,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: hasMorePages(page, limit, total),
	}, nil
}

func (s *FollowService) ListFollowing(userID string, page, limit int) (*models.FollowPage, error) {
	page, limit = normalizePage(page, limit)
	follows, total, err := s.followRepo.ListFollowing(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	users := make([]models.UserRef, 0, len(follows))
	for i := range follows {
		users = append(users, follows[i].Followee.Ref())
	}
	return &models.FollowPage{
		Users:   users,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: hasMorePages(page, limit, total),
	}, nil
}
