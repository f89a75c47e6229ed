package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitcircle-api/models"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts the follow edge. The composite unique index on
// (follower_id, followee_id) makes concurrent duplicates collapse into a
// single row; created reports whether this call inserted it.
func (r *FollowRepository) Create(followerID, followeeID string) (bool, error) {
	follow := models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the edge if present. Deleting a missing edge is not an error.
func (r *FollowRepository) Delete(followerID, followeeID string) error {
	return r.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

func (r *FollowRepository) Exists(followerID, followeeID string) (bool, error) {
	var cnt int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ListFollowers returns edges pointing at userID, newest first.
func (r *FollowRepository) ListFollowers(userID string, offset, limit int) ([]models.Follow, int64, error) {
	var total int64
	if err := r.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var follows []models.Follow
	err := r.db.Preload("Follower").
		Where("followee_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&follows).Error
	return follows, total, err
}

// ListFollowing returns edges originating from userID, newest first.
func (r *FollowRepository) ListFollowing(userID string, offset, limit int) ([]models.Follow, int64, error) {
	var total int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var follows []models.Follow
	err := r.db.Preload("Followee").
		Where("follower_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&follows).Error
	return follows, total, err
}
