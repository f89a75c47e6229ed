package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitcircle-api/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID loads a post with its author and ordered comments.
func (r *PostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Comments.Author").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetLean loads a post row without associations, for ownership and
// visibility checks.
func (r *PostRepository) GetLean(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) Update(postID string, updates map[string]interface{}) error {
	return r.db.Model(&models.Post{}).Where("id = ?", postID).Updates(updates).Error
}

// Delete removes the post together with its likes and comments. Comments have
// no lifecycle outside their post.
func (r *PostRepository) Delete(postID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", postID).Error
	})
}

// ListByAuthor pages through one author's posts, optionally restricted to
// public ones.
func (r *PostRepository) ListByAuthor(authorID string, publicOnly bool, offset, limit int) ([]models.Post, int64, error) {
	q := r.db.Model(&models.Post{}).Where("author_id = ?", authorID)
	if publicOnly {
		q = q.Where("visibility = ?", models.VisibilityPublic)
	}
	return r.page(q, offset, limit)
}

// ListHome pages through the viewer's own posts plus public posts of everyone
// the viewer follows.
func (r *PostRepository) ListHome(viewerID string, offset, limit int) ([]models.Post, int64, error) {
	followees := r.db.Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", viewerID)

	q := r.db.Model(&models.Post{}).Where(
		r.db.Where("author_id = ?", viewerID).
			Or("visibility = ? AND author_id IN (?)", models.VisibilityPublic, followees),
	)
	return r.page(q, offset, limit)
}

// ListPublic pages through all public posts system-wide.
func (r *PostRepository) ListPublic(offset, limit int) ([]models.Post, int64, error) {
	q := r.db.Model(&models.Post{}).Where("visibility = ?", models.VisibilityPublic)
	return r.page(q, offset, limit)
}

// page applies the shared feed ordering: creation time descending with post id
// as the deterministic tie-break.
func (r *PostRepository) page(q *gorm.DB, offset, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := q.Preload("Author").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// ToggleLike flips userID's like on postID inside one transaction. The unique
// (post_id, user_id) index keeps concurrent duplicate toggles from
// double-applying: the delete and the conflict-ignoring insert are both
// single atomic statements against the liker set.
func (r *PostRepository) ToggleLike(postID, userID string) (bool, int64, error) {
	var liked bool
	var count int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			like := models.PostLike{PostID: postID, UserID: userID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			liked = true
		}
		return tx.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	})
	return liked, count, err
}

func (r *PostRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *PostRepository) GetComment(commentID string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", commentID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *PostRepository) DeleteComment(commentID string) error {
	return r.db.Delete(&models.Comment{}, "id = ?", commentID).Error
}

type engagementRow struct {
	PostID string
	Cnt    int64
}

// AttachEngagement fills the derived like/comment counts (and the viewer's
// like state when a viewer is known) for a page of posts using grouped counts
// over the underlying rows.
func (r *PostRepository) AttachEngagement(posts []models.Post, viewerID string) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	var likeRows []engagementRow
	if err := r.db.Model(&models.PostLike{}).
		Select("post_id, COUNT(*) AS cnt").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&likeRows).Error; err != nil {
		return err
	}

	var commentRows []engagementRow
	if err := r.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS cnt").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&commentRows).Error; err != nil {
		return err
	}

	likeCounts := make(map[string]int64, len(likeRows))
	for _, row := range likeRows {
		likeCounts[row.PostID] = row.Cnt
	}
	commentCounts := make(map[string]int64, len(commentRows))
	for _, row := range commentRows {
		commentCounts[row.PostID] = row.Cnt
	}

	viewerLikes := make(map[string]bool)
	if viewerID != "" {
		var likedIDs []string
		if err := r.db.Model(&models.PostLike{}).
			Where("post_id IN ? AND user_id = ?", ids, viewerID).
			Pluck("post_id", &likedIDs).Error; err != nil {
			return err
		}
		for _, id := range likedIDs {
			viewerLikes[id] = true
		}
	}

	for i := range posts {
		posts[i].LikeCount = likeCounts[posts[i].ID]
		posts[i].CommentCount = commentCounts[posts[i].ID]
		posts[i].LikedByViewer = viewerLikes[posts[i].ID]
	}
	return nil
}
