// File: /services/post_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcircle-api/models"
	"fitcircle-api/repositories"
)

// WorkoutStore is the external collaborator consulted when a post references
// a workout record.
type WorkoutStore interface {
	Exists(id string) (bool, error)
}

// PostService is the post store plus the engagement engine: post lifecycle,
// like toggling and the bounded comment collection.
type PostService struct {
	postRepo *repositories.PostRepository
	userRepo *repositories.UserRepository
	workouts WorkoutStore
	notifier *NotificationService
}

func NewPostService(postRepo *repositories.PostRepository, userRepo *repositories.UserRepository, workouts WorkoutStore, notifier *NotificationService) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		workouts: workouts,
		notifier: notifier,
	}
}

type CreatePostInput struct {
	Content    string
	WorkoutID  *string
	ImageUrls  []string
	Visibility models.Visibility
}

type UpdatePostInput struct {
	Content    *string
	ImageUrls  *[]string
	Visibility *models.Visibility
}

func (s *PostService) CreatePost(authorID string, input CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(input.Content)
	if err := validatePostContent(content); err != nil {
		return nil, err
	}
	if err := validateImageUrls(input.ImageUrls); err != nil {
		return nil, err
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if !visibility.Valid() {
		return nil, NewValidationError("visibility", "must be public or private")
	}

	if input.WorkoutID != nil {
		exists, err := s.workouts.Exists(*input.WorkoutID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, NewValidationError("workout_id", "referenced workout does not exist")
		}
	}

	post := models.Post{
		ID:         uuid.New().String(),
		AuthorID:   authorID,
		Content:    content,
		WorkoutID:  input.WorkoutID,
		ImageUrls:  models.StringSlice(input.ImageUrls),
		Visibility: visibility,
	}
	if err := s.postRepo.Create(&post); err != nil {
		return nil, err
	}

	return s.GetPost(post.ID, authorID)
}

// GetPost returns the post with its comments and derived counts. Private
// posts of other authors are indistinguishable from missing ones.
func (s *PostService) GetPost(postID, viewerID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if post.Visibility == models.VisibilityPrivate && post.AuthorID != viewerID {
		return nil, ErrNotFound
	}

	page := []models.Post{*post}
	if err := s.postRepo.AttachEngagement(page, viewerID); err != nil {
		return nil, err
	}
	return &page[0], nil
}

// UpdatePost applies an author-only patch of content, images or visibility.
func (s *PostService) UpdatePost(postID, editorID string, input UpdatePostInput) (*models.Post, error) {
	post, err := s.getLean(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != editorID {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if err := validatePostContent(content); err != nil {
			return nil, err
		}
		updates["content"] = content
	}
	if input.ImageUrls != nil {
		if err := validateImageUrls(*input.ImageUrls); err != nil {
			return nil, err
		}
		updates["image_urls"] = models.StringSlice(*input.ImageUrls)
	}
	if input.Visibility != nil {
		if !input.Visibility.Valid() {
			return nil, NewValidationError("visibility", "must be public or private")
		}
		updates["visibility"] = *input.Visibility
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.postRepo.Update(postID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetPost(postID, editorID)
}

// DeletePost removes the post and everything embedded in it.
func (s *PostService) DeletePost(postID, requesterID string) error {
	post, err := s.getLean(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return ErrForbidden
	}
	return s.postRepo.Delete(postID)
}

// GetUserPosts pages through one author's posts as seen by viewer: everything
// for the author themselves, public posts only for anyone else.
func (s *PostService) GetUserPosts(authorID, viewerID string, page, limit int) (*models.FeedResponse, error) {
	exists, err := s.userRepo.Exists(authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	page, limit = normalizePage(page, limit)
	publicOnly := authorID != viewerID
	posts, total, err := s.postRepo.ListByAuthor(authorID, publicOnly, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.AttachEngagement(posts, viewerID); err != nil {
		return nil, err
	}
	return feedPage(posts, page, limit, total), nil
}

// ToggleLike flips the caller's like on the post and reports the new state.
func (s *PostService) ToggleLike(postID, userID string) (*models.LikeResult, error) {
	post, err := s.getLean(postID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEngageable(post, userID); err != nil {
		return nil, err
	}

	liked, count, err := s.postRepo.ToggleLike(postID, userID)
	if err != nil {
		return nil, err
	}

	if liked && s.notifier != nil {
		s.notifier.NotifyLike(userID, post.AuthorID, postID)
	}
	return &models.LikeResult{
		PostID:    postID,
		Liked:     liked,
		LikeCount: count,
	}, nil
}

// AddComment appends a comment and returns it with the recomputed count.
func (s *PostService) AddComment(postID, userID, body string) (*models.Comment, int64, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, 0, NewValidationError("body", "must not be empty")
	}
	if len(body) > MaxCommentLength {
		return nil, 0, NewValidationError("body", "exceeds maximum length")
	}

	post, err := s.getLean(postID)
	if err != nil {
		return nil, 0, err
	}
	if err := s.checkEngageable(post, userID); err != nil {
		return nil, 0, err
	}

	comment := models.Comment{
		ID:       uuid.New().String(),
		PostID:   postID,
		AuthorID: userID,
		Body:     body,
	}
	if err := s.postRepo.CreateComment(&comment); err != nil {
		return nil, 0, err
	}

	if s.notifier != nil {
		s.notifier.NotifyComment(userID, post.AuthorID, postID, comment.ID)
	}

	updated, err := s.GetPost(postID, userID)
	if err != nil {
		return nil, 0, err
	}
	return &comment, updated.CommentCount, nil
}

// DeleteComment removes a comment; only the comment's author or the post's
// author may do so.
func (s *PostService) DeleteComment(postID, commentID, requesterID string) error {
	post, err := s.getLean(postID)
	if err != nil {
		return err
	}

	comment, err := s.postRepo.GetComment(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if comment.PostID != postID {
		return ErrNotFound
	}
	if requesterID != comment.AuthorID && requesterID != post.AuthorID {
		return ErrForbidden
	}
	return s.postRepo.DeleteComment(commentID)
}

func (s *PostService) getLean(postID string) (*models.Post, error) {
	post, err := s.postRepo.GetLean(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// checkEngageable enforces the visibility rule for likes and comments:
// private posts are only engageable by their author.
func (s *PostService) checkEngageable(post *models.Post, userID string) error {
	if post.Visibility == models.VisibilityPrivate && post.AuthorID != userID {
		return ErrForbidden
	}
	return nil
}

func validatePostContent(content string) error {
	if content == "" {
		return NewValidationError("content", "must not be empty")
	}
	if len(content) > MaxPostContentLength {
		return NewValidationError("content", "exceeds maximum length")
	}
	return nil
}

func validateImageUrls(urls []string) error {
	if len(urls) > MaxPostImages {
		return NewValidationError("image_urls", "too many images")
	}
	for _, url := range urls {
		if !IsValidImageURL(url) {
			return NewValidationError("image_urls", "not an allowed image URL: "+url)
		}
	}
	return nil
}

func feedPage(posts []models.Post, page, limit int, total int64) *models.FeedResponse {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.FeedResponse{
		Posts:      posts,
		Page:       page,
		Limit:      limit,
		Total:      total,
		HasMore:    hasMorePages(page, limit, total),
		TotalPages: totalPages,
	}
}
