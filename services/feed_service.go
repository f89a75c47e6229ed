// File: /services/feed_service.go
package services

import (
	"fitcircle-api/models"
	"fitcircle-api/repositories"
)

// FeedService assembles the paginated post views: the follow-scoped home feed
// and the public discover feed.
type FeedService struct {
	postRepo *repositories.PostRepository
}

func NewFeedService(postRepo *repositories.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// GetHomeFeed returns the viewer's own posts plus public posts of everyone
// the viewer follows, newest first.
func (s *FeedService) GetHomeFeed(viewerID string, page, limit int) (*models.FeedResponse, error) {
	page, limit = normalizePage(page, limit)
	posts, total, err := s.postRepo.ListHome(viewerID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.AttachEngagement(posts, viewerID); err != nil {
		return nil, err
	}
	return feedPage(posts, page, limit, total), nil
}

// GetDiscoverFeed returns all public posts system-wide. viewerID may be empty
// for anonymous access; it only drives the liked-by-viewer annotation.
func (s *FeedService) GetDiscoverFeed(viewerID string, page, limit int) (*models.FeedResponse, error) {
	page, limit = normalizePage(page, limit)
	posts, total, err := s.postRepo.ListPublic((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.AttachEngagement(posts, viewerID); err != nil {
		return nil, err
	}
	return feedPage(posts, page, limit, total), nil
}
