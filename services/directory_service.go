package services

import (
	"errors"

	"gorm.io/gorm"

	"fitcircle-api/models"
	"fitcircle-api/repositories"
)

// DirectoryService is the identity directory: it resolves opaque user ids and
// usernames into minimal user references for the rest of the system.
type DirectoryService struct {
	userRepo *repositories.UserRepository
}

func NewDirectoryService(userRepo *repositories.UserRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo}
}

func (s *DirectoryService) ResolveUser(id string) (*models.UserRef, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ref := user.Ref()
	return &ref, nil
}

func (s *DirectoryService) ResolveUserByUsername(username string) (*models.UserRef, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ref := user.Ref()
	return &ref, nil
}
