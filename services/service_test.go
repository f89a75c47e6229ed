package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fitcircle-api/database"
	"fitcircle-api/models"
	"fitcircle-api/repositories"
)

// newTestDB opens a fresh in-memory database per test. The shared-cache DSN
// keeps gorm's pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	db            *gorm.DB
	follows       *FollowService
	posts         *PostService
	feed          *FeedService
	notifications *NotificationService
	directory     *DirectoryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	postRepo := repositories.NewPostRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)
	notifications := NewNotificationService(db, nil, nil, zerolog.Nop())

	return &fixture{
		db:            db,
		follows:       NewFollowService(followRepo, userRepo, notifications),
		posts:         NewPostService(postRepo, userRepo, workoutRepo, notifications),
		feed:          NewFeedService(postRepo),
		notifications: notifications,
		directory:     NewDirectoryService(userRepo),
	}
}

func (f *fixture) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Name:     username,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, f.db.Create(&user).Error)
	return &user
}

func (f *fixture) createPost(t *testing.T, authorID, content string, visibility models.Visibility) *models.Post {
	t.Helper()

	post, err := f.posts.CreatePost(authorID, CreatePostInput{
		Content:    content,
		Visibility: visibility,
	})
	require.NoError(t, err)
	return post
}

// createPostAt inserts a post directly with a pinned creation time, for
// ordering tests.
func (f *fixture) createPostAt(t *testing.T, authorID, id, content string, visibility models.Visibility, createdAt time.Time) {
	t.Helper()

	post := models.Post{
		ID:         id,
		AuthorID:   authorID,
		Content:    content,
		Visibility: visibility,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	require.NoError(t, f.db.Create(&post).Error)
}
