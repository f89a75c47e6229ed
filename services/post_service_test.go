package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcircle-api/models"
)

func TestCreatePostDefaults(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	post, err := f.posts.CreatePost(alice.ID, CreatePostInput{Content: "  leg day done  "})
	require.NoError(t, err)

	assert.Equal(t, "leg day done", post.Content)
	assert.Equal(t, models.VisibilityPublic, post.Visibility)
	assert.Equal(t, int64(0), post.LikeCount)
	assert.Equal(t, int64(0), post.CommentCount)
	assert.False(t, post.LikedByViewer)
	assert.Equal(t, alice.Username, post.Author.Username)
}

func TestCreatePostValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	cases := []struct {
		name  string
		input CreatePostInput
	}{
		{"empty content", CreatePostInput{Content: "   "}},
		{"oversized content", CreatePostInput{Content: strings.Repeat("a", 1001)}},
		{"bad image url", CreatePostInput{Content: "ok", ImageUrls: []string{"ftp://img.example.com/a.png"}}},
		{"non-image url", CreatePostInput{Content: "ok", ImageUrls: []string{"https://example.com/a.pdf"}}},
		{"bad visibility", CreatePostInput{Content: "ok", Visibility: "friends"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.posts.CreatePost(alice.ID, tc.input)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreatePostWithWorkoutReference(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	workout := models.Workout{
		ID:       "w1",
		UserID:   alice.ID,
		Title:    "Morning run",
		Activity: models.ActivityRun,
	}
	require.NoError(t, f.db.Create(&workout).Error)

	post, err := f.posts.CreatePost(alice.ID, CreatePostInput{
		Content:   "5k in the rain",
		WorkoutID: &workout.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, post.WorkoutID)
	assert.Equal(t, "w1", *post.WorkoutID)

	missing := "nope"
	_, err = f.posts.CreatePost(alice.ID, CreatePostInput{Content: "ghost ref", WorkoutID: &missing})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGetPostPrivateVisibility(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	post := f.createPost(t, alice.ID, "rest day notes", models.VisibilityPrivate)

	got, err := f.posts.GetPost(post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	// Another viewer cannot tell a private post from a missing one.
	_, err = f.posts.GetPost(post.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.posts.GetPost("does-not-exist", bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePost(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	post := f.createPost(t, alice.ID, "original", models.VisibilityPublic)

	content := "edited"
	visibility := models.VisibilityPrivate
	updated, err := f.posts.UpdatePost(post.ID, alice.ID, UpdatePostInput{
		Content:    &content,
		Visibility: &visibility,
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, models.VisibilityPrivate, updated.Visibility)

	_, err = f.posts.UpdatePost(post.ID, bob.ID, UpdatePostInput{Content: &content})
	assert.ErrorIs(t, err, ErrForbidden)

	bad := ""
	_, err = f.posts.UpdatePost(post.ID, alice.ID, UpdatePostInput{Content: &bad})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	post := f.createPost(t, alice.ID, "to be removed", models.VisibilityPublic)

	_, err := f.posts.ToggleLike(post.ID, bob.ID)
	require.NoError(t, err)
	_, _, err = f.posts.AddComment(post.ID, bob.ID, "nice one")
	require.NoError(t, err)

	assert.ErrorIs(t, f.posts.DeletePost(post.ID, bob.ID), ErrForbidden)
	require.NoError(t, f.posts.DeletePost(post.ID, alice.ID))

	_, err = f.posts.GetPost(post.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Embedded likes and comments go with the post.
	var likes, comments int64
	require.NoError(t, f.db.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&likes).Error)
	require.NoError(t, f.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments).Error)
	assert.Zero(t, likes)
	assert.Zero(t, comments)
}

func TestGetUserPostsVisibility(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	f.createPost(t, alice.ID, "public one", models.VisibilityPublic)
	f.createPost(t, alice.ID, "private one", models.VisibilityPrivate)

	own, err := f.posts.GetUserPosts(alice.ID, alice.ID, 1, 20)
	require.NoError(t, err)
	assert.Len(t, own.Posts, 2)

	seen, err := f.posts.GetUserPosts(alice.ID, bob.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, seen.Posts, 1)
	assert.Equal(t, "public one", seen.Posts[0].Content)

	_, err = f.posts.GetUserPosts("ghost", bob.ID, 1, 20)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	post := f.createPost(t, alice.ID, "pr day", models.VisibilityPublic)

	result, err := f.posts.ToggleLike(post.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)

	// Toggling twice restores the original state.
	result, err = f.posts.ToggleLike(post.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.LikeCount)
}

func TestLikeCountMatchesLikers(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	post := f.createPost(t, alice.ID, "counted", models.VisibilityPublic)

	likers := []*models.User{
		f.createUser(t, "u1"),
		f.createUser(t, "u2"),
		f.createUser(t, "u3"),
	}
	for _, u := range likers {
		_, err := f.posts.ToggleLike(post.ID, u.ID)
		require.NoError(t, err)
	}

	got, err := f.posts.GetPost(post.ID, likers[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(len(likers)), got.LikeCount)
	assert.True(t, got.LikedByViewer)

	fromOutside, err := f.posts.GetPost(post.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, fromOutside.LikedByViewer)
}

func TestEngagementOnPrivatePost(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	post := f.createPost(t, alice.ID, "private grind", models.VisibilityPrivate)

	_, err := f.posts.ToggleLike(post.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, _, err = f.posts.AddComment(post.ID, bob.ID, "hi")
	assert.ErrorIs(t, err, ErrForbidden)

	// The author can still engage with their own private post.
	result, err := f.posts.ToggleLike(post.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
}

func TestAddComment(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	post := f.createPost(t, alice.ID, "form check", models.VisibilityPublic)

	comment, count, err := f.posts.AddComment(post.ID, bob.ID, "  looks solid  ")
	require.NoError(t, err)
	assert.Equal(t, "looks solid", comment.Body)
	assert.Equal(t, int64(1), count)

	_, count, err = f.posts.AddComment(post.ID, alice.ID, "thanks")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, _, err = f.posts.AddComment(post.ID, bob.ID, "")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, _, err = f.posts.AddComment(post.ID, bob.ID, strings.Repeat("x", 501))
	assert.ErrorAs(t, err, &verr)

	_, _, err = f.posts.AddComment("missing", bob.ID, "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCommentPermissions(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	carol := f.createUser(t, "carol")
	post := f.createPost(t, alice.ID, "open thread", models.VisibilityPublic)

	comment, _, err := f.posts.AddComment(post.ID, bob.ID, "first")
	require.NoError(t, err)

	// A third party can delete neither.
	err = f.posts.DeleteComment(post.ID, comment.ID, carol.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := f.posts.GetPost(post.ID, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CommentCount)

	// The comment author may remove it.
	require.NoError(t, f.posts.DeleteComment(post.ID, comment.ID, bob.ID))

	// The post author may moderate comments on their post.
	comment2, _, err := f.posts.AddComment(post.ID, bob.ID, "second")
	require.NoError(t, err)
	require.NoError(t, f.posts.DeleteComment(post.ID, comment2.ID, alice.ID))

	got, err = f.posts.GetPost(post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.CommentCount)
}

func TestDeleteCommentWrongPost(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	postA := f.createPost(t, alice.ID, "a", models.VisibilityPublic)
	postB := f.createPost(t, alice.ID, "b", models.VisibilityPublic)

	comment, _, err := f.posts.AddComment(postA.ID, alice.ID, "on a")
	require.NoError(t, err)

	err = f.posts.DeleteComment(postB.ID, comment.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngagementNotifications(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	post := f.createPost(t, alice.ID, "notify me", models.VisibilityPublic)

	_, err := f.posts.ToggleLike(post.ID, bob.ID)
	require.NoError(t, err)
	_, _, err = f.posts.AddComment(post.ID, bob.ID, "nice")
	require.NoError(t, err)

	// Authors are not notified about their own engagement.
	_, _, err = f.posts.AddComment(post.ID, alice.ID, "self reply")
	require.NoError(t, err)

	stats, err := f.notifications.Stats(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCount)
	assert.Equal(t, 2, stats.UnreadCount)

	page, err := f.notifications.List(alice.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Notifications, 2)
	require.NoError(t, f.notifications.MarkAsRead(alice.ID, page.Notifications[0].ID))

	stats, err = f.notifications.Stats(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.UnreadCount)

	require.NoError(t, f.notifications.MarkAllAsRead(alice.ID))
	stats, err = f.notifications.Stats(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.UnreadCount)
}
