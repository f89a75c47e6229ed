package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAndUnfollow(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	following, err := f.follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, f.follows.Follow(alice.ID, bob.ID))

	following, err = f.follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The edge is directed: bob does not follow alice back.
	reverse, err := f.follows.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, reverse)

	require.NoError(t, f.follows.Unfollow(alice.ID, bob.ID))

	following, err = f.follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowSelf(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	err := f.follows.Follow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowUnknownUser(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	err := f.follows.Follow(alice.ID, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowTwice(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	require.NoError(t, f.follows.Follow(alice.ID, bob.ID))
	err := f.follows.Follow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestUnfollowWithoutEdge(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	// Removing an edge that never existed is a no-op.
	require.NoError(t, f.follows.Unfollow(alice.ID, bob.ID))
}

func TestListFollowersAndFollowing(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")
	carol := f.createUser(t, "carol")

	require.NoError(t, f.follows.Follow(bob.ID, alice.ID))
	require.NoError(t, f.follows.Follow(carol.ID, alice.ID))
	require.NoError(t, f.follows.Follow(alice.ID, bob.ID))

	followers, err := f.follows.ListFollowers(alice.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers.Total)
	assert.Len(t, followers.Users, 2)
	names := []string{followers.Users[0].Username, followers.Users[1].Username}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	following, err := f.follows.ListFollowing(alice.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), following.Total)
	require.Len(t, following.Users, 1)
	assert.Equal(t, "bob", following.Users[0].Username)
}

func TestListFollowersPagination(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	for _, name := range []string{"u1", "u2", "u3"} {
		u := f.createUser(t, name)
		require.NoError(t, f.follows.Follow(u.ID, alice.ID))
	}

	page1, err := f.follows.ListFollowers(alice.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1.Users, 2)
	assert.True(t, page1.HasMore)

	page2, err := f.follows.ListFollowers(alice.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Users, 1)
	assert.False(t, page2.HasMore)

	// Out-of-range pages normalize rather than fail.
	weird, err := f.follows.ListFollowers(alice.ID, -3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, weird.Page)
	assert.Equal(t, 20, weird.Limit)
}

func TestFollowCreatesNotification(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")
	bob := f.createUser(t, "bob")

	require.NoError(t, f.follows.Follow(alice.ID, bob.ID))

	stats, err := f.notifications.Stats(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.UnreadCount)

	page, err := f.notifications.List(bob.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Notifications, 1)
	assert.Equal(t, alice.ID, page.Notifications[0].ActorUserID)
	assert.Equal(t, "started following you", page.Notifications[0].Message)
}
