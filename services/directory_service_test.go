package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUser(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	ref, err := f.directory.ResolveUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, ref.ID)
	assert.Equal(t, "alice", ref.Username)

	_, err = f.directory.ResolveUser("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveUserByUsername(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice")

	ref, err := f.directory.ResolveUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, ref.ID)

	_, err = f.directory.ResolveUserByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
