package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritu748888/boxcourt/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	user := &models.User{ID: 1, Email: "admin@test.com", Phone: "9999999999", DateJoined: "2024-01-15"}
	require.NoError(t, store.Save(user, 1, "tok-abc"))

	sess, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, "admin@test.com", sess.User.Email)
	assert.Equal(t, "9999999999", sess.User.Phone)
	assert.Equal(t, int64(1), sess.UserID)
	assert.Equal(t, "tok-abc", sess.AuthToken)
	assert.True(t, sess.LoggedIn())
}

func TestLoadEmptyStore(t *testing.T) {
	store := newTestStore(t)

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess.User)
	assert.Zero(t, sess.UserID)
	assert.Empty(t, sess.AuthToken)
	assert.False(t, sess.LoggedIn())
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&models.User{ID: 2, Email: "a@b.c"}, 2, "tok"))

	require.NoError(t, store.Clear())
	first, err := store.Load()
	require.NoError(t, err)

	// Clearing an already-empty store must behave identically.
	require.NoError(t, store.Clear())
	second, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, second.LoggedIn())
}

func TestLoadPartialSession(t *testing.T) {
	// A user record without a token is returned as-is; the store does not
	// enforce that the two exist together.
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(&models.User{ID: 3, Email: "p@q.r"}, 3, "tok"))
	require.NoError(t, os.Remove(filepath.Join(dir, "auth_token")))

	sess, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Empty(t, sess.AuthToken)
	assert.True(t, sess.LoggedIn())
}

func TestSaveOverwritesPreviousSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&models.User{ID: 1, Email: "old@test.com"}, 1, "old"))
	require.NoError(t, store.Save(&models.User{ID: 2, Email: "new@test.com"}, 2, "new"))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "new@test.com", sess.User.Email)
	assert.Equal(t, int64(2), sess.UserID)
	assert.Equal(t, "new", sess.AuthToken)
}

func TestParseTokenClaims(t *testing.T) {
	// Opaque tokens are tolerated, not rejected.
	_, ok := ParseTokenClaims("not-a-jwt")
	assert.False(t, ok)

	_, ok = ParseTokenClaims("")
	assert.False(t, ok)

	// Unsigned decode of a well-formed JWT surfaces its claims.
	// header {"alg":"none","typ":"JWT"} payload {"email":"admin@test.com","exp":4102444800}
	token := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJlbWFpbCI6ImFkbWluQHRlc3QuY29tIiwiZXhwIjo0MTAyNDQ0ODAwfQ."
	claims, ok := ParseTokenClaims(token)
	require.True(t, ok)
	assert.Equal(t, "admin@test.com", claims.Email)
	assert.Equal(t, 2100, claims.ExpiresAt().Year())
}
