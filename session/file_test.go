package session

import (
	"path/filepath"
	"testing"

	"utsavia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(KeyToken, "t1"))
	v, ok, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", v)
}

func TestFileStoreSetMany(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.SetMany(map[string]string{
		KeyToken:    "t1",
		KeyVendorID: "v1",
	}))

	token, _, err := store.Get(KeyToken)
	require.NoError(t, err)
	vendorID, _, err := store.Get(KeyVendorID)
	require.NoError(t, err)
	assert.Equal(t, "t1", token)
	assert.Equal(t, "v1", vendorID)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Set(KeyVendorID, "v1"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(KeyVendorID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)
}

func TestFileStoreClear(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SetMany(map[string]string{KeyToken: "t1", KeyRefreshToken: "r1"}))

	require.NoError(t, store.Clear())
	_, ok, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear())
}

func TestLoadSave(t *testing.T) {
	store, _ := newTestStore(t)

	sess := models.Session{AccessToken: "t1", RefreshToken: "r1", VendorID: "v1"}
	require.NoError(t, Save(store, sess))

	loaded, err := Load(store)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
	assert.True(t, loaded.Authenticated())
}

func TestLoadEmptySession(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := Load(store)
	require.NoError(t, err)
	assert.False(t, loaded.Authenticated())
	assert.Empty(t, loaded.VendorID)
}
