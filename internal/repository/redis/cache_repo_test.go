package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/kvizarena-api/internal/pkg/errors"
)

func newTestCacheRepo(t *testing.T) (*CacheRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo, err := NewCacheRepo(client)
	require.NoError(t, err)
	return repo, mr
}

func TestCacheRepo_SetAndGet(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	err := repo.Set("greeting", "ahoj", time.Minute)
	require.NoError(t, err)

	val, err := repo.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "ahoj", val)
}

func TestCacheRepo_Get_MissingKey(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	_, err := repo.Get("nonexistent")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCacheRepo_Delete(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	require.NoError(t, repo.Set("doomed", "x", time.Minute))

	require.NoError(t, repo.Delete("doomed"))

	_, err := repo.Get("doomed")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCacheRepo_JSONRoundTrip(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	type payload struct {
		Name      string   `json:"name"`
		Questions []string `json:"questions"`
	}
	original := payload{Name: "Geography", Questions: []string{"q1", "q2"}}

	require.NoError(t, repo.SetJSON("quiz:7:full", original, time.Minute))

	var restored payload
	require.NoError(t, repo.GetJSON("quiz:7:full", &restored))
	assert.Equal(t, original, restored)
}

func TestCacheRepo_GetJSON_MissingKey(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	var dest map[string]interface{}
	err := repo.GetJSON("nonexistent", &dest)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCacheRepo_Exists(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	require.NoError(t, repo.Set("present", "1", time.Minute))

	exists, err := repo.Exists("present")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists("absent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCacheRepo_Expiration(t *testing.T) {
	repo, mr := newTestCacheRepo(t)
	require.NoError(t, repo.Set("ephemeral", "x", 5*time.Second))

	mr.FastForward(6 * time.Second)

	_, err := repo.Get("ephemeral")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNewCacheRepo_NilClient(t *testing.T) {
	repo, err := NewCacheRepo(nil)

	assert.Nil(t, repo)
	assert.Error(t, err)
}
