package auth_repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viettl/skipli/internal/entity"
)

func newTestCodeRepo(t *testing.T) (CodeRepoContract, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCodeRepo(rdb), mr
}

func TestStoreAndGetCode(t *testing.T) {
	repo, _ := newTestCodeRepo(t)

	now := time.Now().UTC()
	code := entity.AccessCode{
		Code:      "123456",
		Email:     "teacher@example.com",
		CreatedAt: now,
		ExpiresAt: CodeExpiry(now),
	}
	require.Nil(t, repo.StoreCode(context.Background(), code))

	got, err := repo.GetCode(context.Background(), "teacher@example.com")
	require.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "123456", got.Code)
	assert.Equal(t, "teacher@example.com", got.Email)
}

func TestGetCode_MissingReturnsNil(t *testing.T) {
	repo, _ := newTestCodeRepo(t)

	got, err := repo.GetCode(context.Background(), "nobody@example.com")
	require.Nil(t, err)
	assert.Nil(t, got)
}

func TestStoreCode_OverwritesPrevious(t *testing.T) {
	repo, _ := newTestCodeRepo(t)

	now := time.Now().UTC()
	first := entity.AccessCode{Code: "111111", Email: "teacher@example.com", CreatedAt: now, ExpiresAt: CodeExpiry(now)}
	second := entity.AccessCode{Code: "222222", Email: "teacher@example.com", CreatedAt: now, ExpiresAt: CodeExpiry(now)}
	require.Nil(t, repo.StoreCode(context.Background(), first))
	require.Nil(t, repo.StoreCode(context.Background(), second))

	got, err := repo.GetCode(context.Background(), "teacher@example.com")
	require.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "222222", got.Code)
}

func TestCode_ExpiresWithTTL(t *testing.T) {
	repo, mr := newTestCodeRepo(t)

	now := time.Now().UTC()
	code := entity.AccessCode{Code: "123456", Email: "teacher@example.com", CreatedAt: now, ExpiresAt: CodeExpiry(now)}
	require.Nil(t, repo.StoreCode(context.Background(), code))

	mr.FastForward(11 * time.Minute)

	got, err := repo.GetCode(context.Background(), "teacher@example.com")
	require.Nil(t, err)
	assert.Nil(t, got)
}

func TestDeleteCode(t *testing.T) {
	repo, _ := newTestCodeRepo(t)

	now := time.Now().UTC()
	code := entity.AccessCode{Code: "123456", Email: "teacher@example.com", CreatedAt: now, ExpiresAt: CodeExpiry(now)}
	require.Nil(t, repo.StoreCode(context.Background(), code))
	require.Nil(t, repo.DeleteCode(context.Background(), "teacher@example.com"))

	got, err := repo.GetCode(context.Background(), "teacher@example.com")
	require.Nil(t, err)
	assert.Nil(t, got)
}
