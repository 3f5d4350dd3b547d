package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest-api/internal/cache"
	"github.com/tasknest/tasknest-api/internal/mocks"
	"github.com/tasknest/tasknest-api/internal/store"
)

const (
	ownerEmail = "owner@example.com"
	otherEmail = "other@example.com"
)

func newTestService(t *testing.T) (TaskService, *mocks.MockTaskStore, *cache.Cache) {
	t.Helper()

	taskStore := mocks.NewMockTaskStore()
	responseCache := cache.New()

	svc, err := NewTaskService(taskStore, responseCache, nil)
	require.NoError(t, err)

	return svc, taskStore, responseCache
}

func TestNewTaskServiceValidatesDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewTaskService(nil, cache.New(), nil)
	assert.Error(t, err)

	_, err = NewTaskService(mocks.NewMockTaskStore(), nil, nil)
	assert.Error(t, err)
}

func TestCreateInvalidatesListCache(t *testing.T) {
	t.Parallel()

	svc, _, responseCache := newTestService(t)
	ctx := context.Background()

	// Warm the list cache, then mutate.
	_, err := svc.List(ctx, ownerEmail)
	require.NoError(t, err)
	_, ok := responseCache.Get(cache.TaskListKey(ownerEmail))
	require.True(t, ok, "list cache should be populated by List")

	id, err := svc.Create(ctx, ownerEmail, "buy milk", "2 liters", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, ok = responseCache.Get(cache.TaskListKey(ownerEmail))
	assert.False(t, ok, "Create must invalidate the owner's list key")
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), ownerEmail, "", "", false)
	assert.Error(t, err)
}

func TestListPopulatesAndServesFromCache(t *testing.T) {
	t.Parallel()

	svc, taskStore, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ownerEmail, "a", "", false)
	require.NoError(t, err)

	first, err := svc.List(ctx, ownerEmail)
	require.NoError(t, err)
	second, err := svc.List(ctx, ownerEmail)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, taskStore.ListCalls,
		"second List should be served from cache without a store query")
}

func TestGetIsIdempotentAndCached(t *testing.T) {
	t.Parallel()

	svc, taskStore, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, ownerEmail, "a", "desc", true)
	require.NoError(t, err)

	first, err := svc.Get(ctx, ownerEmail, id)
	require.NoError(t, err)
	second, err := svc.Get(ctx, ownerEmail, id)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated Get must return identical payloads")
	assert.Equal(t, 1, taskStore.GetCalls,
		"second Get should be served from cache without a store query")
}

func TestGetScopedByOwner(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, ownerEmail, "private", "", false)
	require.NoError(t, err)

	// Another identity sees the task as nonexistent, not forbidden.
	_, err = svc.Get(ctx, otherEmail, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	// And even after the owner cached the task, the other identity's
	// partitioned key still misses.
	_, err = svc.Get(ctx, ownerEmail, id)
	require.NoError(t, err)
	_, err = svc.Get(ctx, otherEmail, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestUpdateInvalidatesBothKeys(t *testing.T) {
	t.Parallel()

	svc, _, responseCache := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, ownerEmail, "a", "", false)
	require.NoError(t, err)

	// Warm both keys.
	_, err = svc.List(ctx, ownerEmail)
	require.NoError(t, err)
	_, err = svc.Get(ctx, ownerEmail, id)
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, ownerEmail, id, "b", "changed", true))

	_, ok := responseCache.Get(cache.TaskListKey(ownerEmail))
	assert.False(t, ok, "Update must invalidate the list key")
	_, ok = responseCache.Get(cache.TaskKey(ownerEmail, id))
	assert.False(t, ok, "Update must invalidate the detail key")

	got, err := svc.Get(ctx, ownerEmail, id)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Title)
	assert.True(t, got.Completed)
}

func TestUpdateNotFoundLeavesCacheUntouched(t *testing.T) {
	t.Parallel()

	svc, _, responseCache := newTestService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, ownerEmail)
	require.NoError(t, err)

	err = svc.Update(ctx, ownerEmail, 99, "x", "", false)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	_, ok := responseCache.Get(cache.TaskListKey(ownerEmail))
	assert.True(t, ok, "a failed mutation must not invalidate the cache")
}

func TestDeleteInvalidatesBothKeys(t *testing.T) {
	t.Parallel()

	svc, _, responseCache := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, ownerEmail, "a", "", false)
	require.NoError(t, err)
	_, err = svc.List(ctx, ownerEmail)
	require.NoError(t, err)
	_, err = svc.Get(ctx, ownerEmail, id)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, ownerEmail, id))

	_, ok := responseCache.Get(cache.TaskListKey(ownerEmail))
	assert.False(t, ok)
	_, ok = responseCache.Get(cache.TaskKey(ownerEmail, id))
	assert.False(t, ok)

	_, err = svc.Get(ctx, ownerEmail, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	err := svc.Delete(context.Background(), ownerEmail, 42)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}
