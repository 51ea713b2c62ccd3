package locker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestTryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, "lock:a", mock.AnythingOfType("string"), 30*time.Second).Return(true, nil)

		acquired, value, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "lock:a", 30*time.Second)

		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value, "lock value should be returned to the holder")
		repo.AssertExpectations(t)
	})

	t.Run("Held By Someone Else", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, "lock:a", mock.Anything, time.Second).Return(false, nil)

		acquired, value, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "lock:a", time.Second)

		assert.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("Redis Error", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, "lock:a", mock.Anything, time.Second).Return(false, errors.New("down"))

		_, _, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, "lock:a", time.Second)
		assert.Error(t, err)
	})
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()

	t.Run("Owned Lock Is Deleted", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "lock:a").Return(fmt.Sprintf("%q", "value-1"), nil)
		repo.On("Delete", ctx, "lock:a").Return(nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, "lock:a", "value-1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Foreign Lock Is Kept", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "lock:a").Return(`"value-2"`, nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, "lock:a", "value-1")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", ctx, "lock:a")
	})

	t.Run("Expired Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "lock:a").Return("", nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, "lock:a", "value-1")
		assert.NoError(t, err, "nothing to release is not an error")
	})
}
