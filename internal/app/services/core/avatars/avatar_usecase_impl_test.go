package avatars

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"panel-service/internal/app/config"
	"panel-service/internal/app/contracts"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) error {
	return m.Called(ctx, bucketName, objectName, reader, size, contentType).Error(0)
}

func (m *MockStorage) ListObjects(ctx context.Context, bucketName, prefix string) ([]contracts.StoredObject, error) {
	args := m.Called(ctx, bucketName, prefix)
	objects, _ := args.Get(0).([]contracts.StoredObject)
	return objects, args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Minio: config.AppMinio{
			BucketName:                            "panel",
			ProfilePictureMaxUploadSizeInMB:       1,
			PreSignedUrlObjectExpiryTimeInMinutes: 30,
		},
	}
}

func TestAvatarUsecaseUploadAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores And Presigns", func(t *testing.T) {
		storage := new(MockStorage)
		var stored []byte
		storage.On("PutObject", ctx, "panel", "profile-pictures/user-1/avatar.png", mock.Anything, int64(4), "image/png").
			Run(func(args mock.Arguments) {
				stored, _ = io.ReadAll(args.Get(3).(io.Reader))
			}).
			Return(nil)
		storage.On("GetObjectUrlWithExpiryTime", ctx, "panel", "profile-pictures/user-1/avatar.png", 30*time.Minute).
			Return("https://minio.local/panel/profile-pictures/user-1/avatar.png?sig=1", nil)

		avatar, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).UploadAvatar(ctx, "user-1", &requests.UploadAvatar{
			ContentType: "image/png",
			Size:        4,
			Data:        []byte{0x89, 'P', 'N', 'G'},
		})

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, stored)
		assert.Equal(t, "profile-pictures/user-1/avatar.png", avatar.ObjectName)
		assert.Contains(t, avatar.URL, "sig=1")
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), avatar.ExpiresAt, 5*time.Second)
		storage.AssertExpectations(t)
	})

	t.Run("Rejects Unsupported Content Type", func(t *testing.T) {
		storage := new(MockStorage)

		_, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).UploadAvatar(ctx, "user-1", &requests.UploadAvatar{
			ContentType: "application/pdf",
			Size:        10,
			Data:        make([]byte, 10),
		})

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
		storage.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects Oversized Image", func(t *testing.T) {
		storage := new(MockStorage)

		_, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).UploadAvatar(ctx, "user-1", &requests.UploadAvatar{
			ContentType: "image/jpeg",
			Size:        bytesPerMegabyte + 1,
		})

		assert.Equal(t, http.StatusRequestEntityTooLarge, exceptions.StatusCodeOf(err))
		storage.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("PutObject", ctx, "panel", "profile-pictures/user-1/avatar.jpg", mock.Anything, int64(3), "image/jpeg").
			Return(exceptions.ErrMinioCreateObject(errors.New("bucket missing"), "panel"))

		_, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).UploadAvatar(ctx, "user-1", &requests.UploadAvatar{
			ContentType: "image/jpeg",
			Size:        3,
			Data:        []byte{1, 2, 3},
		})

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAvatarUsecaseGetAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("Picks Latest Object", func(t *testing.T) {
		now := time.Now()
		storage := new(MockStorage)
		storage.On("ListObjects", ctx, "panel", "profile-pictures/user-1/").Return([]contracts.StoredObject{
			{Key: "profile-pictures/user-1/avatar.jpg", LastModified: now.Add(-time.Hour)},
			{Key: "profile-pictures/user-1/avatar.webp", LastModified: now},
			{Key: "profile-pictures/user-1/avatar.png", LastModified: now.Add(-2 * time.Hour)},
		}, nil)
		storage.On("GetObjectUrlWithExpiryTime", ctx, "panel", "profile-pictures/user-1/avatar.webp", 30*time.Minute).
			Return("https://minio.local/avatar.webp", nil)

		avatar, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).GetAvatar(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "profile-pictures/user-1/avatar.webp", avatar.ObjectName)
		assert.Equal(t, "https://minio.local/avatar.webp", avatar.URL)
	})

	t.Run("No Upload Yet", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("ListObjects", ctx, "panel", "profile-pictures/user-1/").Return(nil, nil)

		_, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).GetAvatar(ctx, "user-1")

		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("Ignores Nested Owner", func(t *testing.T) {
		now := time.Now()
		storage := new(MockStorage)
		storage.On("ListObjects", ctx, "panel", "profile-pictures/x/").Return([]contracts.StoredObject{
			{Key: "profile-pictures/x/avatar.png", LastModified: now.Add(-time.Hour)},
			{Key: "profile-pictures/x/evil/avatar.png", LastModified: now},
			{Key: "profile-pictures/x/evil/"},
		}, nil)
		storage.On("GetObjectUrlWithExpiryTime", ctx, "panel", "profile-pictures/x/avatar.png", 30*time.Minute).
			Return("https://minio.local/avatar.png", nil)

		avatar, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).GetAvatar(ctx, "x")

		require.NoError(t, err)
		assert.Equal(t, "profile-pictures/x/avatar.png", avatar.ObjectName)
	})

	t.Run("Only Nested Objects", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("ListObjects", ctx, "panel", "profile-pictures/x/").Return([]contracts.StoredObject{
			{Key: "profile-pictures/x/evil/avatar.png", LastModified: time.Now()},
		}, nil)

		_, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).GetAvatar(ctx, "x")

		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
		storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("List Failure", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("ListObjects", ctx, "panel", "profile-pictures/user-1/").
			Return(nil, exceptions.ErrMinioListObjects(errors.New("timeout"), "panel"))

		_, err := NewAvatarUsecase(storage, testConfig(), zap.NewNop()).GetAvatar(ctx, "user-1")

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
	})
}
