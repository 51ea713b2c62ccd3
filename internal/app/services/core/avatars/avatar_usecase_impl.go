package avatars

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"panel-service/internal/app/config"
	"panel-service/internal/app/contracts"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/dto/responses"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const bytesPerMegabyte = 1024 * 1024

var errNoAvatarObject = errors.New("no avatar object stored for owner")

type avatarUsecase struct {
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAvatarUsecase(storage contracts.Storage, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AvatarUsecase {
	return &avatarUsecase{
		Storage:        storage,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *avatarUsecase) UploadAvatar(ctx context.Context, owner string, request *requests.UploadAvatar) (*responses.Avatar, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("avatarUsecase.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("avatarUsecase.UploadAvatar error validating image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	maxSizeInMB := uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB
	if request.Size > int64(maxSizeInMB)*bytesPerMegabyte {
		err = fmt.Errorf("image is %d bytes", request.Size)
		uc.Log.Error("avatarUsecase.UploadAvatar image too large",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageTooLarge(err, maxSizeInMB)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	extension := constvars.AllowedImageExtensions[request.ContentType]
	objectName := fmt.Sprintf(constvars.AvatarObjectNameFormat, owner, extension)

	err = uc.Storage.PutObject(ctx, bucketName, objectName, bytes.NewReader(request.Data), request.Size, request.ContentType)
	if err != nil {
		uc.Log.Error("avatarUsecase.UploadAvatar error calling Storage.PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("avatarUsecase.UploadAvatar object stored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return uc.presign(ctx, objectName)
}

// GetAvatar returns the most recently written avatar object of the owner,
// which matters when an owner switched image formats between uploads. Only
// the exact avatar.<ext> names count; anything nested deeper under the prefix
// belongs to another owner.
func (uc *avatarUsecase) GetAvatar(ctx context.Context, owner string) (*responses.Avatar, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("avatarUsecase.GetAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	prefix := fmt.Sprintf(constvars.AvatarObjectPrefixFormat, owner)
	objects, err := uc.Storage.ListObjects(ctx, uc.InternalConfig.Minio.BucketName, prefix)
	if err != nil {
		uc.Log.Error("avatarUsecase.GetAvatar error calling Storage.ListObjects",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	names := avatarObjectNames(owner)
	var latest *contracts.StoredObject
	for i := range objects {
		if !names[objects[i].Key] {
			continue
		}
		if latest == nil || objects[i].LastModified.After(latest.LastModified) {
			latest = &objects[i]
		}
	}
	if latest == nil {
		return nil, exceptions.ErrAvatarNotFound(errNoAvatarObject)
	}
	return uc.presign(ctx, latest.Key)
}

func avatarObjectNames(owner string) map[string]bool {
	names := make(map[string]bool, len(constvars.AllowedImageExtensions))
	for _, extension := range constvars.AllowedImageExtensions {
		names[fmt.Sprintf(constvars.AvatarObjectNameFormat, owner, extension)] = true
	}
	return names
}

func (uc *avatarUsecase) presign(ctx context.Context, objectName string) (*responses.Avatar, error) {
	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInMinutes) * time.Minute

	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("avatarUsecase.presign error calling Storage.GetObjectUrlWithExpiryTime",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Avatar{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  time.Now().Add(expiry).UTC(),
	}, nil
}
