package controllers

import (
	"context"
	"errors"
	"net/http"
	"panel-service/internal/app/config"
	"panel-service/internal/app/contracts"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AvatarController struct {
	Log            *zap.Logger
	AvatarUsecase  contracts.AvatarUsecase
	InternalConfig *config.InternalConfig
}

func NewAvatarController(logger *zap.Logger, avatarUsecase contracts.AvatarUsecase, internalConfig *config.InternalConfig) *AvatarController {
	return &AvatarController{
		Log:            logger,
		AvatarUsecase:  avatarUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AvatarController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("AvatarController.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, err := ownerFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	maxBytes := int64(ctrl.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB) << 20
	request, err := utils.BuildUploadAvatarRequest(r, maxBytes)
	if err != nil {
		ctrl.Log.Error("AvatarController.UploadAvatar error reading multipart body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	avatar, err := ctrl.AvatarUsecase.UploadAvatar(ctx, owner, request)
	if err != nil {
		ctrl.writeError(w, requestID, "UploadAvatar", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadAvatarSuccessMessage, avatar)
}

func (ctrl *AvatarController) GetAvatar(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("AvatarController.GetAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, err := ownerFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	avatar, err := ctrl.AvatarUsecase.GetAvatar(ctx, owner)
	if err != nil {
		ctrl.writeError(w, requestID, "GetAvatar", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvatarSuccessMessage, avatar)
}

func (ctrl *AvatarController) writeError(w http.ResponseWriter, requestID, method string, err error) {
	ctrl.Log.Error("AvatarController."+method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
