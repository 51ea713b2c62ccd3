package controllers

import (
	"context"
	"errors"
	"net/http"
	"panel-service/internal/app/config"
	"panel-service/internal/app/contracts"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
	InternalConfig *config.InternalConfig
}

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase, internalConfig *config.InternalConfig) *ProfileController {
	return &ProfileController{
		Log:            logger,
		ProfileUsecase: profileUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("ProfileController.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, err := ownerFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	profile, err := ctrl.ProfileUsecase.GetProfile(ctx, owner)
	if err != nil {
		ctrl.Log.Error("ProfileController.GetProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, profile)
}

func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("ProfileController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, err := ownerFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateProfile)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateProfile error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	profile, err := ctrl.ProfileUsecase.UpdateProfile(ctx, owner, request)
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, profile)
}
