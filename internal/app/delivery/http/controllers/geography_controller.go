package controllers

import (
	"context"
	"errors"
	"net/http"
	"panel-service/internal/app/config"
	"panel-service/internal/app/contracts"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/responses"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type GeographyController struct {
	Log              *zap.Logger
	GeographyUsecase contracts.GeographyUsecase
	InternalConfig   *config.InternalConfig
}

func NewGeographyController(logger *zap.Logger, geographyUsecase contracts.GeographyUsecase, internalConfig *config.InternalConfig) *GeographyController {
	return &GeographyController{
		Log:              logger,
		GeographyUsecase: geographyUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *GeographyController) FindCountries(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("GeographyController.FindCountries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	countries, err := ctrl.GeographyUsecase.FindCountries(ctx)
	if err != nil {
		ctrl.writeError(w, requestID, "FindCountries", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCountriesSuccessMessage, responses.Countries{Countries: countries})
}

func (ctrl *GeographyController) FindStates(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("GeographyController.FindStates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	country, err := urlParam(r, constvars.URLParamCountry)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	states, err := ctrl.GeographyUsecase.FindStates(ctx, country)
	if err != nil {
		ctrl.writeError(w, requestID, "FindStates", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStatesSuccessMessage, responses.States{
		Country: country,
		States:  states,
	})
}

func (ctrl *GeographyController) FindCities(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("GeographyController.FindCities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	country, err := urlParam(r, constvars.URLParamCountry)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	state, err := urlParam(r, constvars.URLParamState)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	cities, err := ctrl.GeographyUsecase.FindCities(ctx, country, state)
	if err != nil {
		ctrl.writeError(w, requestID, "FindCities", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCitiesSuccessMessage, responses.Cities{
		Country: country,
		State:   state,
		Cities:  cities,
	})
}

func (ctrl *GeographyController) writeError(w http.ResponseWriter, requestID, method string, err error) {
	ctrl.Log.Error("GeographyController."+method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}
