package controllers

import (
	"context"
	"errors"
	"net/http"
	"panel-service/internal/app/config"
	"panel-service/internal/app/contracts"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/dto/responses"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase contracts.QuestionnaireUsecase
	InternalConfig       *config.InternalConfig
}

type sessionAction func(ctx context.Context, owner string) (*responses.QuestionnaireSession, error)

func NewQuestionnaireController(logger *zap.Logger, questionnaireUsecase contracts.QuestionnaireUsecase, internalConfig *config.InternalConfig) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
		InternalConfig:       internalConfig,
	}
}

func (ctrl *QuestionnaireController) GetDefinition(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("QuestionnaireController.GetDefinition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	definition, err := ctrl.QuestionnaireUsecase.GetDefinition(ctx)
	if err != nil {
		ctrl.writeError(w, requestID, "GetDefinition", err, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireDefinitionSuccessMessage, definition)
}

func (ctrl *QuestionnaireController) GetStatus(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("QuestionnaireController.GetStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, err := ownerFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	status, err := ctrl.QuestionnaireUsecase.GetStatus(ctx, owner)
	if err != nil {
		ctrl.writeError(w, requestID, "GetStatus", err, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireStatusSuccessMessage, status)
}

func (ctrl *QuestionnaireController) StartSession(w http.ResponseWriter, r *http.Request) {
	ctrl.handleSession(w, r, "StartSession", constvars.StatusCreated, constvars.StartQuestionnaireSessionSuccessMessage, ctrl.QuestionnaireUsecase.StartSession)
}

func (ctrl *QuestionnaireController) GetSession(w http.ResponseWriter, r *http.Request) {
	ctrl.handleSession(w, r, "GetSession", constvars.StatusOK, constvars.GetQuestionnaireSessionSuccessMessage, ctrl.QuestionnaireUsecase.GetSession)
}

func (ctrl *QuestionnaireController) Advance(w http.ResponseWriter, r *http.Request) {
	ctrl.handleSession(w, r, "Advance", constvars.StatusOK, constvars.NavigateQuestionnaireSuccessMessage, ctrl.QuestionnaireUsecase.Advance)
}

func (ctrl *QuestionnaireController) Retreat(w http.ResponseWriter, r *http.Request) {
	ctrl.handleSession(w, r, "Retreat", constvars.StatusOK, constvars.NavigateQuestionnaireSuccessMessage, ctrl.QuestionnaireUsecase.Retreat)
}

// Submit answers 200 even when the step is invalid; the returned state then
// carries the validation message and Submitted stays false.
func (ctrl *QuestionnaireController) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl.handleSession(w, r, "Submit", constvars.StatusOK, constvars.SubmitQuestionnaireSuccessMessage, ctrl.QuestionnaireUsecase.Submit)
}

func (ctrl *QuestionnaireController) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	request := new(requests.QuestionnaireAnswer)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("QuestionnaireController.UpdateAnswer error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.handleSession(w, r, "UpdateAnswer", constvars.StatusOK, constvars.UpdateQuestionnaireAnswerSuccessMessage,
		func(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
			return ctrl.QuestionnaireUsecase.UpdateAnswer(ctx, owner, request)
		})
}

func (ctrl *QuestionnaireController) JumpTo(w http.ResponseWriter, r *http.Request) {
	request := new(requests.QuestionnaireJump)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("QuestionnaireController.JumpTo error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.handleSession(w, r, "JumpTo", constvars.StatusOK, constvars.NavigateQuestionnaireSuccessMessage,
		func(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
			return ctrl.QuestionnaireUsecase.JumpTo(ctx, owner, request)
		})
}

func (ctrl *QuestionnaireController) AbandonSession(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("QuestionnaireController.AbandonSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, err := ownerFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	err = ctrl.QuestionnaireUsecase.AbandonSession(ctx, owner)
	if err != nil {
		ctrl.writeError(w, requestID, "AbandonSession", err, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AbandonQuestionnaireSuccessMessage, nil)
}

func (ctrl *QuestionnaireController) GetResponse(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("QuestionnaireController.GetResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, err := ownerFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.GetResponse(ctx, owner)
	if err != nil {
		ctrl.writeError(w, requestID, "GetResponse", err, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireResponseSuccessMessage, response)
}

func (ctrl *QuestionnaireController) handleSession(w http.ResponseWriter, r *http.Request, method string, statusCode int, message string, action sessionAction) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("QuestionnaireController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, err := ownerFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	session, err := action(ctx, owner)
	if err != nil {
		ctrl.writeError(w, requestID, method, err, session)
		return
	}

	utils.BuildSuccessResponse(w, statusCode, message, session)
}

// writeError keeps the session state in the body when the usecase returned
// one alongside the error, so a failed submit can still render its message.
func (ctrl *QuestionnaireController) writeError(w http.ResponseWriter, requestID, method string, err error, session *responses.QuestionnaireSession) {
	ctrl.Log.Error("QuestionnaireController."+method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	if session != nil {
		utils.BuildErrorResponseWithData(ctrl.Log, w, err, session)
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
