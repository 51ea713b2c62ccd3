package questionnaires

import (
	"context"
	"errors"
	"fmt"
	"panel-service/internal/app/config"
	"panel-service/internal/app/contracts"
	"panel-service/internal/app/models"
	"panel-service/internal/app/services/core/geography"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/dto/responses"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var errAmbiguousAnswer = errors.New("provide exactly one of value, values, toggle or other")

const (
	sessionLockRetryInterval = 25 * time.Millisecond
	cleanupTimeout           = 5 * time.Second
)

type questionnaireUsecase struct {
	Definition                      *Definition
	Lookup                          *geography.Lookup
	QuestionnaireResponseRepository contracts.QuestionnaireResponseRepository
	RedisRepository                 contracts.RedisRepository
	LockerService                   contracts.LockerService
	EventPublisher                  contracts.EventPublisher
	ProfileUsecase                  contracts.ProfileUsecase
	InternalConfig                  *config.InternalConfig
	Log                             *zap.Logger
}

func NewQuestionnaireUsecase(
	definition *Definition,
	lookup *geography.Lookup,
	questionnaireResponseRepository contracts.QuestionnaireResponseRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	profileUsecase contracts.ProfileUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QuestionnaireUsecase {
	return &questionnaireUsecase{
		Definition:                      definition,
		Lookup:                          lookup,
		QuestionnaireResponseRepository: questionnaireResponseRepository,
		RedisRepository:                 redisRepository,
		LockerService:                   lockerService,
		EventPublisher:                  eventPublisher,
		ProfileUsecase:                  profileUsecase,
		InternalConfig:                  internalConfig,
		Log:                             logger,
	}
}

func (uc *questionnaireUsecase) GetDefinition(ctx context.Context) (*responses.QuestionnaireDefinition, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("questionnaireUsecase.GetDefinition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	steps := uc.Definition.Steps()
	response := &responses.QuestionnaireDefinition{Steps: make([]responses.QuestionnaireStep, len(steps))}
	for i, step := range steps {
		fields := make([]responses.QuestionnaireField, len(step.Fields))
		for j, field := range step.Fields {
			fields[j] = responses.QuestionnaireField{
				Name:       field.Name,
				PayloadKey: field.Key(),
				Label:      field.Label,
				Kind:       field.Kind.String(),
				Options:    field.Options,
				AllowOther: field.AllowOther,
				Required:   field.Required,
				Lookup:     field.Lookup.String(),
				Hint:       field.Hint,
			}
		}
		response.Steps[i] = responses.QuestionnaireStep{
			Index:  i,
			Key:    step.Key,
			Title:  step.Title,
			Fields: fields,
		}
	}
	return response, nil
}

func (uc *questionnaireUsecase) GetStatus(ctx context.Context, owner string) (*responses.QuestionnaireStatus, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("questionnaireUsecase.GetStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	existing, err := uc.QuestionnaireResponseRepository.FindByOwner(ctx, owner)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.GetStatus error calling QuestionnaireResponseRepository.FindByOwner",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if existing == nil {
		return &responses.QuestionnaireStatus{Completed: false}, nil
	}
	completedAt := existing.CompletedAt
	return &responses.QuestionnaireStatus{Completed: true, CompletedAt: &completedAt}, nil
}

// StartSession returns the parked session of the owner or opens a new one.
func (uc *questionnaireUsecase) StartSession(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("questionnaireUsecase.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	existing, err := uc.QuestionnaireResponseRepository.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrQuestionnaireAlreadyCompleted(nil)
	}

	var session *Session
	err = uc.withSessionLock(ctx, owner, func() error {
		var err error
		session, err = uc.loadSession(ctx, owner)
		if err == nil || exceptions.StatusCodeOf(err) != constvars.StatusNotFound {
			return err
		}

		session = NewSession(uc.Definition, uc.Lookup, uc.sessionOptions(ctx, owner)...)
		err = uc.saveSession(ctx, owner, session)
		if err != nil {
			return err
		}

		uc.Log.Info("questionnaireUsecase.StartSession new session opened",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOwnerKey, owner),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

func (uc *questionnaireUsecase) GetSession(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("questionnaireUsecase.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	session, err := uc.loadSession(ctx, owner)
	if err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

func (uc *questionnaireUsecase) UpdateAnswer(ctx context.Context, owner string, request *requests.QuestionnaireAnswer) (*responses.QuestionnaireSession, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("questionnaireUsecase.UpdateAnswer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
		zap.String(constvars.LoggingFieldKey, request.Field),
	)

	var session *Session
	err := uc.withSessionLock(ctx, owner, func() error {
		var err error
		session, err = uc.loadSession(ctx, owner)
		if err != nil {
			return err
		}

		err = applyAnswer(session, request)
		if err != nil {
			uc.Log.Info("questionnaireUsecase.UpdateAnswer mutation rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFieldKey, request.Field),
				zap.Error(err),
			)
			return exceptions.ErrQuestionnaireMutation(err)
		}

		return uc.saveSession(ctx, owner, session)
	})
	if err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

func applyAnswer(session *Session, request *requests.QuestionnaireAnswer) error {
	provided := 0
	for _, set := range []bool{request.Value != nil, request.Values != nil, request.Toggle != nil, request.Other != nil} {
		if set {
			provided++
		}
	}
	if provided != 1 {
		return errAmbiguousAnswer
	}

	switch {
	case request.Value != nil:
		return session.SetValue(request.Field, *request.Value)
	case request.Values != nil:
		return session.SetValues(request.Field, request.Values)
	case request.Toggle != nil:
		return session.Toggle(request.Field, *request.Toggle)
	default:
		return session.SetOther(request.Field, *request.Other)
	}
}

func (uc *questionnaireUsecase) Advance(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	uc.Log.Info("questionnaireUsecase.Advance called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingOwnerKey, owner),
	)
	return uc.navigate(ctx, owner, func(s *Session) { s.Advance() })
}

func (uc *questionnaireUsecase) Retreat(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	uc.Log.Info("questionnaireUsecase.Retreat called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingOwnerKey, owner),
	)
	return uc.navigate(ctx, owner, func(s *Session) { s.Retreat() })
}

func (uc *questionnaireUsecase) JumpTo(ctx context.Context, owner string, request *requests.QuestionnaireJump) (*responses.QuestionnaireSession, error) {
	uc.Log.Info("questionnaireUsecase.JumpTo called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingOwnerKey, owner),
		zap.Int(constvars.LoggingStepKey, *request.Step),
	)
	return uc.navigate(ctx, owner, func(s *Session) { s.JumpTo(*request.Step) })
}

// navigate applies a step move. A refused move is not an error; the
// session state carries the validation message.
func (uc *questionnaireUsecase) navigate(ctx context.Context, owner string, move func(*Session)) (*responses.QuestionnaireSession, error) {
	var session *Session
	err := uc.withSessionLock(ctx, owner, func() error {
		var err error
		session, err = uc.loadSession(ctx, owner)
		if err != nil {
			return err
		}

		move(session)
		return uc.saveSession(ctx, owner, session)
	})
	if err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(session), nil
}

// Submit persists the finished questionnaire. On a gateway failure the
// session state is returned together with the error so the client can retry.
// Everything after the gateway call runs on a cleanup context, so a gateway
// that used up the request deadline still leaves the session re-armed.
func (uc *questionnaireUsecase) Submit(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("questionnaireUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyQuestionnaireSubmitLock, owner)
	lockTTL := time.Duration(uc.InternalConfig.Questionnaire.SubmitLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrQuestionnaireSubmitInProgress(nil)
	}
	defer uc.releaseLock(ctx, lockKey, lockValue)

	var (
		session    *Session
		outcome    SubmitOutcome
		gatewayErr error
	)
	err = uc.withSessionLock(ctx, owner, func() error {
		var err error
		session, err = uc.loadSession(ctx, owner)
		if err != nil {
			return err
		}

		outcome = session.Submit(ctx, owner, SubmissionGatewayFunc(func(ctx context.Context, submission *Submission) error {
			gatewayErr = uc.createResponse(ctx, submission)
			return gatewayErr
		}))

		cleanupCtx, cancel := cleanupContext(ctx)
		defer cancel()

		if outcome == SubmitAccepted {
			uc.afterSubmit(cleanupCtx, owner, session.Submission())
			return nil
		}
		return uc.saveSession(cleanupCtx, owner, session)
	})
	if err != nil {
		return nil, err
	}

	switch outcome {
	case SubmitRejected:
		return uc.buildSessionResponse(session), nil

	case SubmitFailed:
		uc.Log.Error("questionnaireUsecase.Submit submission gateway failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOwnerKey, owner),
			zap.Error(gatewayErr),
		)
		if gatewayErr == nil {
			gatewayErr = errors.New("submission payload could not be built")
		}
		return uc.buildSessionResponse(session), exceptions.ErrQuestionnaireSubmissionFailed(gatewayErr)
	}

	uc.Log.Info("questionnaireUsecase.Submit questionnaire completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)
	return uc.buildSessionResponse(session), nil
}

func (uc *questionnaireUsecase) createResponse(ctx context.Context, submission *Submission) error {
	response := &models.QuestionnaireResponse{
		Owner:       submission.Owner,
		Fields:      submission.Fields,
		CompletedAt: submission.CompletedAt,
	}
	response.SetCreatedAtUpdatedAt()

	_, err := uc.QuestionnaireResponseRepository.Create(ctx, response)
	return err
}

// afterSubmit runs the follow-ups of an accepted submission. The response is
// already stored, so failures here are logged and never returned.
func (uc *questionnaireUsecase) afterSubmit(ctx context.Context, owner string, submission *Submission) {
	requestID := utils.GetRequestIDFromContext(ctx)

	err := uc.EventPublisher.Publish(ctx, uc.InternalConfig.RabbitMQ.QuestionnaireCompletedQueue, constvars.EventQuestionnaireCompleted, map[string]interface{}{
		"owner":        owner,
		"completed_at": submission.CompletedAt,
	})
	if err != nil {
		uc.Log.Error("questionnaireUsecase.afterSubmit error publishing completion event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	err = uc.ProfileUsecase.ApplyQuestionnaireAnswers(ctx, owner, submission.Fields)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.afterSubmit error projecting answers into profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	err = uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyQuestionnaireSession, owner))
	if err != nil {
		uc.Log.Error("questionnaireUsecase.afterSubmit error deleting parked session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// AbandonSession discards every answer given so far.
func (uc *questionnaireUsecase) AbandonSession(ctx context.Context, owner string) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("questionnaireUsecase.AbandonSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	return uc.withSessionLock(ctx, owner, func() error {
		return uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyQuestionnaireSession, owner))
	})
}

func (uc *questionnaireUsecase) GetResponse(ctx context.Context, owner string) (*responses.QuestionnaireResponse, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("questionnaireUsecase.GetResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	existing, err := uc.QuestionnaireResponseRepository.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrQuestionnaireResponseNotFound(nil)
	}

	multi := make(map[string]bool)
	for _, step := range uc.Definition.Steps() {
		for _, field := range step.Fields {
			if field.Kind == KindMultiChoice {
				multi[field.Key()] = true
			}
		}
	}

	fields := make(map[string]interface{}, len(existing.Fields))
	for key, value := range existing.Fields {
		if !multi[key] {
			fields[key] = value
			continue
		}
		values, err := DecodeValues(value)
		if err != nil {
			uc.Log.Warn("questionnaireUsecase.GetResponse stored multi-choice value is not a JSON array",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFieldKey, key),
			)
			fields[key] = value
			continue
		}
		fields[key] = values
	}

	return &responses.QuestionnaireResponse{
		ID:          existing.ID,
		Owner:       existing.Owner,
		Fields:      fields,
		CompletedAt: existing.CompletedAt,
	}, nil
}

func (uc *questionnaireUsecase) sessionOptions(ctx context.Context, owner string) []SessionOption {
	requestID := utils.GetRequestIDFromContext(ctx)
	return []SessionOption{
		WithFailureMessage(constvars.ErrClientSubmissionFailed),
		WithStepChangedHook(func(from, to int) {
			uc.Log.Info("questionnaireUsecase step changed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOwnerKey, owner),
				zap.Int(constvars.LoggingStepKey, to),
				zap.Int("from_step", from),
			)
		}),
	}
}

// withSessionLock runs change while holding the session lock of owner.
// Concurrent changes to the same session wait for their turn until ctx ends.
func (uc *questionnaireUsecase) withSessionLock(ctx context.Context, owner string, change func() error) error {
	key := fmt.Sprintf(constvars.RedisKeyQuestionnaireSessionLock, owner)
	ttl := time.Duration(uc.InternalConfig.Questionnaire.SessionLockTTLInSeconds) * time.Second

	for {
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, ttl)
		if err != nil {
			return err
		}
		if acquired {
			defer uc.releaseLock(ctx, key, lockValue)
			return change()
		}

		select {
		case <-ctx.Done():
			return exceptions.ErrQuestionnaireSessionBusy(ctx.Err())
		case <-time.After(sessionLockRetryInterval):
		}
	}
}

func (uc *questionnaireUsecase) releaseLock(ctx context.Context, key, lockValue string) {
	cleanupCtx, cancel := cleanupContext(ctx)
	defer cancel()

	err := uc.LockerService.Unlock(cleanupCtx, key, lockValue)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.releaseLock error releasing lock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

// cleanupContext keeps the request values of ctx but not its deadline.
func cleanupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
}

func (uc *questionnaireUsecase) loadSession(ctx context.Context, owner string) (*Session, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	key := fmt.Sprintf(constvars.RedisKeyQuestionnaireSession, owner)

	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.loadSession error retrieving session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrQuestionnaireSessionNotFound(nil)
	}

	var snapshot Snapshot
	err = json.Unmarshal([]byte(data), &snapshot)
	if err != nil {
		return nil, exceptions.ErrQuestionnaireSessionCorrupted(err)
	}

	session, err := RestoreSession(uc.Definition, uc.Lookup, snapshot, uc.sessionOptions(ctx, owner)...)
	if err != nil {
		return nil, exceptions.ErrQuestionnaireSessionCorrupted(err)
	}
	return session, nil
}

func (uc *questionnaireUsecase) saveSession(ctx context.Context, owner string, session *Session) error {
	key := fmt.Sprintf(constvars.RedisKeyQuestionnaireSession, owner)
	ttl := time.Duration(uc.InternalConfig.Questionnaire.SessionTTLInMinutes) * time.Minute

	err := uc.RedisRepository.Set(ctx, key, session.Snapshot(), ttl)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.saveSession error storing session in Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *questionnaireUsecase) buildSessionResponse(session *Session) *responses.QuestionnaireSession {
	state := session.State()

	answers := make(map[string]responses.QuestionnaireAnswer, len(state.Answers))
	for name, answer := range state.Answers {
		answers[name] = responses.QuestionnaireAnswer{
			Value:  answer.Value,
			Values: answer.Values,
			Other:  answer.Other,
		}
	}

	return &responses.QuestionnaireSession{
		Step:         state.Step,
		StepKey:      state.StepKey,
		StepTitle:    state.StepTitle,
		StepCount:    state.StepCount,
		IsLastStep:   state.IsLastStep,
		Submitted:    state.Submitted,
		ErrorMessage: state.ErrorMessage,
		Answers:      answers,
		Location:     uc.locationOptions(session),
	}
}

func (uc *questionnaireUsecase) locationOptions(session *Session) responses.QuestionnaireLocationOptions {
	def := session.Definition()
	selection := uc.Lookup.Resolve(
		session.answerValue(def.lookupField(LookupCountry)),
		session.answerValue(def.lookupField(LookupState)),
		session.answerValue(def.lookupField(LookupCity)),
	)
	return responses.QuestionnaireLocationOptions{
		Countries: uc.Lookup.CountryNames(),
		States:    uc.Lookup.StatesOf(selection.Country),
		Cities:    uc.Lookup.CitiesOf(selection.State),
	}
}
