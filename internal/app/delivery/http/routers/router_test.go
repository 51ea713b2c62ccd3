package routers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"panel-service/internal/app/config"
	"panel-service/internal/app/delivery/http/controllers"
	"panel-service/internal/app/delivery/http/middlewares"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/dto/responses"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "router-test-secret"

type routerFixture struct {
	router        *chi.Mux
	geography     *MockGeographyUsecase
	questionnaire *MockQuestionnaireUsecase
	profile       *MockProfileUsecase
	avatar        *MockAvatarUsecase
	token         string
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                 "v1",
			EndpointPrefix:          "/api",
			AllowedOrigins:          "*",
			MaxRequests:             1000,
			RequestTimeoutInSeconds: 5,
		},
		JWT:   config.AppJWT{Secret: testSecret, ExpTimeInHour: 1},
		Minio: config.AppMinio{ProfilePictureMaxUploadSizeInMB: 1},
	}

	f := &routerFixture{
		router:        chi.NewRouter(),
		geography:     new(MockGeographyUsecase),
		questionnaire: new(MockQuestionnaireUsecase),
		profile:       new(MockProfileUsecase),
		avatar:        new(MockAvatarUsecase),
	}
	SetupRoutes(
		f.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewGeographyController(logger, f.geography, internalConfig),
		controllers.NewQuestionnaireController(logger, f.questionnaire, internalConfig),
		controllers.NewProfileController(logger, f.profile, internalConfig),
		controllers.NewAvatarController(logger, f.avatar, internalConfig),
	)

	token, err := utils.GenerateIdentityJWT("user-1", testSecret, 1)
	require.NoError(t, err)
	f.token = token
	return f
}

func (f *routerFixture) do(method, path string, body []byte, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if authenticated {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+f.token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGeographyRoutes(t *testing.T) {
	t.Run("Countries Are Public", func(t *testing.T) {
		f := newRouterFixture(t)
		f.geography.On("FindCountries", mock.Anything).Return([]string{"France", "United States"}, nil)

		rec := f.do(http.MethodGet, "/api/v1/geography/countries", nil, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, []interface{}{"France", "United States"}, data["countries"])
	})

	t.Run("Escaped Names Are Unescaped", func(t *testing.T) {
		f := newRouterFixture(t)
		f.geography.On("FindCities", mock.Anything, "United States", "New York").Return([]string{"Buffalo"}, nil)

		rec := f.do(http.MethodGet, "/api/v1/geography/countries/United%20States/states/New%20York/cities", nil, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.geography.AssertExpectations(t)
	})

	t.Run("Unknown Country", func(t *testing.T) {
		f := newRouterFixture(t)
		f.geography.On("FindStates", mock.Anything, "Atlantis").
			Return(nil, exceptions.ErrCountryNotFound(nil, "Atlantis"))

		rec := f.do(http.MethodGet, "/api/v1/geography/countries/Atlantis/states", nil, false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["success"])
	})
}

func TestQuestionnaireRoutes(t *testing.T) {
	session := &responses.QuestionnaireSession{Step: 0, StepKey: "role", StepCount: 5}

	t.Run("Requires Token", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/questionnaire/definition", nil, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		f.questionnaire.AssertNotCalled(t, "GetDefinition", mock.Anything)
	})

	t.Run("Start Session", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaire.On("StartSession", mock.Anything, "user-1").Return(session, nil)

		rec := f.do(http.MethodPost, "/api/v1/questionnaire/session", nil, true)

		assert.Equal(t, http.StatusCreated, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "role", data["step_key"])
	})

	t.Run("Start Session Already Completed", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaire.On("StartSession", mock.Anything, "user-1").
			Return(nil, exceptions.ErrQuestionnaireAlreadyCompleted(nil))

		rec := f.do(http.MethodPost, "/api/v1/questionnaire/session", nil, true)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Update Answer", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaire.On("UpdateAnswer", mock.Anything, "user-1", mock.MatchedBy(func(r *requests.QuestionnaireAnswer) bool {
			return r.Field == "jobTitle" && r.Value != nil && *r.Value == "Engineer"
		})).Return(session, nil)

		rec := f.do(http.MethodPut, "/api/v1/questionnaire/session/answers", []byte(`{"field":"jobTitle","value":"Engineer"}`), true)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.questionnaire.AssertExpectations(t)
	})

	t.Run("Update Answer Without Field", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(http.MethodPut, "/api/v1/questionnaire/session/answers", []byte(`{"value":"Engineer"}`), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.questionnaire.AssertNotCalled(t, "UpdateAnswer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Jump Requires Step", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/questionnaire/session/jump", []byte(`{}`), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Jump", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaire.On("JumpTo", mock.Anything, "user-1", mock.MatchedBy(func(r *requests.QuestionnaireJump) bool {
			return r.Step != nil && *r.Step == 0
		})).Return(session, nil)

		rec := f.do(http.MethodPost, "/api/v1/questionnaire/session/jump", []byte(`{"step":0}`), true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Submit Failure Keeps State", func(t *testing.T) {
		f := newRouterFixture(t)
		failed := &responses.QuestionnaireSession{
			Step:         4,
			IsLastStep:   true,
			ErrorMessage: "Something went wrong. Please try again.",
		}
		f.questionnaire.On("Submit", mock.Anything, "user-1").
			Return(failed, exceptions.ErrQuestionnaireSubmissionFailed(errors.New("mongo unavailable")))

		rec := f.do(http.MethodPost, "/api/v1/questionnaire/session/submit", nil, true)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "Something went wrong. Please try again.", data["error_message"])
		assert.Equal(t, false, data["submitted"])
	})

	t.Run("Abandon", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaire.On("AbandonSession", mock.Anything, "user-1").Return(nil)

		rec := f.do(http.MethodDelete, "/api/v1/questionnaire/session", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.questionnaire.AssertExpectations(t)
	})
}

func TestProfileRoutes(t *testing.T) {
	t.Run("Get Profile", func(t *testing.T) {
		f := newRouterFixture(t)
		f.profile.On("GetProfile", mock.Anything, "user-1").Return(&responses.UserProfile{
			Owner:      "user-1",
			Completion: responses.ProfileCompletion{Percentage: 42, IncompleteCategories: []string{"IDENTITY"}},
		}, nil)

		rec := f.do(http.MethodGet, "/api/v1/profiles/me", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		completion := data["completion"].(map[string]interface{})
		assert.Equal(t, float64(42), completion["percentage"])
	})

	t.Run("Update Rejects Invalid Email", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(http.MethodPut, "/api/v1/profiles/me", []byte(`{"email":"not-an-email"}`), true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.profile.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload Avatar", func(t *testing.T) {
		f := newRouterFixture(t)
		f.avatar.On("UploadAvatar", mock.Anything, "user-1", mock.MatchedBy(func(r *requests.UploadAvatar) bool {
			return r.ContentType == constvars.MIMEImagePNG && r.Size == int64(len(r.Data))
		})).Return(&responses.Avatar{ObjectName: "profile-pictures/user-1/avatar.png"}, nil)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile(constvars.AvatarFormField, "me.png")
		require.NoError(t, err)
		_, err = part.Write(append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/me/avatar", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+f.token)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.avatar.AssertExpectations(t)
	})

	t.Run("Upload Avatar Without File", func(t *testing.T) {
		f := newRouterFixture(t)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/me/avatar", strings.NewReader("plain"))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMETextPlain)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+f.token)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.avatar.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Avatar Not Found", func(t *testing.T) {
		f := newRouterFixture(t)
		f.avatar.On("GetAvatar", mock.Anything, "user-1").Return(nil, exceptions.ErrAvatarNotFound(nil))

		rec := f.do(http.MethodGet, "/api/v1/profiles/me/avatar", nil, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
