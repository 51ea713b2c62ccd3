package routers

import (
	"context"

	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockGeographyUsecase struct {
	mock.Mock
}

func (m *MockGeographyUsecase) FindCountries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockGeographyUsecase) FindStates(ctx context.Context, country string) ([]string, error) {
	args := m.Called(ctx, country)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockGeographyUsecase) FindCities(ctx context.Context, country, state string) ([]string, error) {
	args := m.Called(ctx, country, state)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type MockQuestionnaireUsecase struct {
	mock.Mock
}

func (m *MockQuestionnaireUsecase) session(args mock.Arguments) (*responses.QuestionnaireSession, error) {
	session, _ := args.Get(0).(*responses.QuestionnaireSession)
	return session, args.Error(1)
}

func (m *MockQuestionnaireUsecase) GetDefinition(ctx context.Context) (*responses.QuestionnaireDefinition, error) {
	args := m.Called(ctx)
	definition, _ := args.Get(0).(*responses.QuestionnaireDefinition)
	return definition, args.Error(1)
}

func (m *MockQuestionnaireUsecase) GetStatus(ctx context.Context, owner string) (*responses.QuestionnaireStatus, error) {
	args := m.Called(ctx, owner)
	status, _ := args.Get(0).(*responses.QuestionnaireStatus)
	return status, args.Error(1)
}

func (m *MockQuestionnaireUsecase) StartSession(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	return m.session(m.Called(ctx, owner))
}

func (m *MockQuestionnaireUsecase) GetSession(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	return m.session(m.Called(ctx, owner))
}

func (m *MockQuestionnaireUsecase) UpdateAnswer(ctx context.Context, owner string, request *requests.QuestionnaireAnswer) (*responses.QuestionnaireSession, error) {
	return m.session(m.Called(ctx, owner, request))
}

func (m *MockQuestionnaireUsecase) Advance(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	return m.session(m.Called(ctx, owner))
}

func (m *MockQuestionnaireUsecase) Retreat(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	return m.session(m.Called(ctx, owner))
}

func (m *MockQuestionnaireUsecase) JumpTo(ctx context.Context, owner string, request *requests.QuestionnaireJump) (*responses.QuestionnaireSession, error) {
	return m.session(m.Called(ctx, owner, request))
}

func (m *MockQuestionnaireUsecase) Submit(ctx context.Context, owner string) (*responses.QuestionnaireSession, error) {
	return m.session(m.Called(ctx, owner))
}

func (m *MockQuestionnaireUsecase) AbandonSession(ctx context.Context, owner string) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockQuestionnaireUsecase) GetResponse(ctx context.Context, owner string) (*responses.QuestionnaireResponse, error) {
	args := m.Called(ctx, owner)
	response, _ := args.Get(0).(*responses.QuestionnaireResponse)
	return response, args.Error(1)
}

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, owner string) (*responses.UserProfile, error) {
	args := m.Called(ctx, owner)
	profile, _ := args.Get(0).(*responses.UserProfile)
	return profile, args.Error(1)
}

func (m *MockProfileUsecase) UpdateProfile(ctx context.Context, owner string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	args := m.Called(ctx, owner, request)
	profile, _ := args.Get(0).(*responses.UserProfile)
	return profile, args.Error(1)
}

func (m *MockProfileUsecase) ApplyQuestionnaireAnswers(ctx context.Context, owner string, fields map[string]string) error {
	return m.Called(ctx, owner, fields).Error(0)
}

type MockAvatarUsecase struct {
	mock.Mock
}

func (m *MockAvatarUsecase) UploadAvatar(ctx context.Context, owner string, request *requests.UploadAvatar) (*responses.Avatar, error) {
	args := m.Called(ctx, owner, request)
	avatar, _ := args.Get(0).(*responses.Avatar)
	return avatar, args.Error(1)
}

func (m *MockAvatarUsecase) GetAvatar(ctx context.Context, owner string) (*responses.Avatar, error) {
	args := m.Called(ctx, owner)
	avatar, _ := args.Get(0).(*responses.Avatar)
	return avatar, args.Error(1)
}
