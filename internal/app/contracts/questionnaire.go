package contracts

import (
	"context"
	"panel-service/internal/app/models"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/dto/responses"
)

type QuestionnaireUsecase interface {
	GetDefinition(ctx context.Context) (*responses.QuestionnaireDefinition, error)
	GetStatus(ctx context.Context, owner string) (*responses.QuestionnaireStatus, error)
	StartSession(ctx context.Context, owner string) (*responses.QuestionnaireSession, error)
	GetSession(ctx context.Context, owner string) (*responses.QuestionnaireSession, error)
	UpdateAnswer(ctx context.Context, owner string, request *requests.QuestionnaireAnswer) (*responses.QuestionnaireSession, error)
	Advance(ctx context.Context, owner string) (*responses.QuestionnaireSession, error)
	Retreat(ctx context.Context, owner string) (*responses.QuestionnaireSession, error)
	JumpTo(ctx context.Context, owner string, request *requests.QuestionnaireJump) (*responses.QuestionnaireSession, error)
	Submit(ctx context.Context, owner string) (*responses.QuestionnaireSession, error)
	AbandonSession(ctx context.Context, owner string) error
	GetResponse(ctx context.Context, owner string) (*responses.QuestionnaireResponse, error)
}

// QuestionnaireResponseRepository is the submission gateway backing store.
type QuestionnaireResponseRepository interface {
	Create(ctx context.Context, response *models.QuestionnaireResponse) (string, error)
	FindByOwner(ctx context.Context, owner string) (*models.QuestionnaireResponse, error)
	EnsureIndexes(ctx context.Context) error
}
