package contracts

import (
	"context"
	"panel-service/internal/app/models"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/dto/responses"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, owner string) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, owner string, request *requests.UpdateProfile) (*responses.UserProfile, error)
	ApplyQuestionnaireAnswers(ctx context.Context, owner string, fields map[string]string) error
}

type UserProfileRepository interface {
	FindByOwner(ctx context.Context, owner string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
	EnsureIndexes(ctx context.Context) error
}

type AvatarUsecase interface {
	UploadAvatar(ctx context.Context, owner string, request *requests.UploadAvatar) (*responses.Avatar, error)
	GetAvatar(ctx context.Context, owner string) (*responses.Avatar, error)
}
