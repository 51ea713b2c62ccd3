package profiles

import (
	"context"
	"panel-service/internal/app/contracts"
	"panel-service/internal/app/models"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type userProfileMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	userProfileMongoRepositoryInstance contracts.UserProfileRepository
	onceUserProfileMongoRepository     sync.Once
)

func NewUserProfileMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.UserProfileRepository {
	onceUserProfileMongoRepository.Do(func() {
		userProfileMongoRepositoryInstance = &userProfileMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionUserProfiles),
			Log:        logger,
		}
	})
	return userProfileMongoRepositoryInstance
}

func (repo *userProfileMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("owner_unique"),
	})
	if err != nil {
		repo.Log.Error("userProfileMongoRepository.EnsureIndexes error creating index",
			zap.Error(err),
		)
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *userProfileMongoRepository) FindByOwner(ctx context.Context, owner string) (*models.UserProfile, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	repo.Log.Info("userProfileMongoRepository.FindByOwner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	profile := new(models.UserProfile)
	err := repo.Collection.FindOne(ctx, bson.M{"owner": owner}).Decode(profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("userProfileMongoRepository.FindByOwner error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return profile, nil
}

// Upsert replaces the whole profile document of the owner.
func (repo *userProfileMongoRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	repo.Log.Info("userProfileMongoRepository.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, profile.Owner),
	)

	replacement := *profile
	replacement.ID = ""
	_, err := repo.Collection.ReplaceOne(ctx,
		bson.M{"owner": profile.Owner},
		replacement,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		repo.Log.Error("userProfileMongoRepository.Upsert error replacing document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
