package questionnaires

import (
	"context"
	"panel-service/internal/app/contracts"
	"panel-service/internal/app/models"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type questionnaireResponseMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	questionnaireResponseMongoRepositoryInstance contracts.QuestionnaireResponseRepository
	onceQuestionnaireResponseMongoRepository     sync.Once
)

func NewQuestionnaireResponseMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.QuestionnaireResponseRepository {
	onceQuestionnaireResponseMongoRepository.Do(func() {
		questionnaireResponseMongoRepositoryInstance = &questionnaireResponseMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionQuestionnaireResponses),
			Log:        logger,
		}
	})
	return questionnaireResponseMongoRepositoryInstance
}

// EnsureIndexes makes owner unique so a second submission cannot be stored.
func (repo *questionnaireResponseMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("owner_unique"),
	})
	if err != nil {
		repo.Log.Error("questionnaireResponseMongoRepository.EnsureIndexes error creating index",
			zap.Error(err),
		)
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *questionnaireResponseMongoRepository) Create(ctx context.Context, response *models.QuestionnaireResponse) (string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	repo.Log.Info("questionnaireResponseMongoRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, response.Owner),
	)

	result, err := repo.Collection.InsertOne(ctx, response)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrQuestionnaireAlreadyCompleted(err)
		}
		repo.Log.Error("questionnaireResponseMongoRepository.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, _ := result.InsertedID.(primitive.ObjectID)
	return insertedID.Hex(), nil
}

// FindByOwner returns nil without error when the owner has not submitted.
func (repo *questionnaireResponseMongoRepository) FindByOwner(ctx context.Context, owner string) (*models.QuestionnaireResponse, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	repo.Log.Info("questionnaireResponseMongoRepository.FindByOwner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	response := new(models.QuestionnaireResponse)
	err := repo.Collection.FindOne(ctx, bson.M{"owner": owner}).Decode(response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("questionnaireResponseMongoRepository.FindByOwner error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return response, nil
}
