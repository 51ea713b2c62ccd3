package profiles

import (
	"context"
	"panel-service/internal/app/contracts"
	"panel-service/internal/app/models"
	"panel-service/internal/app/services/core/questionnaires"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/dto/responses"
	"panel-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

const consentGivenPrefix = "Yes"

type profileUsecase struct {
	UserProfileRepository contracts.UserProfileRepository
	Schema                Schema
	Log                   *zap.Logger
}

func NewProfileUsecase(userProfileRepository contracts.UserProfileRepository, logger *zap.Logger) contracts.ProfileUsecase {
	return &profileUsecase{
		UserProfileRepository: userProfileRepository,
		Schema:                DefaultSchema(),
		Log:                   logger,
	}
}

// GetProfile never fails for an owner without a stored profile; it scores an
// empty one instead.
func (uc *profileUsecase) GetProfile(ctx context.Context, owner string) (*responses.UserProfile, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("profileUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	profile, err := uc.findOrNew(ctx, owner)
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(ctx, profile), nil
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, owner string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("profileUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	profile, err := uc.findOrNew(ctx, owner)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		profile.Identity.Name = trimmed(*request.Name)
	}
	if request.Age != nil {
		age := *request.Age
		profile.Identity.Age = &age
	}
	if request.Email != nil {
		profile.Contact.Email = trimmed(strings.ToLower(*request.Email))
	}
	if request.Phone != nil {
		profile.Contact.Phone = trimmed(*request.Phone)
	}
	if request.PreferredContact != nil {
		profile.Contact.PreferredContact = trimmed(*request.PreferredContact)
	}
	if request.ResearchConsent != nil {
		consent := *request.ResearchConsent
		profile.Documents.ResearchConsent = &consent
	}
	profile.SetUpdatedAt()

	err = uc.UserProfileRepository.Upsert(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateProfile error calling UserProfileRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return uc.buildResponse(ctx, profile), nil
}

// ApplyQuestionnaireAnswers copies the answers that also live on the profile.
// Keys missing from fields leave the profile value untouched.
func (uc *profileUsecase) ApplyQuestionnaireAnswers(ctx context.Context, owner string, fields map[string]string) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("profileUsecase.ApplyQuestionnaireAnswers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerKey, owner),
	)

	profile, err := uc.findOrNew(ctx, owner)
	if err != nil {
		return err
	}

	scalars := map[string]**string{
		"roleLevel":         &profile.Identity.RoleLevel,
		"educationLevel":    &profile.Identity.EducationLevel,
		"fieldOfStudy":      &profile.Identity.FieldOfStudy,
		"graduationYear":    &profile.Identity.GraduationYear,
		"occupationStatus":  &profile.Identity.OccupationStatus,
		"yearsExperience":   &profile.Identity.YearsOfExperience,
		"country":           &profile.Identity.Country,
		"provinceState":     &profile.Identity.Province,
		"city":              &profile.Identity.City,
		"contactPreference": &profile.Contact.PreferredContact,
		"organizationType":  &profile.Documents.OrganizationType,
		"department":        &profile.Documents.Department,
	}
	for key, target := range scalars {
		if value, ok := fields[key]; ok {
			*target = trimmed(value)
		}
	}

	lists := map[string]*[]string{
		"languages": &profile.Contact.Languages,
		"industry":  &profile.Documents.Industry,
		"hobbies":   &profile.Documents.Hobbies,
	}
	for key, target := range lists {
		encoded, ok := fields[key]
		if !ok {
			continue
		}
		values, err := questionnaires.DecodeValues(encoded)
		if err != nil {
			uc.Log.Warn("profileUsecase.ApplyQuestionnaireAnswers multi-choice value is not a JSON array",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFieldKey, key),
			)
			continue
		}
		*target = values
	}

	if consent, ok := fields["participationConsent"]; ok {
		given := strings.HasPrefix(consent, consentGivenPrefix)
		profile.Documents.ResearchConsent = &given
	}
	profile.SetUpdatedAt()

	err = uc.UserProfileRepository.Upsert(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.ApplyQuestionnaireAnswers error calling UserProfileRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *profileUsecase) findOrNew(ctx context.Context, owner string) (*models.UserProfile, error) {
	profile, err := uc.UserProfileRepository.FindByOwner(ctx, owner)
	if err != nil {
		uc.Log.Error("profileUsecase.findOrNew error calling UserProfileRepository.FindByOwner",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		profile = models.NewUserProfile(owner)
	}
	return profile, nil
}

func (uc *profileUsecase) buildResponse(ctx context.Context, profile *models.UserProfile) *responses.UserProfile {
	record := RecordOf(profile)
	completion := Score(uc.Schema, record)

	uc.Log.Info("profileUsecase.buildResponse completion computed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.Int(constvars.LoggingCompletionKey, completion.Percentage),
	)

	response := &responses.UserProfile{
		Owner:     profile.Owner,
		Identity:  record[CategoryIdentity],
		Contact:   record[CategoryContact],
		Documents: record[CategoryDocuments],
		Completion: responses.ProfileCompletion{
			Percentage:           completion.Percentage,
			IncompleteCategories: completion.IncompleteCategories,
		},
	}
	if !profile.UpdatedAt.IsZero() {
		updatedAt := profile.UpdatedAt
		response.UpdatedAt = &updatedAt
	}
	return response
}

func trimmed(value string) *string {
	value = strings.TrimSpace(value)
	return &value
}
