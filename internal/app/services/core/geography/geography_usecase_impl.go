package geography

import (
	"context"
	"errors"
	"fmt"
	"panel-service/internal/app/contracts"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	errCountryNotFound = errors.New("country not found")
	errStateNotFound   = errors.New("state not found")
)

type geographyUsecase struct {
	Lookup          *Lookup
	RedisRepository contracts.RedisRepository
	CacheTTL        time.Duration
	Log             *zap.Logger
}

func NewGeographyUsecase(
	lookup *Lookup,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.GeographyUsecase {
	return &geographyUsecase{
		Lookup:          lookup,
		RedisRepository: redisRepository,
		CacheTTL:        cacheTTL,
		Log:             logger,
	}
}

func (uc *geographyUsecase) FindCountries(ctx context.Context) ([]string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("geographyUsecase.FindCountries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.cachedNames(ctx, constvars.RedisKeyGeographyCountries, uc.Lookup.CountryNames)
}

func (uc *geographyUsecase) FindStates(ctx context.Context, country string) ([]string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("geographyUsecase.FindStates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, country),
	)

	matched, ok := uc.Lookup.FindCountry(country)
	if !ok {
		return nil, exceptions.ErrCountryNotFound(errCountryNotFound, country)
	}

	key := fmt.Sprintf(constvars.RedisKeyGeographyStatesFormat, cacheKeyPart(matched.Name))
	return uc.cachedNames(ctx, key, func() []string {
		return uc.Lookup.StatesOf(matched)
	})
}

func (uc *geographyUsecase) FindCities(ctx context.Context, country, state string) ([]string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("geographyUsecase.FindCities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, country+"/"+state),
	)

	matchedCountry, ok := uc.Lookup.FindCountry(country)
	if !ok {
		return nil, exceptions.ErrCountryNotFound(errCountryNotFound, country)
	}
	matchedState, ok := uc.Lookup.FindState(matchedCountry, state)
	if !ok {
		return nil, exceptions.ErrStateNotFound(errStateNotFound, country, state)
	}

	key := fmt.Sprintf(constvars.RedisKeyGeographyCitiesFormat, cacheKeyPart(matchedCountry.Name), cacheKeyPart(matchedState.Name))
	return uc.cachedNames(ctx, key, func() []string {
		return uc.Lookup.CitiesOf(matchedState)
	})
}

// cachedNames serves an option list from Redis and fills the cache on a
// miss. The dataset is in memory, so Redis failures only cost the cache.
func (uc *geographyUsecase) cachedNames(ctx context.Context, key string, load func() []string) ([]string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)

	cached, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("geographyUsecase.cachedNames error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return load(), nil
	}

	if cached != "" {
		var names []string
		err = json.Unmarshal([]byte(cached), &names)
		if err == nil {
			uc.Log.Info("geographyUsecase.cachedNames data found in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
			)
			return names, nil
		}
		uc.Log.Warn("geographyUsecase.cachedNames error unmarshaling Redis data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	names := load()
	err = uc.RedisRepository.Set(ctx, key, names, uc.CacheTTL)
	if err != nil {
		uc.Log.Warn("geographyUsecase.cachedNames error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return names, nil
}

func cacheKeyPart(name string) string {
	return strings.ReplaceAll(normalize(name), " ", "-")
}
