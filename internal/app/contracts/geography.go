package contracts

import "context"

type GeographyUsecase interface {
	FindCountries(ctx context.Context) ([]string, error)
	FindStates(ctx context.Context, country string) ([]string, error)
	FindCities(ctx context.Context, country, state string) ([]string, error)
}
