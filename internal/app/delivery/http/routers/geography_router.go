package routers

import (
	"panel-service/internal/app/delivery/http/controllers"
	"panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachGeographyRoutes(router chi.Router, middlewares *middlewares.Middlewares, geographyController *controllers.GeographyController) {
	router.Get("/countries", geographyController.FindCountries)
	router.Get("/countries/{country}/states", geographyController.FindStates)
	router.Get("/countries/{country}/states/{state}/cities", geographyController.FindCities)
}
