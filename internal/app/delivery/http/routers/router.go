package routers

import (
	"fmt"
	"panel-service/internal/app/config"
	"panel-service/internal/app/delivery/http/controllers"
	"panel-service/internal/app/delivery/http/middlewares"
	"panel-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	geographyController *controllers.GeographyController,
	questionnaireController *controllers.QuestionnaireController,
	profileController *controllers.ProfileController,
	avatarController *controllers.AvatarController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: strings.Split(internalConfig.App.AllowedOrigins, ","),
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/geography", func(r chi.Router) {
				attachGeographyRoutes(r, middlewares, geographyController)
			})

			r.Route("/questionnaire", func(r chi.Router) {
				attachQuestionnaireRoutes(r, middlewares, questionnaireController)
			})

			r.Route("/profiles", func(r chi.Router) {
				attachProfileRoutes(r, middlewares, profileController, avatarController)
			})
		})
	})
}
