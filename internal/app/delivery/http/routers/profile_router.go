package routers

import (
	"panel-service/internal/app/delivery/http/controllers"
	"panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController, avatarController *controllers.AvatarController) {
	router.With(middlewares.Authenticate).Get("/me", profileController.GetProfile)
	router.With(middlewares.Authenticate).Put("/me", profileController.UpdateProfile)
	router.With(middlewares.Authenticate).Get("/me/avatar", avatarController.GetAvatar)
	router.With(middlewares.Authenticate).Put("/me/avatar", avatarController.UploadAvatar)
}
