package routers

import (
	"panel-service/internal/app/delivery/http/controllers"
	"panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionnaireController *controllers.QuestionnaireController) {
	router.Use(middlewares.Authenticate)

	router.Get("/definition", questionnaireController.GetDefinition)
	router.Get("/status", questionnaireController.GetStatus)
	router.Get("/response", questionnaireController.GetResponse)

	router.Route("/session", func(r chi.Router) {
		r.Post("/", questionnaireController.StartSession)
		r.Get("/", questionnaireController.GetSession)
		r.Delete("/", questionnaireController.AbandonSession)
		r.Put("/answers", questionnaireController.UpdateAnswer)
		r.Post("/advance", questionnaireController.Advance)
		r.Post("/retreat", questionnaireController.Retreat)
		r.Post("/jump", questionnaireController.JumpTo)
		r.Post("/submit", questionnaireController.Submit)
	})
}
