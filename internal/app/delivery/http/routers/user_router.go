package routers

import (
	"orca-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *controllers.UserController) {
	router.Get("/", userController.SearchUsers)
	router.Get("/{user_id}", userController.FindUser)
	router.Get("/{user_id}/export", userController.ExportUserData)
}
