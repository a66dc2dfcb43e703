package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/users"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authenticate).Get("/profile", userController.GetUserProfileBySession)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", userController.GetAllUsers)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/{userId}", userController.GetUserByID)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/{userId}", userController.UpdateUser)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{userId}", userController.DeleteUser)
}
