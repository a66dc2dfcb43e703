package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/auth"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.Post("/forgot-password", authController.ForgotPassword)
	router.Put("/reset-password/{token}", authController.ResetPassword)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
