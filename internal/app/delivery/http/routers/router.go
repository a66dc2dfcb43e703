package routers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/auth"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/bookings"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/clinics"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/cursorimages"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/doctors"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/testimonials"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/users"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	doctorController *doctors.DoctorController,
	clinicController *clinics.ClinicController,
	bookingController *bookings.BookingController,
	testimonialController *testimonials.TestimonialController,
	cursorImageController *cursorimages.CursorImageController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)
		})

		r.Route("/clinics", func(r chi.Router) {
			attachClinicRoutes(r, middlewares, clinicController)
		})

		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})

		r.Route("/testimonials", func(r chi.Router) {
			attachTestimonialRoutes(r, middlewares, testimonialController)
		})

		r.Route("/cursor-images", func(r chi.Router) {
			attachCursorImageRoutes(r, middlewares, cursorImageController)
		})
	})

	// Locally stored media is served straight off disk.
	if internalConfig.Media.Driver == constvars.MediaDriverLocal {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(internalConfig.Media.LocalDir)))
		router.Get("/uploads/*", fileServer.ServeHTTP)
	}
}
