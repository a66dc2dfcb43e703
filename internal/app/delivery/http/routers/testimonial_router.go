package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/testimonials"
)

func attachTestimonialRoutes(router chi.Router, middlewares *middlewares.Middlewares, testimonialController *testimonials.TestimonialController) {
	router.Get("/", testimonialController.GetAllTestimonials)
	router.Get("/{testimonialId}", testimonialController.GetTestimonialByID)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", testimonialController.CreateTestimonial)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/{testimonialId}", testimonialController.UpdateTestimonial)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{testimonialId}", testimonialController.DeleteTestimonial)
}
