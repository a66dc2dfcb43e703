package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/clinics"
)

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicController *clinics.ClinicController) {
	router.Get("/", clinicController.GetAllClinics)
	router.Get("/{clinicId}", clinicController.GetClinicByID)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", clinicController.CreateClinic)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/{clinicId}", clinicController.UpdateClinic)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{clinicId}", clinicController.DeleteClinic)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/{clinicId}/doctors", clinicController.AddDoctorsToClinic)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/{clinicId}/image", clinicController.UploadClinicImage)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/{clinicId}/videos", clinicController.UploadClinicVideos)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{clinicId}/videos/{videoId}", clinicController.DeleteClinicVideo)
}
