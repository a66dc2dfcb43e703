package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/doctors"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Get("/", doctorController.GetAllDoctors)
	router.Get("/{doctorId}", doctorController.GetDoctorByID)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", doctorController.CreateDoctor)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/{doctorId}", doctorController.UpdateDoctor)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{doctorId}", doctorController.DeleteDoctor)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/{doctorId}/image", doctorController.UploadDoctorImage)
}
