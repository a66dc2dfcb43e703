package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/delivery/http/middlewares"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/bookings"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	// Guests can book without an account; a bearer token links the
	// booking to the caller's profile.
	router.With(middlewares.OptionalAuthenticate).Post("/", bookingController.CreateBooking)
	router.Get("/valid-dates", bookingController.GetValidDates)

	router.With(middlewares.Authenticate).Get("/my", bookingController.GetMyBookings)
	router.With(middlewares.Authenticate).Put("/{bookingId}/cancel", bookingController.CancelBooking)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", bookingController.GetAllBookings)

	// Owner-or-admin; the usecase enforces ownership like cancellation.
	router.With(middlewares.Authenticate).Delete("/{bookingId}", bookingController.DeleteBooking)
}
