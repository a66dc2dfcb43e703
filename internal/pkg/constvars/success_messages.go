package constvars

const (
	ResponseUnknown = "unknown"

	// Auth messages
	RegisterSuccess       = "user registered successfully"
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	ForgotPasswordSuccess = "reset password link already sent to your email"
	ResetPasswordSuccess  = "password already reset successfully"

	// User messages
	GetUsersSuccess   = "get users successfully"
	GetUserSuccess    = "get user successfully"
	UpdateUserSuccess = "user updated successfully"
	DeleteUserSuccess = "user deleted successfully"

	// Doctor messages
	GetDoctorsSuccess   = "get doctors successfully"
	GetDoctorSuccess    = "get doctor successfully"
	CreateDoctorSuccess = "doctor created successfully"
	UpdateDoctorSuccess = "doctor updated successfully"
	DeleteDoctorSuccess = "doctor deleted successfully"

	// Clinic messages
	GetClinicsSuccess        = "get clinics successfully"
	GetClinicSuccess         = "get clinic successfully"
	CreateClinicSuccess      = "clinic created successfully"
	UpdateClinicSuccess      = "clinic updated successfully"
	DeleteClinicSuccess      = "clinic deleted successfully"
	LinkDoctorsSuccess       = "doctors linked to clinic successfully"
	DeleteClinicVideoSuccess = "clinic video deleted successfully"

	// Booking messages
	CreateBookingSuccess = "booking created successfully"
	GetBookingsSuccess   = "get bookings successfully"
	GetValidDatesSuccess = "get booking dates successfully"
	CancelBookingSuccess = "booking cancelled successfully"
	DeleteBookingSuccess = "booking deleted successfully"

	// Testimonial messages
	GetTestimonialsSuccess   = "get testimonials successfully"
	GetTestimonialSuccess    = "get testimonial successfully"
	CreateTestimonialSuccess = "testimonial created successfully"
	UpdateTestimonialSuccess = "testimonial updated successfully"
	DeleteTestimonialSuccess = "testimonial deleted successfully"

	// Cursor image messages
	GetCursorImagesSuccess   = "get images successfully"
	GetCursorImageSuccess    = "get image successfully"
	CreateCursorImageSuccess = "image uploaded successfully"
	UpdateCursorImageSuccess = "image updated successfully"
	DeleteCursorImageSuccess = "image deleted successfully"
)
