package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	MongoCollectionUsers           = "users"
	MongoCollectionDoctors         = "doctors"
	MongoCollectionClinics         = "clinics"
	MongoCollectionBookings        = "bookings"
	MongoCollectionBookingCounters = "booking_counters"
	MongoCollectionTestimonials    = "testimonials"
	MongoCollectionCursorImages    = "cursor_images"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	SpecializationGeneral     = "general"
	SpecializationSpecialized = "specialized"
)

const (
	ClinicStatusActive   = "active"
	ClinicStatusInactive = "inactive"
)

const (
	DoctorStatusAvailable   = "available"
	DoctorStatusUnavailable = "unavailable"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// WeekdayAll marks a schedule or availability entry that covers every day.
const WeekdayAll = "All"

var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

const (
	MediaDriverLocal = "local"
	MediaDriverMinio = "minio"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	ConfirmationCodeMin = 10000
	ConfirmationCodeMax = 99999
)
