package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"gte":            "must be greater than or equal to %s",
	"lte":            "must be less than or equal to %s",
	"oneof":          "must be one of [%s]",
	"numeric":        "must be a number",
	"weekday":        "must be a weekday name or 'All'",
	"clock_time":     "must be a 24-hour time in HH:MM format",
	"specialization": "must be either 'general' or 'specialized'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientResetPasswordTokenExpired     = "your reset password request already expired"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"

	ErrClientUserNotFound         = "user not found"
	ErrClientDoctorNotFound       = "doctor not found"
	ErrClientClinicNotFound       = "clinic not found"
	ErrClientBookingNotFound      = "booking not found"
	ErrClientTestimonialNotFound  = "testimonial not found"
	ErrClientCursorImageNotFound  = "image not found"
	ErrClientClinicVideoNotFound  = "clinic video not found"
	ErrClientSomeClinicsNotFound  = "some clinics do not exist"
	ErrClientSomeDoctorsNotFound  = "some doctors do not exist"
	ErrClientNotBookingOwner      = "you are not allowed to modify this booking"
	ErrClientInvalidTimeFormat    = "invalid time format, expected HH:MM"
	ErrClientInvalidWeekdays      = "invalid schedule days"
	ErrClientEmptyAvailableDays   = "at least one day or 'All' must be provided"
	ErrClientUnlinkedClinic       = "schedule clinic is missing or not linked to the doctor"
	ErrClientIncompatibleDays     = "schedule days are not compatible with the clinic's available days"
	ErrClientMissingSpecialties   = "a specialties list must be provided for specialized records"
	ErrClientVideoLabelMismatch   = "the number of labels does not match the number of uploaded videos"
	ErrClientMissingRequiredField = "required fields are missing"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevValidationFailed         = "validation failed"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevServerDeadlineExceeded   = "server process exceeded the given deadline"
	ErrDevServerProcess            = "server failed to process the request"

	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevResourceNotFound     = "%s not found"
	ErrDevBookingOwnerMismatch = "booking owned by a different user"

	ErrDevScheduleInvalidDays       = "schedule entry contains invalid day names or an empty day set"
	ErrDevScheduleUnlinkedClinic    = "schedule entry references a clinic outside the doctor's clinic list"
	ErrDevScheduleIncompatibleDays  = "schedule entry days are not a subset of the clinic's available days"
	ErrDevScheduleInvalidTimeFormat = "schedule entry start or end time does not match HH:MM"
	ErrDevAvailableDaysInvalid      = "available days list is empty or contains invalid day names"

	// Auth
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenExpired          = "token already expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthNotAdmin              = "request requires admin role"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToCountDocuments   = "failed to count documents"
	ErrDevDBFailedToIterateDocuments = "failed to iterate cursor for documents"
	ErrDevDBStringNotObjectID        = "string cannot be converted to mongo ObjectID"

	// Redis
	ErrDevRedisGetNoData = "failed to get data from redis with key %s"
	ErrDevRedisSetData   = "failed to set data to redis"
	ErrDevRedisDelete    = "failed to delete data from redis"

	// Storage
	ErrDevStorageFailedToPutObject    = "failed to store object into bucket %s"
	ErrDevStorageFailedToRemoveObject = "failed to remove object from bucket %s"

	// SMTP / RabbitMQ
	ErrDevSMTPSendEmail       = "failed to send email via SMTP client hostname %s"
	ErrDevRabbitMQPublish     = "failed to publish message to queue %s"
	ErrDevTranslationFailed   = "translation request failed"
	ErrDevCreateHTTPRequest   = "failed to create HTTP request"
	ErrDevSendHTTPRequest     = "failed to send HTTP request"
	ErrDevDecodeResponseBody  = "failed to decode response body"
	ErrDevURLParamIDValidation = "parameter %s validation failed"
)
