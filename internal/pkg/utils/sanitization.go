package utils

import (
	"strings"

	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeUpdateUserRequest(input *requests.UpdateUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
	input.Specialization = strings.TrimSpace(strings.ToLower(input.Specialization))
	input.Bio = strings.TrimSpace(input.Bio)
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
	input.SpecialWords = cleanWhiteSpaceFromEachStringOfAnArray(input.SpecialWords)
	input.Clinics = cleanWhiteSpaceFromEachStringOfAnArray(input.Clinics)
	for i := range input.Schedules {
		sanitizeScheduleEntry(&input.Schedules[i])
	}
}

func SanitizeUpdateDoctorRequest(input *requests.UpdateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
	input.Specialization = strings.TrimSpace(strings.ToLower(input.Specialization))
	input.Bio = strings.TrimSpace(input.Bio)
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
	input.SpecialWords = cleanWhiteSpaceFromEachStringOfAnArray(input.SpecialWords)
	input.Clinics = cleanWhiteSpaceFromEachStringOfAnArray(input.Clinics)
	for i := range input.Schedules {
		sanitizeScheduleEntry(&input.Schedules[i])
	}
}

func sanitizeScheduleEntry(input *requests.ScheduleEntry) {
	input.Clinic = strings.TrimSpace(input.Clinic)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
	input.Days = cleanWhiteSpaceFromEachStringOfAnArray(input.Days)
}

func SanitizeCreateClinicRequest(input *requests.CreateClinic) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
	input.Specialization = strings.TrimSpace(strings.ToLower(input.Specialization))
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
	input.SpecialWords = cleanWhiteSpaceFromEachStringOfAnArray(input.SpecialWords)
	input.AvailableDays = cleanWhiteSpaceFromEachStringOfAnArray(input.AvailableDays)
}

func SanitizeUpdateClinicRequest(input *requests.UpdateClinic) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
	input.Specialization = strings.TrimSpace(strings.ToLower(input.Specialization))
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
	input.SpecialWords = cleanWhiteSpaceFromEachStringOfAnArray(input.SpecialWords)
	input.AvailableDays = cleanWhiteSpaceFromEachStringOfAnArray(input.AvailableDays)
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.ClinicID = strings.TrimSpace(input.ClinicID)
	input.ClientName = strings.TrimSpace(input.ClientName)
	input.ClientEmail = strings.TrimSpace(strings.ToLower(input.ClientEmail))
	input.ClientPhone = strings.TrimSpace(input.ClientPhone)
	input.ClientAddress = strings.TrimSpace(input.ClientAddress)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCreateTestimonialRequest(input *requests.CreateTestimonial) {
	input.Name = strings.TrimSpace(input.Name)
	input.JobTitle = strings.TrimSpace(input.JobTitle)
	input.Text = strings.TrimSpace(input.Text)
}

func SanitizeUpdateTestimonialRequest(input *requests.UpdateTestimonial) {
	input.Name = strings.TrimSpace(input.Name)
	input.JobTitle = strings.TrimSpace(input.JobTitle)
	input.Text = strings.TrimSpace(input.Text)
}

func SanitizeCreateCursorImageRequest(input *requests.CreateCursorImage) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
}

func SanitizeUpdateCursorImageRequest(input *requests.UpdateCursorImage) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
}
