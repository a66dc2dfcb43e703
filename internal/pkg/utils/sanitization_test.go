package utils

import (
	"testing"

	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Trims whitespace and lowercases the email", func(t *testing.T) {
		input := &requests.RegisterUser{
			Name:    "  Sara  ",
			Email:   " Sara@Example.COM ",
			Phone:   " 0501234567 ",
			Address: " Riyadh ",
		}

		SanitizeRegisterUserRequest(input)

		assert.Equal(t, "Sara", input.Name)
		assert.Equal(t, "sara@example.com", input.Email)
		assert.Equal(t, "0501234567", input.Phone)
		assert.Equal(t, "Riyadh", input.Address)
	})
}

func TestSanitizeCreateBookingRequest(t *testing.T) {
	t.Run("Trims every field", func(t *testing.T) {
		input := &requests.CreateBooking{
			ClinicID:      " 64b1f0c2a1b2c3d4e5f60718 ",
			ClientName:    " Ahmed ",
			ClientEmail:   " Ahmed@Example.com ",
			ClientPhone:   " 0555555555 ",
			ClientAddress: " Jeddah ",
			Date:          " 2025-06-01 ",
			Time:          " 14:30 ",
			Notes:         " first visit ",
		}

		SanitizeCreateBookingRequest(input)

		assert.Equal(t, "64b1f0c2a1b2c3d4e5f60718", input.ClinicID)
		assert.Equal(t, "Ahmed", input.ClientName)
		assert.Equal(t, "ahmed@example.com", input.ClientEmail)
		assert.Equal(t, "0555555555", input.ClientPhone)
		assert.Equal(t, "Jeddah", input.ClientAddress)
		assert.Equal(t, "2025-06-01", input.Date)
		assert.Equal(t, "14:30", input.Time)
		assert.Equal(t, "first visit", input.Notes)
	})
}

func TestSanitizeCreateClinicRequest(t *testing.T) {
	t.Run("Cleans list entries and normalizes enums", func(t *testing.T) {
		input := &requests.CreateClinic{
			Name:           " Dermatology Center ",
			Status:         " Active ",
			Specialization: " Specialized ",
			Specialties:    []string{" Dermatology ", "Laser "},
			AvailableDays:  []string{" Monday", "Tuesday "},
		}

		SanitizeCreateClinicRequest(input)

		assert.Equal(t, "Dermatology Center", input.Name)
		assert.Equal(t, "active", input.Status)
		assert.Equal(t, "specialized", input.Specialization)
		assert.Equal(t, []string{"Dermatology", "Laser"}, input.Specialties)
		assert.Equal(t, []string{"Monday", "Tuesday"}, input.AvailableDays)
	})
}
